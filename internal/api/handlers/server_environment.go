package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"replane.io/replane/internal/usecase"
)

type createEnvironmentRequest struct {
	Name string `json:"name" binding:"required"`
}

func (s *Server) CreateEnvironment(c *gin.Context) {
	var req createEnvironmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	env, err := s.uc.CreateEnvironment(c.Request.Context(), identity(c), c.Param("projectId"), req.Name)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, toEnvironmentDTO(env))
}

type updateEnvironmentRequest struct {
	Name             *string `json:"name"`
	Order            *int    `json:"order"`
	RequireProposals *bool   `json:"requireProposals"`
}

func (s *Server) UpdateEnvironment(c *gin.Context) {
	var req updateEnvironmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	env, err := s.uc.UpdateEnvironment(c.Request.Context(), identity(c),
		c.Param("projectId"), c.Param("environmentId"), usecase.UpdateEnvironmentParams{
			Name:             req.Name,
			Order:            req.Order,
			RequireProposals: req.RequireProposals,
		})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toEnvironmentDTO(env))
}

func (s *Server) DeleteEnvironment(c *gin.Context) {
	err := s.uc.DeleteEnvironment(c.Request.Context(), identity(c),
		c.Param("projectId"), c.Param("environmentId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
