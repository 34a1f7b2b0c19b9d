package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"replane.io/replane/ent/projectuser"
	"replane.io/replane/internal/usecase"
)

type createProjectRequest struct {
	Name               string   `json:"name" binding:"required"`
	Description        string   `json:"description"`
	Environments       []string `json:"environments"`
	Admins             []string `json:"admins"`
	RequireProposals   *bool    `json:"requireProposals"`
	AllowSelfApprovals *bool    `json:"allowSelfApprovals"`
}

func (s *Server) CreateProject(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	proj, err := s.uc.CreateProject(c.Request.Context(), identity(c), usecase.CreateProjectParams{
		WorkspaceID:        c.Param("workspaceId"),
		Name:               req.Name,
		Description:        req.Description,
		Environments:       req.Environments,
		Admins:             req.Admins,
		RequireProposals:   req.RequireProposals,
		AllowSelfApprovals: req.AllowSelfApprovals,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, toProjectDTO(proj))
}

func (s *Server) ListProjects(c *gin.Context) {
	list, err := s.uc.ListProjects(c.Request.Context(), identity(c), c.Param("workspaceId"))
	if err != nil {
		fail(c, err)
		return
	}
	out := make([]projectDTO, 0, len(list))
	for _, p := range list {
		out = append(out, toProjectDTO(p))
	}
	c.JSON(http.StatusOK, gin.H{"projects": out})
}

func (s *Server) GetProject(c *gin.Context) {
	view, err := s.uc.GetProject(c.Request.Context(), identity(c), c.Param("projectId"))
	if err != nil {
		fail(c, err)
		return
	}
	envs := make([]environmentDTO, 0, len(view.Environments))
	for _, e := range view.Environments {
		envs = append(envs, toEnvironmentDTO(e))
	}
	users := make([]projectUserDTO, 0, len(view.Users))
	for _, u := range view.Users {
		users = append(users, toProjectUserDTO(u))
	}
	c.JSON(http.StatusOK, gin.H{
		"project":      toProjectDTO(view.Project),
		"environments": envs,
		"users":        users,
	})
}

type updateProjectRequest struct {
	Name               *string `json:"name"`
	Description        *string `json:"description"`
	RequireProposals   *bool   `json:"requireProposals"`
	AllowSelfApprovals *bool   `json:"allowSelfApprovals"`
}

func (s *Server) UpdateProject(c *gin.Context) {
	var req updateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	proj, err := s.uc.UpdateProject(c.Request.Context(), identity(c), c.Param("projectId"), usecase.UpdateProjectParams{
		Name:               req.Name,
		Description:        req.Description,
		RequireProposals:   req.RequireProposals,
		AllowSelfApprovals: req.AllowSelfApprovals,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toProjectDTO(proj))
}

func (s *Server) DeleteProject(c *gin.Context) {
	if err := s.uc.DeleteProject(c.Request.Context(), identity(c), c.Param("projectId")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type setProjectUserRequest struct {
	Role string `json:"role" binding:"required,oneof=admin maintainer"`
}

func (s *Server) SetProjectUser(c *gin.Context) {
	var req setProjectUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	u, err := s.uc.SetProjectUser(c.Request.Context(), identity(c),
		c.Param("projectId"), c.Param("email"), projectuser.Role(req.Role))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toProjectUserDTO(u))
}

func (s *Server) RemoveProjectUser(c *gin.Context) {
	err := s.uc.RemoveProjectUser(c.Request.Context(), identity(c),
		c.Param("projectId"), c.Param("email"))
	if err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) ExportProject(c *gin.Context) {
	dump, err := s.uc.ExportProject(c.Request.Context(), identity(c), c.Param("projectId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dump)
}
