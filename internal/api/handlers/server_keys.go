package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"replane.io/replane/internal/domain"
	"replane.io/replane/internal/usecase"
)

type createAdminKeyRequest struct {
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description"`
	Scopes      []string   `json:"scopes" binding:"required"`
	ProjectIDs  []string   `json:"projectIds"`
	ExpiresAt   *time.Time `json:"expiresAt"`
}

func (s *Server) CreateAdminKey(c *gin.Context) {
	var req createAdminKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	scopes := make([]domain.Scope, 0, len(req.Scopes))
	for _, sc := range req.Scopes {
		scopes = append(scopes, domain.Scope(sc))
	}
	created, err := s.uc.CreateAdminKey(c.Request.Context(), identity(c), usecase.CreateAdminKeyInput{
		WorkspaceID: c.Param("workspaceId"),
		Name:        req.Name,
		Description: req.Description,
		Scopes:      scopes,
		ProjectIDs:  req.ProjectIDs,
		ExpiresAt:   req.ExpiresAt,
	})
	if err != nil {
		fail(c, err)
		return
	}
	// The raw token leaves the server exactly once.
	c.JSON(http.StatusCreated, gin.H{
		"key":   toAdminKeyDTO(created.Key),
		"token": created.RawToken,
	})
}

func (s *Server) ListAdminKeys(c *gin.Context) {
	list, err := s.uc.ListAdminKeys(c.Request.Context(), identity(c), c.Param("workspaceId"))
	if err != nil {
		fail(c, err)
		return
	}
	out := make([]adminKeyDTO, 0, len(list))
	for _, k := range list {
		out = append(out, toAdminKeyDTO(k))
	}
	c.JSON(http.StatusOK, gin.H{"keys": out})
}

func (s *Server) DeleteAdminKey(c *gin.Context) {
	err := s.uc.DeleteAdminKey(c.Request.Context(), identity(c),
		c.Param("workspaceId"), c.Param("keyId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type createSDKKeyRequest struct {
	EnvironmentID string `json:"environmentId" binding:"required"`
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description"`
}

func (s *Server) CreateSDKKey(c *gin.Context) {
	var req createSDKKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	created, err := s.uc.CreateSDKKey(c.Request.Context(), identity(c), usecase.CreateSDKKeyInput{
		ProjectID:     c.Param("projectId"),
		EnvironmentID: req.EnvironmentID,
		Name:          req.Name,
		Description:   req.Description,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"key":   toSDKKeyDTO(created.Key),
		"token": created.RawToken,
	})
}

func (s *Server) ListSDKKeys(c *gin.Context) {
	list, err := s.uc.ListSDKKeys(c.Request.Context(), identity(c), c.Param("projectId"))
	if err != nil {
		fail(c, err)
		return
	}
	out := make([]sdkKeyDTO, 0, len(list))
	for _, k := range list {
		out = append(out, toSDKKeyDTO(k))
	}
	c.JSON(http.StatusOK, gin.H{"keys": out})
}

type updateSDKKeyRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (s *Server) UpdateSDKKey(c *gin.Context) {
	var req updateSDKKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	key, err := s.uc.UpdateSDKKey(c.Request.Context(), identity(c),
		c.Param("projectId"), c.Param("keyId"), usecase.UpdateSDKKeyParams{
			Name:        req.Name,
			Description: req.Description,
		})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toSDKKeyDTO(key))
}

func (s *Server) DeleteSDKKey(c *gin.Context) {
	err := s.uc.DeleteSDKKey(c.Request.Context(), identity(c),
		c.Param("projectId"), c.Param("keyId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
