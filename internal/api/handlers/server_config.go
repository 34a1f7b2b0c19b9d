package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"replane.io/replane/internal/domain"
	"replane.io/replane/internal/override"
	"replane.io/replane/internal/usecase"
)

type createConfigRequest struct {
	Name        string                `json:"name" binding:"required"`
	Description string                `json:"description"`
	Value       json.RawMessage       `json:"value" binding:"required"`
	Schema      json.RawMessage       `json:"schema"`
	Overrides   []override.Override   `json:"overrides"`
	Members     []domain.ConfigMember `json:"members"`
}

func (s *Server) CreateConfig(c *gin.Context) {
	var req createConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	cfg, err := s.uc.CreateConfig(c.Request.Context(), identity(c), usecase.CreateConfigInput{
		ProjectID:   c.Param("projectId"),
		Name:        req.Name,
		Description: req.Description,
		Value:       req.Value,
		Schema:      req.Schema,
		Overrides:   req.Overrides,
		Members:     req.Members,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, toConfigDTO(cfg))
}

func (s *Server) ListConfigs(c *gin.Context) {
	list, err := s.uc.ListConfigs(c.Request.Context(), identity(c), c.Param("projectId"))
	if err != nil {
		fail(c, err)
		return
	}
	out := make([]configDTO, 0, len(list))
	for _, cfg := range list {
		out = append(out, toConfigDTO(cfg))
	}
	c.JSON(http.StatusOK, gin.H{"configs": out})
}

func (s *Server) GetConfig(c *gin.Context) {
	view, err := s.uc.GetConfig(c.Request.Context(), identity(c), c.Param("configId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toConfigViewDTO(view))
}

type updateConfigRequest struct {
	PrevVersion int                   `json:"prevVersion" binding:"required"`
	Description string                `json:"description"`
	Value       json.RawMessage       `json:"value" binding:"required"`
	Schema      json.RawMessage       `json:"schema"`
	Overrides   []override.Override   `json:"overrides"`
	Members     []domain.ConfigMember `json:"members"`
}

func (s *Server) UpdateConfig(c *gin.Context) {
	var req updateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	cfg, err := s.uc.UpdateConfig(c.Request.Context(), identity(c), usecase.UpdateConfigInput{
		ConfigID:    c.Param("configId"),
		PrevVersion: req.PrevVersion,
		State: domain.ConfigState{
			Description: req.Description,
			Value:       req.Value,
			Schema:      req.Schema,
			Overrides:   req.Overrides,
			Members:     req.Members,
		},
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toConfigDTO(cfg))
}

func (s *Server) DeleteConfig(c *gin.Context) {
	if err := s.uc.DeleteConfig(c.Request.Context(), identity(c), c.Param("configId")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type patchVariantRequest struct {
	PrevVersion   int                 `json:"prevVersion"`
	Value         json.RawMessage     `json:"value" binding:"required"`
	Schema        json.RawMessage     `json:"schema"`
	UseBaseSchema bool                `json:"useBaseSchema"`
	Overrides     []override.Override `json:"overrides"`
}

func (s *Server) PatchConfigVariant(c *gin.Context) {
	var req patchVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	variant, err := s.uc.PatchConfigVariant(c.Request.Context(), identity(c), usecase.PatchVariantInput{
		ConfigID:      c.Param("configId"),
		EnvironmentID: c.Param("environmentId"),
		PrevVersion:   req.PrevVersion,
		State: domain.VariantState{
			Value:         req.Value,
			Schema:        req.Schema,
			UseBaseSchema: req.UseBaseSchema,
			Overrides:     req.Overrides,
		},
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toVariantDTO(variant))
}

func (s *Server) ListConfigVersions(c *gin.Context) {
	before, limit, ok := versionPageParams(c)
	if !ok {
		return
	}
	page, err := s.uc.ListConfigVersions(c.Request.Context(), identity(c), c.Param("configId"), before, limit)
	if err != nil {
		fail(c, err)
		return
	}
	out := make([]configVersionDTO, 0, len(page.Items))
	for _, v := range page.Items {
		out = append(out, toConfigVersionDTO(v))
	}
	c.JSON(http.StatusOK, gin.H{"versions": out, "nextBefore": page.NextBefore})
}

func (s *Server) ListConfigVariantVersions(c *gin.Context) {
	before, limit, ok := versionPageParams(c)
	if !ok {
		return
	}
	page, err := s.uc.ListConfigVariantVersions(c.Request.Context(), identity(c),
		c.Param("configId"), c.Param("environmentId"), before, limit)
	if err != nil {
		fail(c, err)
		return
	}
	out := make([]variantVersionDTO, 0, len(page.Items))
	for _, v := range page.Items {
		out = append(out, toVariantVersionDTO(v))
	}
	c.JSON(http.StatusOK, gin.H{"versions": out, "nextBefore": page.NextBefore})
}

type restoreRequest struct {
	PrevVersion int `json:"prevVersion" binding:"required"`
}

func (s *Server) RestoreConfigVersion(c *gin.Context) {
	version, ok := pathInt(c, "version")
	if !ok {
		return
	}
	var req restoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	cfg, err := s.uc.RestoreConfigVersion(c.Request.Context(), identity(c),
		c.Param("configId"), version, req.PrevVersion)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toConfigDTO(cfg))
}

func (s *Server) RestoreConfigVariantVersion(c *gin.Context) {
	version, ok := pathInt(c, "version")
	if !ok {
		return
	}
	var req restoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	variant, err := s.uc.RestoreConfigVariantVersion(c.Request.Context(), identity(c),
		c.Param("configId"), c.Param("environmentId"), version, req.PrevVersion)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toVariantDTO(variant))
}

func versionPageParams(c *gin.Context) (before, limit int, ok bool) {
	before, ok = queryInt(c, "before")
	if !ok {
		return 0, 0, false
	}
	limit, ok = queryInt(c, "limit")
	if !ok {
		return 0, 0, false
	}
	return before, limit, true
}

func pathInt(c *gin.Context, name string) (int, bool) {
	n, err := strconv.Atoi(c.Param(name))
	if err != nil || n <= 0 {
		badRequest(c, name+" must be a positive integer")
		return 0, false
	}
	return n, true
}

func queryInt(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		badRequest(c, name+" must be a non-negative integer")
		return 0, false
	}
	return n, true
}
