package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"replane.io/replane/internal/usecase"
)

func (s *Server) ListProjectAudit(c *gin.Context) {
	limit, ok := queryInt(c, "limit")
	if !ok {
		return
	}
	page, err := s.uc.ListProjectAudit(c.Request.Context(), identity(c),
		c.Param("projectId"), c.Query("cursor"), limit)
	if err != nil {
		fail(c, err)
		return
	}
	renderAuditPage(c, page)
}

func (s *Server) ListConfigAudit(c *gin.Context) {
	limit, ok := queryInt(c, "limit")
	if !ok {
		return
	}
	page, err := s.uc.ListConfigAudit(c.Request.Context(), identity(c),
		c.Param("configId"), c.Query("cursor"), limit)
	if err != nil {
		fail(c, err)
		return
	}
	renderAuditPage(c, page)
}

func renderAuditPage(c *gin.Context, page *usecase.AuditPage) {
	out := make([]auditEntryDTO, 0, len(page.Items))
	for _, e := range page.Items {
		out = append(out, toAuditEntryDTO(e))
	}
	c.JSON(http.StatusOK, gin.H{"entries": out, "nextCursor": page.NextCursor})
}
