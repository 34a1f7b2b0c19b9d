package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"replane.io/replane/internal/domain"
	apperrors "replane.io/replane/internal/pkg/errors"
	"replane.io/replane/internal/token"
)

// SDKGetConfigs serves the read surface: the fully resolved configs of
// one (project, environment) pair. The caller authenticates with either
// an environment-bound SDK key or an admin key whose scopes reach the
// project.
func (s *Server) SDKGetConfigs(c *gin.Context) {
	projectID := c.Query("projectId")
	environmentID := c.Query("environmentId")
	if projectID == "" || environmentID == "" {
		badRequest(c, "projectId and environmentId are required")
		return
	}

	raw, ok := bearerFromRequest(c)
	if !ok {
		fail(c, apperrors.ErrInvalidToken())
		return
	}
	res, err := s.verifier.Verify(c.Request.Context(), raw)
	if err != nil {
		fail(c, err)
		return
	}

	// SDK keys read exactly the environment they were minted for.
	// Admin keys need read scope and reach into the project.
	if res.Binding != nil {
		if res.Binding.ProjectID != projectID || res.Binding.EnvironmentID != environmentID {
			fail(c, apperrors.ErrForbidden("key is not bound to this environment"))
			return
		}
	} else if key, isAdmin := res.Identity.(domain.APIKey); isAdmin {
		if !domain.HasScope(key, domain.ScopeConfigRead) {
			fail(c, apperrors.ErrForbidden("missing config:read scope"))
			return
		}
		workspaceID, err := s.replica.ProjectWorkspace(c.Request.Context(), projectID)
		if err != nil {
			fail(c, err)
			return
		}
		if !domain.HasProjectAccess(key, projectID, workspaceID) {
			fail(c, apperrors.ErrForbidden("key does not reach this project"))
			return
		}
	} else {
		fail(c, apperrors.ErrInvalidToken())
		return
	}

	configs, err := s.replica.GetProjectConfigs(c.Request.Context(), projectID, environmentID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"configs": configs})
}

func bearerFromRequest(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	raw := parts[1]
	if !strings.HasPrefix(raw, token.SDKPrefix+"_") && !strings.HasPrefix(raw, token.AdminPrefix+"_") {
		return "", false
	}
	return raw, true
}
