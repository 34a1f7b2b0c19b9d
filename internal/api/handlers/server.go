// Package handlers implements the HTTP surfaces: the management API
// under /api/v1 and the SDK read surface under /sdk. Handlers bind and
// validate the wire shapes, resolve the caller identity, delegate to
// use cases, and push errors to the centralized error middleware.
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"replane.io/replane/internal/api/middleware"
	"replane.io/replane/internal/domain"
	apperrors "replane.io/replane/internal/pkg/errors"
	"replane.io/replane/internal/replica"
	"replane.io/replane/internal/sdkauth"
	"replane.io/replane/internal/usecase"
)

// Server carries the handler dependencies.
type Server struct {
	uc       *usecase.UseCases
	verifier *sdkauth.Verifier
	replica  *replica.Service
	pool     *pgxpool.Pool
}

// ServerDeps holds all dependencies for creating a Server.
type ServerDeps struct {
	UseCases *usecase.UseCases
	Verifier *sdkauth.Verifier
	Replica  *replica.Service
	Pool     *pgxpool.Pool
}

// NewServer creates a Server.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		uc:       deps.UseCases,
		verifier: deps.Verifier,
		replica:  deps.Replica,
		pool:     deps.Pool,
	}
}

// RegisterManagement mounts the management API on a router group that
// already runs Authenticate + RequireIdentity.
func (s *Server) RegisterManagement(g *gin.RouterGroup) {
	g.GET("/workspaces", s.ListWorkspaces)
	g.POST("/workspaces", s.CreateWorkspace)
	g.GET("/workspaces/:workspaceId", s.GetWorkspace)
	g.PATCH("/workspaces/:workspaceId", s.UpdateWorkspace)
	g.DELETE("/workspaces/:workspaceId", s.DeleteWorkspace)
	g.POST("/workspaces/:workspaceId/members", s.AddWorkspaceMember)
	g.PATCH("/workspaces/:workspaceId/members/:email", s.ChangeWorkspaceMemberRole)
	g.DELETE("/workspaces/:workspaceId/members/:email", s.RemoveWorkspaceMember)

	g.GET("/workspaces/:workspaceId/projects", s.ListProjects)
	g.POST("/workspaces/:workspaceId/projects", s.CreateProject)
	g.GET("/projects/:projectId", s.GetProject)
	g.PATCH("/projects/:projectId", s.UpdateProject)
	g.DELETE("/projects/:projectId", s.DeleteProject)
	g.PUT("/projects/:projectId/users/:email", s.SetProjectUser)
	g.DELETE("/projects/:projectId/users/:email", s.RemoveProjectUser)
	g.GET("/projects/:projectId/export", s.ExportProject)
	g.GET("/projects/:projectId/audit", s.ListProjectAudit)
	g.GET("/projects/:projectId/proposals", s.ListProjectProposals)

	g.POST("/projects/:projectId/environments", s.CreateEnvironment)
	g.PATCH("/projects/:projectId/environments/:environmentId", s.UpdateEnvironment)
	g.DELETE("/projects/:projectId/environments/:environmentId", s.DeleteEnvironment)

	g.GET("/projects/:projectId/configs", s.ListConfigs)
	g.POST("/projects/:projectId/configs", s.CreateConfig)
	g.GET("/configs/:configId", s.GetConfig)
	g.PUT("/configs/:configId", s.UpdateConfig)
	g.DELETE("/configs/:configId", s.DeleteConfig)
	g.PUT("/configs/:configId/variants/:environmentId", s.PatchConfigVariant)
	g.GET("/configs/:configId/versions", s.ListConfigVersions)
	g.POST("/configs/:configId/versions/:version/restore", s.RestoreConfigVersion)
	g.GET("/configs/:configId/variants/:environmentId/versions", s.ListConfigVariantVersions)
	g.POST("/configs/:configId/variants/:environmentId/versions/:version/restore", s.RestoreConfigVariantVersion)
	g.GET("/configs/:configId/audit", s.ListConfigAudit)
	g.GET("/configs/:configId/proposals", s.ListConfigProposals)

	g.POST("/configs/:configId/proposals", s.CreateProposal)
	g.GET("/proposals/:proposalId", s.GetProposal)
	g.POST("/proposals/:proposalId/approve", s.ApproveProposal)
	g.POST("/proposals/:proposalId/reject", s.RejectProposal)

	g.GET("/workspaces/:workspaceId/admin-keys", s.ListAdminKeys)
	g.POST("/workspaces/:workspaceId/admin-keys", s.CreateAdminKey)
	g.DELETE("/workspaces/:workspaceId/admin-keys/:keyId", s.DeleteAdminKey)

	g.GET("/projects/:projectId/sdk-keys", s.ListSDKKeys)
	g.POST("/projects/:projectId/sdk-keys", s.CreateSDKKey)
	g.PATCH("/projects/:projectId/sdk-keys/:keyId", s.UpdateSDKKey)
	g.DELETE("/projects/:projectId/sdk-keys/:keyId", s.DeleteSDKKey)

	g.DELETE("/account", s.DeleteAccount)
}

// RegisterSDK mounts the read surface. It does its own bearer handling;
// SDK tokens never reach the session middleware.
func (s *Server) RegisterSDK(g *gin.RouterGroup) {
	g.GET("/configs", s.SDKGetConfigs)
}

// identity pulls the resolved caller from the request.
func identity(c *gin.Context) domain.Identity {
	id, ok := middleware.Identity(c)
	if !ok {
		return nil
	}
	return id
}

// fail routes an error to the error-handling middleware.
func fail(c *gin.Context, err error) {
	c.Error(err)
	c.Abort()
}

func badRequest(c *gin.Context, msg string) {
	fail(c, apperrors.BadRequest(apperrors.CodeInvalidRequest, msg))
}
