package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"replane.io/replane/ent/workspacemember"
	"replane.io/replane/internal/usecase"
)

type createWorkspaceRequest struct {
	Name string `json:"name" binding:"required"`
}

func (s *Server) CreateWorkspace(c *gin.Context) {
	var req createWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	ws, err := s.uc.CreateWorkspace(c.Request.Context(), identity(c), req.Name)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, toWorkspaceDTO(ws))
}

func (s *Server) ListWorkspaces(c *gin.Context) {
	list, err := s.uc.ListWorkspaces(c.Request.Context(), identity(c))
	if err != nil {
		fail(c, err)
		return
	}
	out := make([]workspaceDTO, 0, len(list))
	for _, ws := range list {
		out = append(out, toWorkspaceDTO(ws))
	}
	c.JSON(http.StatusOK, gin.H{"workspaces": out})
}

func (s *Server) GetWorkspace(c *gin.Context) {
	ws, members, err := s.uc.GetWorkspace(c.Request.Context(), identity(c), c.Param("workspaceId"))
	if err != nil {
		fail(c, err)
		return
	}
	memberDTOs := make([]workspaceMemberDTO, 0, len(members))
	for _, m := range members {
		memberDTOs = append(memberDTOs, toWorkspaceMemberDTO(m))
	}
	c.JSON(http.StatusOK, gin.H{
		"workspace": toWorkspaceDTO(ws),
		"members":   memberDTOs,
	})
}

type updateWorkspaceRequest struct {
	Name            *string `json:"name"`
	AutoAddNewUsers *bool   `json:"autoAddNewUsers"`
}

func (s *Server) UpdateWorkspace(c *gin.Context) {
	var req updateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	ws, err := s.uc.UpdateWorkspace(c.Request.Context(), identity(c), c.Param("workspaceId"), usecase.UpdateWorkspaceParams{
		Name:            req.Name,
		AutoAddNewUsers: req.AutoAddNewUsers,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toWorkspaceDTO(ws))
}

func (s *Server) DeleteWorkspace(c *gin.Context) {
	if err := s.uc.DeleteWorkspace(c.Request.Context(), identity(c), c.Param("workspaceId")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type addWorkspaceMemberRequest struct {
	Email string `json:"email" binding:"required"`
	Name  string `json:"name"`
	Role  string `json:"role" binding:"required,oneof=admin member"`
}

func (s *Server) AddWorkspaceMember(c *gin.Context) {
	var req addWorkspaceMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	m, err := s.uc.AddWorkspaceMember(c.Request.Context(), identity(c),
		c.Param("workspaceId"), req.Email, req.Name, workspacemember.Role(req.Role))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, toWorkspaceMemberDTO(m))
}

type changeMemberRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=admin member"`
}

func (s *Server) ChangeWorkspaceMemberRole(c *gin.Context) {
	var req changeMemberRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	m, err := s.uc.ChangeWorkspaceMemberRole(c.Request.Context(), identity(c),
		c.Param("workspaceId"), c.Param("email"), workspacemember.Role(req.Role))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toWorkspaceMemberDTO(m))
}

func (s *Server) RemoveWorkspaceMember(c *gin.Context) {
	err := s.uc.RemoveWorkspaceMember(c.Request.Context(), identity(c),
		c.Param("workspaceId"), c.Param("email"))
	if err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) DeleteAccount(c *gin.Context) {
	if err := s.uc.DeleteUserAccount(c.Request.Context(), identity(c)); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
