package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"replane.io/replane/ent"
	"replane.io/replane/internal/domain"
	"replane.io/replane/internal/usecase"
)

type createProposalRequest struct {
	BaseVersion int                      `json:"baseVersion" binding:"required"`
	IsDelete    bool                     `json:"isDelete"`
	Message     string                   `json:"message"`
	Proposed    domain.ConfigState       `json:"proposed"`
	Variants    []domain.ProposalVariant `json:"variants"`
}

func (s *Server) CreateProposal(c *gin.Context) {
	var req createProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	prop, err := s.uc.CreateProposal(c.Request.Context(), identity(c), usecase.CreateProposalInput{
		ConfigID:    c.Param("configId"),
		BaseVersion: req.BaseVersion,
		IsDelete:    req.IsDelete,
		Message:     req.Message,
		Proposed:    req.Proposed,
		Variants:    req.Variants,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, toProposalDTO(prop, ""))
}

func (s *Server) GetProposal(c *gin.Context) {
	view, err := s.uc.GetProposal(c.Request.Context(), identity(c), c.Param("proposalId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toProposalDTO(view.Proposal, view.ApproverRole))
}

func (s *Server) ApproveProposal(c *gin.Context) {
	prop, err := s.uc.ApproveProposal(c.Request.Context(), identity(c), c.Param("proposalId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toProposalDTO(prop, ""))
}

func (s *Server) RejectProposal(c *gin.Context) {
	prop, err := s.uc.RejectProposal(c.Request.Context(), identity(c), c.Param("proposalId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toProposalDTO(prop, ""))
}

func (s *Server) ListProjectProposals(c *gin.Context) {
	list, err := s.uc.ListPendingProposals(c.Request.Context(), identity(c), c.Param("projectId"), "")
	if err != nil {
		fail(c, err)
		return
	}
	s.renderProposalList(c, list)
}

func (s *Server) ListConfigProposals(c *gin.Context) {
	list, err := s.uc.ListPendingProposals(c.Request.Context(), identity(c), "", c.Param("configId"))
	if err != nil {
		fail(c, err)
		return
	}
	s.renderProposalList(c, list)
}

func (s *Server) renderProposalList(c *gin.Context, list []*ent.ConfigProposal) {
	out := make([]proposalDTO, 0, len(list))
	for _, p := range list {
		out = append(out, toProposalDTO(p, s.uc.ClassifyProposal(p)))
	}
	c.JSON(http.StatusOK, gin.H{"proposals": out})
}
