package handlers

import (
	"encoding/json"
	"time"

	"replane.io/replane/ent"
	"replane.io/replane/internal/domain"
	"replane.io/replane/internal/override"
	"replane.io/replane/internal/usecase"
)

// Wire shapes of the management API. Ent rows stay internal; these
// carry camelCase field names and drop hashes and other server-only
// columns.

type workspaceDTO struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	AutoAddNewUsers bool      `json:"autoAddNewUsers"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type workspaceMemberDTO struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role"`
}

type projectDTO struct {
	ID                 string    `json:"id"`
	WorkspaceID        string    `json:"workspaceId"`
	Name               string    `json:"name"`
	Description        string    `json:"description,omitempty"`
	RequireProposals   bool      `json:"requireProposals"`
	AllowSelfApprovals bool      `json:"allowSelfApprovals"`
	CreatedBy          string    `json:"createdBy"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

type projectUserDTO struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

type environmentDTO struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Order            int    `json:"order"`
	RequireProposals bool   `json:"requireProposals"`
}

type configDTO struct {
	ID          string                `json:"id"`
	ProjectID   string                `json:"projectId"`
	Name        string                `json:"name"`
	Description string                `json:"description,omitempty"`
	Version     int                   `json:"version"`
	Value       json.RawMessage       `json:"value"`
	Schema      json.RawMessage       `json:"schema,omitempty"`
	Overrides   []override.Override   `json:"overrides"`
	CreatedBy   string                `json:"createdBy"`
	CreatedAt   time.Time             `json:"createdAt"`
	UpdatedAt   time.Time             `json:"updatedAt"`
	Members     []domain.ConfigMember `json:"members,omitempty"`
	Variants    []variantDTO          `json:"variants,omitempty"`
	Pending     int                   `json:"pendingProposals,omitempty"`
}

type variantDTO struct {
	EnvironmentID string              `json:"environmentId"`
	Version       int                 `json:"version"`
	Value         json.RawMessage     `json:"value"`
	Schema        json.RawMessage     `json:"schema,omitempty"`
	UseBaseSchema bool                `json:"useBaseSchema"`
	Overrides     []override.Override `json:"overrides"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

type configVersionDTO struct {
	Version     int                   `json:"version"`
	Description string                `json:"description,omitempty"`
	Value       json.RawMessage       `json:"value"`
	Schema      json.RawMessage       `json:"schema,omitempty"`
	Overrides   []override.Override   `json:"overrides"`
	Members     []domain.ConfigMember `json:"members,omitempty"`
	CreatedBy   string                `json:"createdBy"`
	CreatedAt   time.Time             `json:"createdAt"`
	ProposalID  string                `json:"proposalId,omitempty"`
}

type variantVersionDTO struct {
	Version       int                 `json:"version"`
	EnvironmentID string              `json:"environmentId"`
	Value         json.RawMessage     `json:"value"`
	Schema        json.RawMessage     `json:"schema,omitempty"`
	UseBaseSchema bool                `json:"useBaseSchema"`
	Overrides     []override.Override `json:"overrides"`
	CreatedBy     string              `json:"createdBy"`
	CreatedAt     time.Time           `json:"createdAt"`
	ProposalID    string              `json:"proposalId,omitempty"`
}

type proposalDTO struct {
	ID                string                   `json:"id"`
	ConfigID          string                   `json:"configId"`
	Author            string                   `json:"author"`
	Message           string                   `json:"message,omitempty"`
	Status            string                   `json:"status"`
	BaseVersion       int                      `json:"baseVersion"`
	IsDelete          bool                     `json:"isDelete"`
	Original          domain.ConfigState       `json:"original"`
	Proposed          domain.ConfigState       `json:"proposed"`
	Variants          []domain.ProposalVariant `json:"variants,omitempty"`
	Reviewer          string                   `json:"reviewer,omitempty"`
	RejectionReason   string                   `json:"rejectionReason,omitempty"`
	RejectedInFavorOf string                   `json:"rejectedInFavorOf,omitempty"`
	ApproverRole      string                   `json:"approverRole,omitempty"`
	CreatedAt         time.Time                `json:"createdAt"`
	ResolvedAt        *time.Time               `json:"resolvedAt,omitempty"`
}

type adminKeyDTO struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	KeyPrefix   string     `json:"keyPrefix"`
	KeySuffix   string     `json:"keySuffix"`
	Scopes      []string   `json:"scopes"`
	ProjectIDs  []string   `json:"projectIds,omitempty"`
	AllProjects bool       `json:"allProjects"`
	CreatedBy   string     `json:"createdBy"`
	CreatedAt   time.Time  `json:"createdAt"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
	LastUsedAt  *time.Time `json:"lastUsedAt,omitempty"`
}

type sdkKeyDTO struct {
	ID            string     `json:"id"`
	ProjectID     string     `json:"projectId"`
	EnvironmentID string     `json:"environmentId"`
	Name          string     `json:"name"`
	Description   string     `json:"description,omitempty"`
	KeyPrefix     string     `json:"keyPrefix"`
	KeySuffix     string     `json:"keySuffix"`
	CreatedBy     string     `json:"createdBy"`
	CreatedAt     time.Time  `json:"createdAt"`
	LastUsedAt    *time.Time `json:"lastUsedAt,omitempty"`
}

type auditEntryDTO struct {
	ID            string         `json:"id"`
	Action        string         `json:"action"`
	Actor         string         `json:"actor"`
	WorkspaceID   string         `json:"workspaceId,omitempty"`
	ProjectID     string         `json:"projectId,omitempty"`
	ConfigID      string         `json:"configId,omitempty"`
	EnvironmentID string         `json:"environmentId,omitempty"`
	Details       map[string]any `json:"details,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
}

func toWorkspaceDTO(ws *ent.Workspace) workspaceDTO {
	return workspaceDTO{
		ID:              ws.ID,
		Name:            ws.Name,
		AutoAddNewUsers: ws.AutoAddNewUsers,
		CreatedAt:       ws.CreatedAt,
		UpdatedAt:       ws.UpdatedAt,
	}
}

func toWorkspaceMemberDTO(m *ent.WorkspaceMember) workspaceMemberDTO {
	return workspaceMemberDTO{Email: m.Email, Name: m.Name, Role: string(m.Role)}
}

func toProjectDTO(p *ent.Project) projectDTO {
	return projectDTO{
		ID:                 p.ID,
		WorkspaceID:        p.WorkspaceID,
		Name:               p.Name,
		Description:        p.Description,
		RequireProposals:   p.RequireProposals,
		AllowSelfApprovals: p.AllowSelfApprovals,
		CreatedBy:          p.CreatedBy,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func toProjectUserDTO(u *ent.ProjectUser) projectUserDTO {
	return projectUserDTO{Email: u.Email, Role: string(u.Role)}
}

func toEnvironmentDTO(e *ent.Environment) environmentDTO {
	return environmentDTO{
		ID:               e.ID,
		Name:             e.Name,
		Order:            e.Order,
		RequireProposals: e.RequireProposals,
	}
}

func toConfigDTO(c *ent.ConfigItem) configDTO {
	return configDTO{
		ID:          c.ID,
		ProjectID:   c.ProjectID,
		Name:        c.Name,
		Description: c.Description,
		Version:     c.Version,
		Value:       c.Value,
		Schema:      c.Schema,
		Overrides:   c.Overrides,
		CreatedBy:   c.CreatedBy,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toConfigViewDTO(v *usecase.ConfigView) configDTO {
	dto := toConfigDTO(v.Config)
	dto.Pending = v.PendingProposals
	for _, m := range v.Members {
		dto.Members = append(dto.Members, domain.ConfigMember{Email: m.Email, Role: string(m.Role)})
	}
	for _, vr := range v.Variants {
		dto.Variants = append(dto.Variants, toVariantDTO(vr))
	}
	return dto
}

func toVariantDTO(v *ent.ConfigVariant) variantDTO {
	return variantDTO{
		EnvironmentID: v.EnvironmentID,
		Version:       v.Version,
		Value:         v.Value,
		Schema:        v.Schema,
		UseBaseSchema: v.UseBaseSchema,
		Overrides:     v.Overrides,
		UpdatedAt:     v.UpdatedAt,
	}
}

func toConfigVersionDTO(v *ent.ConfigVersion) configVersionDTO {
	return configVersionDTO{
		Version:     v.Version,
		Description: v.Description,
		Value:       v.Value,
		Schema:      v.Schema,
		Overrides:   v.Overrides,
		Members:     v.Members,
		CreatedBy:   v.CreatedBy,
		CreatedAt:   v.CreatedAt,
		ProposalID:  v.ProposalID,
	}
}

func toVariantVersionDTO(v *ent.ConfigVariantVersion) variantVersionDTO {
	return variantVersionDTO{
		Version:       v.Version,
		EnvironmentID: v.EnvironmentID,
		Value:         v.Value,
		Schema:        v.Schema,
		UseBaseSchema: v.UseBaseSchema,
		Overrides:     v.Overrides,
		CreatedBy:     v.CreatedBy,
		CreatedAt:     v.CreatedAt,
		ProposalID:    v.ProposalID,
	}
}

func toProposalDTO(p *ent.ConfigProposal, approverRole domain.ApproverRole) proposalDTO {
	return proposalDTO{
		ID:                p.ID,
		ConfigID:          p.ConfigID,
		Author:            p.Author,
		Message:           p.Message,
		Status:            string(p.Status),
		BaseVersion:       p.BaseVersion,
		IsDelete:          p.IsDelete,
		Original:          p.Original,
		Proposed:          p.Proposed,
		Variants:          p.Variants,
		Reviewer:          p.Reviewer,
		RejectionReason:   string(p.RejectionReason),
		RejectedInFavorOf: p.RejectedInFavorOf,
		ApproverRole:      string(approverRole),
		CreatedAt:         p.CreatedAt,
		ResolvedAt:        p.ResolvedAt,
	}
}

func toAdminKeyDTO(k *ent.AdminApiKey) adminKeyDTO {
	dto := adminKeyDTO{
		ID:          k.ID,
		Name:        k.Name,
		Description: k.Description,
		KeyPrefix:   k.KeyPrefix,
		KeySuffix:   k.KeySuffix,
		AllProjects: k.AllProjects,
		CreatedBy:   k.CreatedBy,
		CreatedAt:   k.CreatedAt,
		ExpiresAt:   k.ExpiresAt,
		LastUsedAt:  k.LastUsedAt,
	}
	for _, s := range k.Edges.Scopes {
		dto.Scopes = append(dto.Scopes, string(s.Scope))
	}
	for _, p := range k.Edges.Projects {
		dto.ProjectIDs = append(dto.ProjectIDs, p.ID)
	}
	return dto
}

func toSDKKeyDTO(k *ent.SdkKey) sdkKeyDTO {
	return sdkKeyDTO{
		ID:            k.ID,
		ProjectID:     k.ProjectID,
		EnvironmentID: k.EnvironmentID,
		Name:          k.Name,
		Description:   k.Description,
		KeyPrefix:     k.KeyPrefix,
		KeySuffix:     k.KeySuffix,
		CreatedBy:     k.CreatedBy,
		CreatedAt:     k.CreatedAt,
		LastUsedAt:    k.LastUsedAt,
	}
}

func toAuditEntryDTO(e *ent.AuditLog) auditEntryDTO {
	return auditEntryDTO{
		ID:            e.ID,
		Action:        e.Action,
		Actor:         e.Actor,
		WorkspaceID:   e.WorkspaceID,
		ProjectID:     e.ProjectID,
		ConfigID:      e.ConfigID,
		EnvironmentID: e.EnvironmentID,
		Details:       e.Details,
		CreatedAt:     e.CreatedAt,
	}
}
