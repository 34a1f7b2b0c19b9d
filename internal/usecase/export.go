package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"replane.io/replane/ent"
	entconfig "replane.io/replane/ent/configitem"
	"replane.io/replane/ent/configuser"
	"replane.io/replane/ent/configvariant"
	"replane.io/replane/ent/environment"
	"replane.io/replane/internal/domain"
	"replane.io/replane/internal/override"
	"replane.io/replane/internal/permission"
)

// ProjectDump is the export document: one self-contained JSON snapshot
// of a project's live state. History, proposals and keys stay out.
type ProjectDump struct {
	Project      DumpProject       `json:"project"`
	Environments []DumpEnvironment `json:"environments"`
	Configs      []DumpConfig      `json:"configs"`
}

type DumpProject struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Description        string `json:"description,omitempty"`
	RequireProposals   bool   `json:"requireProposals"`
	AllowSelfApprovals bool   `json:"allowSelfApprovals"`
}

type DumpEnvironment struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Order            int    `json:"order"`
	RequireProposals bool   `json:"requireProposals"`
}

type DumpConfig struct {
	Name        string                `json:"name"`
	Description string                `json:"description,omitempty"`
	Version     int                   `json:"version"`
	Value       json.RawMessage       `json:"value"`
	Schema      json.RawMessage       `json:"schema,omitempty"`
	Overrides   []override.Override   `json:"overrides,omitempty"`
	Members     []domain.ConfigMember `json:"members,omitempty"`
	Variants    []DumpVariant         `json:"variants,omitempty"`
}

type DumpVariant struct {
	EnvironmentID string              `json:"environmentId"`
	Version       int                 `json:"version"`
	Value         json.RawMessage     `json:"value"`
	Schema        json.RawMessage     `json:"schema,omitempty"`
	UseBaseSchema bool                `json:"useBaseSchema"`
	Overrides     []override.Override `json:"overrides,omitempty"`
}

// ExportProject builds the JSON dump of one project.
func (u *UseCases) ExportProject(ctx context.Context, id domain.Identity, projectID string) (*ProjectDump, error) {
	var dump ProjectDump
	err := u.inTx(ctx, func(tx *ent.Tx, perm *permission.Checker) error {
		proj, err := loadProject(ctx, tx, projectID)
		if err != nil {
			return err
		}
		if err := perm.CanReadConfigs(ctx, id, proj); err != nil {
			return err
		}
		dump.Project = DumpProject{
			ID:                 proj.ID,
			Name:               proj.Name,
			Description:        proj.Description,
			RequireProposals:   proj.RequireProposals,
			AllowSelfApprovals: proj.AllowSelfApprovals,
		}

		envs, err := tx.Environment.Query().
			Where(environment.ProjectID(projectID)).
			Order(ent.Asc(environment.FieldOrder), ent.Asc(environment.FieldName)).
			All(ctx)
		if err != nil {
			return fmt.Errorf("load environments: %w", err)
		}
		dump.Environments = make([]DumpEnvironment, 0, len(envs))
		for _, env := range envs {
			dump.Environments = append(dump.Environments, DumpEnvironment{
				ID:               env.ID,
				Name:             env.Name,
				Order:            env.Order,
				RequireProposals: env.RequireProposals,
			})
		}

		configs, err := tx.ConfigItem.Query().
			Where(entconfig.ProjectID(projectID)).
			Order(ent.Asc(entconfig.FieldName)).
			All(ctx)
		if err != nil {
			return fmt.Errorf("load configs: %w", err)
		}
		dump.Configs = make([]DumpConfig, 0, len(configs))
		for _, cfg := range configs {
			dc := DumpConfig{
				Name:        cfg.Name,
				Description: cfg.Description,
				Version:     cfg.Version,
				Value:       cfg.Value,
				Schema:      cfg.Schema,
				Overrides:   cfg.Overrides,
			}
			users, err := tx.ConfigUser.Query().
				Where(configuser.ConfigID(cfg.ID)).
				Order(ent.Asc(configuser.FieldEmail)).
				All(ctx)
			if err != nil {
				return fmt.Errorf("load config users: %w", err)
			}
			for _, cu := range users {
				dc.Members = append(dc.Members, domain.ConfigMember{
					Email: cu.Email,
					Role:  string(cu.Role),
				})
			}
			variants, err := tx.ConfigVariant.Query().
				Where(configvariant.ConfigID(cfg.ID)).
				All(ctx)
			if err != nil {
				return fmt.Errorf("load variants: %w", err)
			}
			for _, v := range variants {
				dc.Variants = append(dc.Variants, DumpVariant{
					EnvironmentID: v.EnvironmentID,
					Version:       v.Version,
					Value:         v.Value,
					Schema:        v.Schema,
					UseBaseSchema: v.UseBaseSchema,
					Overrides:     v.Overrides,
				})
			}
			dump.Configs = append(dump.Configs, dc)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dump, nil
}
