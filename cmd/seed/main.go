// Package main seeds a demo tenant: one workspace, one project with
// Production/Staging environments, and a sample feature flag. Since the
// control plane issues no passwords, the command also prints a session
// token for the seeded owner so the management API is reachable
// immediately.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"replane.io/replane/internal/api/middleware"
	"replane.io/replane/internal/app/modules"
	"replane.io/replane/internal/config"
	"replane.io/replane/internal/domain"
	"replane.io/replane/internal/infrastructure"
	"replane.io/replane/internal/override"
	apperrors "replane.io/replane/internal/pkg/errors"
	"replane.io/replane/internal/pkg/logger"
	"replane.io/replane/internal/usecase"
)

const ownerEmail = "owner@replane.local"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(ctx); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	logger.Info("Starting data seeding...")

	owner := domain.User{Email: ownerEmail, Name: "Replane Owner"}
	uc := usecase.New(db.EntClient, cfg, nil)

	if err := seedTenant(ctx, uc, owner); err != nil {
		return fmt.Errorf("seed tenant: %w", err)
	}

	token, expires, err := middleware.GenerateSessionToken(modules.NewSessionConfig(cfg), owner)
	if err != nil {
		return fmt.Errorf("mint session token: %w", err)
	}

	logger.Info("Data seeding completed successfully")
	fmt.Printf("owner:   %s\n", owner.Email)
	fmt.Printf("session: %s\n", token)
	fmt.Printf("expires: %s\n", expires.Format("2006-01-02 15:04:05 MST"))
	return nil
}

// seedTenant is idempotent: rerunning against a seeded database is a
// no-op thanks to the name-taken guards.
func seedTenant(ctx context.Context, uc *usecase.UseCases, owner domain.User) error {
	existing, err := uc.ListWorkspaces(ctx, owner)
	if err != nil {
		return err
	}
	for _, ws := range existing {
		if ws.Name == "Acme" {
			logger.Info("Workspace already seeded, skipping")
			return nil
		}
	}

	ws, err := uc.CreateWorkspace(ctx, owner, "Acme")
	if err != nil {
		return err
	}

	proj, err := uc.CreateProject(ctx, owner, usecase.CreateProjectParams{
		WorkspaceID:  ws.ID,
		Name:         "storefront",
		Description:  "Demo project",
		Environments: []string{"Production", "Staging"},
	})
	if err != nil {
		if apperrors.IsCode(err, apperrors.CodeNameTaken) {
			logger.Info("Project already seeded, skipping", zap.String("project", "storefront"))
			return nil
		}
		return err
	}

	_, err = uc.CreateConfig(ctx, owner, usecase.CreateConfigInput{
		ProjectID:   proj.ID,
		Name:        "checkout-redesign",
		Description: "Demo feature flag with a cohort override",
		Value:       json.RawMessage(`false`),
		Overrides: []override.Override{
			{
				Name:  "beta cohort",
				Value: json.RawMessage(`true`),
				Conditions: []override.Condition{
					{
						Operator: override.OpEquals,
						Property: "cohort",
						Value:    override.Literal(json.RawMessage(`"beta"`)),
					},
				},
			},
		},
	})
	if err != nil {
		return err
	}

	logger.Info("Seeded demo tenant",
		zap.String("workspace", ws.ID),
		zap.String("project", proj.ID),
	)
	return nil
}
