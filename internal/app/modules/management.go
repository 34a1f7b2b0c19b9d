package modules

import (
	"context"

	"replane.io/replane/internal/api/handlers"
	"replane.io/replane/internal/usecase"
)

// ManagementModule owns the control-plane write path: workspaces,
// projects, configs, proposals and keys.
type ManagementModule struct {
	useCases *usecase.UseCases
}

func NewManagementModule(infra *Infrastructure) *ManagementModule {
	return &ManagementModule{
		useCases: usecase.New(infra.EntClient, infra.Config, infra.Replica),
	}
}

func (m *ManagementModule) Name() string { return "management" }

func (m *ManagementModule) ContributeServerDeps(deps *handlers.ServerDeps) {
	deps.UseCases = m.useCases
}

func (m *ManagementModule) Shutdown(context.Context) error { return nil }
