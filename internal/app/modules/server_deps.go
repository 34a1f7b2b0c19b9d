package modules

import (
	"replane.io/replane/internal/api/handlers"
	"replane.io/replane/internal/api/middleware"
	"replane.io/replane/internal/config"
)

// NewServerDeps builds base server deps then lets each module contribute
// explicit wiring.
func NewServerDeps(infra *Infrastructure, mods []Module) handlers.ServerDeps {
	deps := handlers.ServerDeps{
		Pool: infra.Pool,
	}
	for _, mod := range mods {
		if mod == nil {
			continue
		}
		mod.ContributeServerDeps(&deps)
	}
	return deps
}

// NewSessionConfig derives the session token settings from runtime
// configuration.
func NewSessionConfig(cfg *config.Config) middleware.SessionConfig {
	return middleware.SessionConfig{
		SigningKey: []byte(cfg.Security.SessionSecret),
		Issuer:     "replane",
		ExpiresIn:  cfg.Session.Lifetime,
	}
}
