package modules

import (
	"context"

	"replane.io/replane/internal/api/handlers"
	"replane.io/replane/internal/replica"
	"replane.io/replane/internal/sdkauth"
	"replane.io/replane/internal/token"
)

// SDKModule owns the read path: bearer verification and the replica
// view the SDK endpoint serves from.
type SDKModule struct {
	verifier *sdkauth.Verifier
	replica  *replica.Service
}

func NewSDKModule(infra *Infrastructure) *SDKModule {
	cfg := infra.Config
	adminHasher := token.NewArgon2Hasher(token.Argon2Params{
		MemoryCost:  cfg.Security.AdminKeyHashMemoryCost,
		TimeCost:    cfg.Security.AdminKeyHashTimeCost,
		Parallelism: cfg.Security.AdminKeyHashParallelism,
	})
	return &SDKModule{
		verifier: sdkauth.NewVerifier(
			infra.EntClient,
			infra.Pools,
			adminHasher,
			cfg.SDK.VerifierCacheSize,
			cfg.SDK.VerifierCacheTTL,
		),
		replica: infra.Replica,
	}
}

func (m *SDKModule) Name() string { return "sdk" }

func (m *SDKModule) ContributeServerDeps(deps *handlers.ServerDeps) {
	deps.Verifier = m.verifier
	deps.Replica = m.replica
}

func (m *SDKModule) Shutdown(context.Context) error { return nil }
