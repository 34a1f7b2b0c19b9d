package modules

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"replane.io/replane/ent"
	"replane.io/replane/internal/config"
	"replane.io/replane/internal/infrastructure"
	"replane.io/replane/internal/pkg/worker"
	"replane.io/replane/internal/replica"
)

// Infrastructure holds shared cross-cutting dependencies for all modules.
// It is a provider, not a Module.
type Infrastructure struct {
	Config    *config.Config
	DB        *infrastructure.DatabaseClients
	Pools     *worker.Pools
	EntClient *ent.Client
	Pool      *pgxpool.Pool

	// Replica is the environment-scoped config view cache. Management
	// mutations invalidate it; the SDK surface reads through it.
	Replica *replica.Service
}

// NewInfrastructure initializes DB/pools and shared services.
func NewInfrastructure(ctx context.Context, cfg *config.Config) (*Infrastructure, error) {
	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}

	// Dev-mode: auto-create Ent tables.
	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	pools, err := worker.NewPools(ctx, worker.PoolConfig{
		GeneralPoolSize: cfg.Worker.GeneralPoolSize,
		TouchPoolSize:   cfg.Worker.TouchPoolSize,
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init worker pools: %w", err)
	}

	return &Infrastructure{
		Config:    cfg,
		DB:        db,
		Pools:     pools,
		EntClient: db.EntClient,
		Pool:      db.Pool,
		Replica:   replica.NewService(db.EntClient, cfg.SDK.ReplicaCacheSize, cfg.SDK.ReplicaCacheTTL),
	}, nil
}

// Close releases infra resources in reverse dependency order.
func (i *Infrastructure) Close() {
	if i == nil {
		return
	}
	if i.Pools != nil {
		i.Pools.Shutdown()
	}
	if i.DB != nil {
		i.DB.Close()
	}
}
