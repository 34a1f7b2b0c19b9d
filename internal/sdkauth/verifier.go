// Package sdkauth verifies bearer tokens on the hot read path. A small
// TTL cache holds in-flight verification futures keyed by the raw
// token, so a burst of requests with the same key shares one database
// round-trip and one hash check.
package sdkauth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"

	"replane.io/replane/ent"
	"replane.io/replane/ent/adminapikey"
	"replane.io/replane/ent/sdkkey"
	"replane.io/replane/internal/domain"
	apperrors "replane.io/replane/internal/pkg/errors"
	"replane.io/replane/internal/pkg/logger"
	"replane.io/replane/internal/pkg/worker"
	"replane.io/replane/internal/token"
)

// Binding is what an SDK key grants: read access to exactly one
// environment of one project.
type Binding struct {
	KeyID         string
	ProjectID     string
	EnvironmentID string
}

// Result is the outcome of a successful verification. Exactly one of
// Identity (admin key) or Binding (SDK key) is set.
type Result struct {
	Identity domain.Identity
	Binding  *Binding
}

type future struct {
	done chan struct{}
	res  Result
	err  error
}

type Verifier struct {
	client      *ent.Client
	pools       *worker.Pools
	adminHasher token.Hasher
	sdkHasher   token.Hasher

	mu    sync.Mutex
	cache *expirable.LRU[string, *future]
}

func NewVerifier(client *ent.Client, pools *worker.Pools, adminHasher token.Hasher, cacheSize int, ttl time.Duration) *Verifier {
	return &Verifier{
		client:      client,
		pools:       pools,
		adminHasher: adminHasher,
		sdkHasher:   token.SHA256Hasher{},
		cache:       expirable.NewLRU[string, *future](cacheSize, nil, ttl),
	}
}

// Verify resolves a raw bearer token to its identity or binding.
// Concurrent calls for the same token coalesce onto one lookup; a
// failed lookup is evicted immediately so a deleted-then-recreated key
// does not stay poisoned for a full TTL.
func (v *Verifier) Verify(ctx context.Context, raw string) (Result, error) {
	v.mu.Lock()
	if f, ok := v.cache.Get(raw); ok {
		v.mu.Unlock()
		return v.wait(ctx, f)
	}
	f := &future{done: make(chan struct{})}
	v.cache.Add(raw, f)
	v.mu.Unlock()

	f.res, f.err = v.resolve(ctx, raw)
	if f.err != nil {
		v.mu.Lock()
		v.cache.Remove(raw)
		v.mu.Unlock()
	}
	close(f.done)
	return f.res, f.err
}

func (v *Verifier) wait(ctx context.Context, f *future) (Result, error) {
	select {
	case <-f.done:
		return f.res, f.err
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}

func (v *Verifier) resolve(ctx context.Context, raw string) (Result, error) {
	prefix, id, err := token.Parse(raw)
	if err != nil {
		return Result{}, apperrors.ErrInvalidToken()
	}
	switch prefix {
	case token.AdminPrefix:
		return v.resolveAdmin(ctx, raw, id)
	case token.SDKPrefix:
		return v.resolveSDK(ctx, raw, id)
	default:
		return Result{}, apperrors.ErrInvalidToken()
	}
}

func (v *Verifier) resolveAdmin(ctx context.Context, raw string, id uuid.UUID) (Result, error) {
	key, err := v.client.AdminApiKey.Query().
		Where(adminapikey.ID(id.String())).
		WithScopes().
		WithProjects().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return Result{}, apperrors.ErrInvalidToken()
		}
		return Result{}, fmt.Errorf("load admin key: %w", err)
	}
	if !v.adminHasher.Verify(raw, key.KeyHash) {
		return Result{}, apperrors.ErrInvalidToken()
	}
	if key.ExpiresAt != nil && !key.ExpiresAt.After(time.Now()) {
		return Result{}, apperrors.ErrInvalidToken()
	}

	scopes := make([]domain.Scope, 0, len(key.Edges.Scopes))
	for _, s := range key.Edges.Scopes {
		scopes = append(scopes, domain.Scope(s.Scope))
	}
	var projectIDs []string
	if !key.AllProjects {
		projectIDs = make([]string, 0, len(key.Edges.Projects))
		for _, p := range key.Edges.Projects {
			projectIDs = append(projectIDs, p.ID)
		}
	}

	v.touchAdmin(key.ID)
	return Result{Identity: domain.APIKey{
		KeyID:       key.ID,
		WorkspaceID: key.WorkspaceID,
		ProjectIDs:  projectIDs,
		Scopes:      scopes,
	}}, nil
}

func (v *Verifier) resolveSDK(ctx context.Context, raw string, id uuid.UUID) (Result, error) {
	key, err := v.client.SdkKey.Query().
		Where(sdkkey.ID(id.String())).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return Result{}, apperrors.ErrInvalidToken()
		}
		return Result{}, fmt.Errorf("load sdk key: %w", err)
	}
	if !v.sdkHasher.Verify(raw, key.KeyHash) {
		return Result{}, apperrors.ErrInvalidToken()
	}

	v.touchSDK(key.ID)
	return Result{Binding: &Binding{
		KeyID:         key.ID,
		ProjectID:     key.ProjectID,
		EnvironmentID: key.EnvironmentID,
	}}, nil
}

// touchAdmin and touchSDK record last_used_at off the request path.
// Best effort: a dropped or failed touch loses a timestamp, never a
// request.

func (v *Verifier) touchAdmin(keyID string) {
	v.submitTouch(func(ctx context.Context) {
		err := v.client.AdminApiKey.UpdateOneID(keyID).
			SetLastUsedAt(time.Now()).
			Exec(ctx)
		if err != nil && !ent.IsNotFound(err) {
			logger.Debug("admin key touch failed", zap.String("key_id", keyID), zap.Error(err))
		}
	})
}

func (v *Verifier) touchSDK(keyID string) {
	v.submitTouch(func(ctx context.Context) {
		err := v.client.SdkKey.UpdateOneID(keyID).
			SetLastUsedAt(time.Now()).
			Exec(ctx)
		if err != nil && !ent.IsNotFound(err) {
			logger.Debug("sdk key touch failed", zap.String("key_id", keyID), zap.Error(err))
		}
	})
}

func (v *Verifier) submitTouch(task worker.Task) {
	if v.pools == nil {
		return
	}
	if err := v.pools.SubmitDetached("touch", task); err != nil {
		logger.Debug("touch dropped", zap.Error(err))
	}
}
