// Package replica serves the SDK read path: an environment-scoped,
// reference-resolved view of a project's configs, with an in-process
// cache in front of the store.
package replica

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"replane.io/replane/ent"
	entconfig "replane.io/replane/ent/configitem"
	"replane.io/replane/ent/configvariant"
	"replane.io/replane/ent/environment"
	"replane.io/replane/internal/override"
	apperrors "replane.io/replane/internal/pkg/errors"
)

// ResolvedConfig is one entry of the SDK payload. Overrides carry
// their condition trees verbatim except that reference operands are
// replaced with the literal they point at, so clients evaluate against
// the attribute bag alone.
type ResolvedConfig struct {
	Name      string              `json:"name"`
	Value     json.RawMessage     `json:"value"`
	Overrides []override.Override `json:"overrides,omitempty"`
	Version   int                 `json:"version"`
}

type Service struct {
	client *ent.Client
	cache  *expirable.LRU[string, []ResolvedConfig]
}

func NewService(client *ent.Client, cacheSize int, ttl time.Duration) *Service {
	return &Service{
		client: client,
		cache:  expirable.NewLRU[string, []ResolvedConfig](cacheSize, nil, ttl),
	}
}

func cacheKey(projectID, environmentID string) string {
	return projectID + ":" + environmentID
}

// GetProjectConfigs returns the effective config list for one
// environment. Variant rows shadow the config base; configs without a
// variant for the environment fall back to their default state.
func (s *Service) GetProjectConfigs(ctx context.Context, projectID, environmentID string) ([]ResolvedConfig, error) {
	if cached, ok := s.cache.Get(cacheKey(projectID, environmentID)); ok {
		return cached, nil
	}

	exists, err := s.client.Environment.Query().
		Where(environment.ID(environmentID), environment.ProjectID(projectID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check environment: %w", err)
	}
	if !exists {
		return nil, apperrors.NotFound(apperrors.CodeEnvironmentNotFound, "environment not found")
	}

	configs, err := s.client.ConfigItem.Query().
		Where(entconfig.ProjectID(projectID)).
		Order(ent.Asc(entconfig.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load configs: %w", err)
	}

	variants, err := s.client.ConfigVariant.Query().
		Where(configvariant.EnvironmentID(environmentID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load variants: %w", err)
	}
	byConfig := make(map[string]*ent.ConfigVariant, len(variants))
	for _, v := range variants {
		byConfig[v.ConfigID] = v
	}

	out := make([]ResolvedConfig, 0, len(configs))
	for _, cfg := range configs {
		rc := ResolvedConfig{Name: cfg.Name, Value: cfg.Value, Overrides: cfg.Overrides, Version: cfg.Version}
		if v, ok := byConfig[cfg.ID]; ok {
			rc.Value = v.Value
			rc.Overrides = v.Overrides
			rc.Version = v.Version
		}
		out = append(out, rc)
	}

	// References resolve against the same environment-effective view,
	// one hop only; a chain of references bottoms out at null.
	index := make(map[string]ResolvedConfig, len(out))
	for _, rc := range out {
		index[rc.Name] = rc
	}
	resolver := override.ResolverFunc(func(configName string, path []override.PathSegment) (json.RawMessage, bool) {
		rc, ok := index[configName]
		if !ok {
			return nil, false
		}
		return override.ValueAtPath(rc.Value, path)
	})
	for i := range out {
		if len(out[i].Overrides) > 0 {
			out[i].Overrides = override.ResolveReferences(out[i].Overrides, resolver)
		}
	}

	s.cache.Add(cacheKey(projectID, environmentID), out)
	return out, nil
}

// ProjectWorkspace returns the workspace a project belongs to. The SDK
// surface uses it to pin admin keys to their own workspace.
func (s *Service) ProjectWorkspace(ctx context.Context, projectID string) (string, error) {
	proj, err := s.client.Project.Get(ctx, projectID)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", apperrors.NotFound(apperrors.CodeProjectNotFound, "project not found")
		}
		return "", fmt.Errorf("load project: %w", err)
	}
	return proj.WorkspaceID, nil
}

// Invalidate drops every cached environment view of the project. Called
// after any version bump; the next read rebuilds from the store.
func (s *Service) Invalidate(projectID string) {
	prefix := projectID + ":"
	for _, key := range s.cache.Keys() {
		if strings.HasPrefix(key, prefix) {
			s.cache.Remove(key)
		}
	}
}
