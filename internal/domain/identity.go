// Package domain holds the core model types shared across services and use
// cases: the caller identity union, API-key scopes and membership payloads.
package domain

import (
	"strings"

	apperrors "replane.io/replane/internal/pkg/errors"
)

// Identity is the tagged principal carried with every operation. It is a
// sealed sum type: User (authenticated human), APIKey (workspace-scoped
// admin key) or Superuser (instance tooling bypass).
type Identity interface {
	identity()
}

// User is an authenticated human principal.
type User struct {
	ID    string
	Email string
	Name  string
}

func (User) identity() {}

// APIKey is a programmatic caller authenticated by an admin API key.
// ProjectIDs == nil means access to every project in the workspace.
type APIKey struct {
	KeyID       string
	WorkspaceID string
	ProjectIDs  []string
	Scopes      []Scope
}

func (APIKey) identity() {}

// Superuser bypasses every permission predicate. Only operational tooling
// constructs it; it never enters through the HTTP surface.
type Superuser struct{}

func (Superuser) identity() {}

// RequireUser returns the caller as a User with a normalized email, or a
// forbidden error for API keys and superusers. Operations that attribute
// authorship to a person (workspace creation, account deletion, role
// changes, restores) gate on it.
func RequireUser(id Identity) (User, error) {
	u, ok := id.(User)
	if !ok {
		return User{}, apperrors.Forbidden(apperrors.CodeUserIdentityRequired,
			"this operation requires a signed-in user")
	}
	u.Email = NormalizeEmail(u.Email)
	return u, nil
}

// IsSuperuser reports whether the identity bypasses permission checks.
func IsSuperuser(id Identity) bool {
	_, ok := id.(Superuser)
	return ok
}

// ActorID returns the stable id used for authorship fields and audit rows:
// the user's email, the API key id, or "superuser".
func ActorID(id Identity) string {
	switch v := id.(type) {
	case User:
		return NormalizeEmail(v.Email)
	case APIKey:
		return v.KeyID
	case Superuser:
		return "superuser"
	default:
		return ""
	}
}

// NormalizeEmail lowercases and trims an email for membership comparisons.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
