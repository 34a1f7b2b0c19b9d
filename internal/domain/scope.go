package domain

// Scope is a capability token attached to an admin API key. The set is
// closed; unknown scopes are rejected at key creation.
type Scope string

const (
	ScopeProjectRead      Scope = "project:read"
	ScopeProjectWrite     Scope = "project:write"
	ScopeConfigRead       Scope = "config:read"
	ScopeConfigWrite      Scope = "config:write"
	ScopeEnvironmentRead  Scope = "environment:read"
	ScopeEnvironmentWrite Scope = "environment:write"
	ScopeSdkKeyRead       Scope = "sdk_key:read"
	ScopeSdkKeyWrite      Scope = "sdk_key:write"
	ScopeMemberRead       Scope = "member:read"
	ScopeMemberWrite      Scope = "member:write"
)

// AllScopes lists every valid scope in display order.
var AllScopes = []Scope{
	ScopeProjectRead, ScopeProjectWrite,
	ScopeConfigRead, ScopeConfigWrite,
	ScopeEnvironmentRead, ScopeEnvironmentWrite,
	ScopeSdkKeyRead, ScopeSdkKeyWrite,
	ScopeMemberRead, ScopeMemberWrite,
}

// ValidScope reports whether s belongs to the closed scope set.
func ValidScope(s Scope) bool {
	for _, known := range AllScopes {
		if s == known {
			return true
		}
	}
	return false
}

// readScopeOf maps a write scope to the read scope it implies.
var readScopeOf = map[Scope]Scope{
	ScopeProjectWrite:     ScopeProjectRead,
	ScopeConfigWrite:      ScopeConfigRead,
	ScopeEnvironmentWrite: ScopeEnvironmentRead,
	ScopeSdkKeyWrite:      ScopeSdkKeyRead,
	ScopeMemberWrite:      ScopeMemberRead,
}

// HasScope reports whether the identity carries the scope. Superusers carry
// every scope; users carry none (their access is role-based). Write scopes
// imply the matching read scope.
func HasScope(id Identity, scope Scope) bool {
	switch v := id.(type) {
	case Superuser:
		return true
	case APIKey:
		for _, s := range v.Scopes {
			if s == scope {
				return true
			}
			if implied, ok := readScopeOf[s]; ok && implied == scope {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// HasProjectAccess reports whether an identity may touch the given project
// at all. Users are filtered by role lookups elsewhere; this predicate
// implements the API-key restriction: same workspace, and, when the key is
// project-restricted, a project id within the restriction list.
func HasProjectAccess(id Identity, projectID, workspaceID string) bool {
	switch v := id.(type) {
	case Superuser:
		return true
	case User:
		return true
	case APIKey:
		if v.WorkspaceID != workspaceID {
			return false
		}
		if v.ProjectIDs == nil {
			return true
		}
		for _, p := range v.ProjectIDs {
			if p == projectID {
				return true
			}
		}
		return false
	default:
		return false
	}
}
