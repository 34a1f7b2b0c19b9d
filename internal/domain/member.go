package domain

// Role names reused across membership tables. The persisted enums live in
// the ent schemas; these mirror them for payloads and snapshots.
const (
	WorkspaceRoleAdmin  = "admin"
	WorkspaceRoleMember = "member"

	ProjectRoleAdmin      = "admin"
	ProjectRoleMaintainer = "maintainer"

	ConfigRoleEditor     = "editor"
	ConfigRoleMaintainer = "maintainer"
)

// ConfigMember is one entry of a config's member roster, embedded in version
// snapshots and proposal payloads.
type ConfigMember struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// DiffMembers computes roster changes from the current roster to the desired
// one. Changed roles surface as removed+added so callers can apply the diff
// with plain inserts and deletes.
func DiffMembers(current, desired []ConfigMember) (added, removed []ConfigMember) {
	curr := make(map[string]string, len(current))
	for _, m := range current {
		curr[NormalizeEmail(m.Email)] = m.Role
	}
	want := make(map[string]string, len(desired))
	for _, m := range desired {
		want[NormalizeEmail(m.Email)] = m.Role
	}

	for _, m := range desired {
		email := NormalizeEmail(m.Email)
		if role, ok := curr[email]; !ok || role != m.Role {
			added = append(added, ConfigMember{Email: email, Role: m.Role})
		}
	}
	for _, m := range current {
		email := NormalizeEmail(m.Email)
		if role, ok := want[email]; !ok || role != m.Role {
			removed = append(removed, ConfigMember{Email: email, Role: m.Role})
		}
	}
	return added, removed
}

// SameMembers reports whether two rosters are identical up to ordering.
func SameMembers(a, b []ConfigMember) bool {
	added, removed := DiffMembers(a, b)
	return len(added) == 0 && len(removed) == 0
}
