package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "replane.io/replane/internal/pkg/errors"
)

func TestRequireUser(t *testing.T) {
	u, err := RequireUser(User{Email: "  Alice@Example.COM ", Name: "Alice"})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.Equal(t, "Alice", u.Name)

	_, err = RequireUser(APIKey{KeyID: "key-1"})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeUserIdentityRequired))

	_, err = RequireUser(Superuser{})
	assert.Error(t, err)
}

func TestActorID(t *testing.T) {
	assert.Equal(t, "bob@example.com", ActorID(User{Email: "Bob@Example.com"}))
	assert.Equal(t, "key-7", ActorID(APIKey{KeyID: "key-7"}))
	assert.Equal(t, "superuser", ActorID(Superuser{}))
}

func TestHasScope(t *testing.T) {
	key := APIKey{Scopes: []Scope{ScopeConfigWrite, ScopeSdkKeyRead}}

	assert.True(t, HasScope(key, ScopeConfigWrite))
	assert.True(t, HasScope(key, ScopeConfigRead), "write implies read")
	assert.True(t, HasScope(key, ScopeSdkKeyRead))
	assert.False(t, HasScope(key, ScopeSdkKeyWrite), "read never implies write")
	assert.False(t, HasScope(key, ScopeProjectRead))

	assert.True(t, HasScope(Superuser{}, ScopeMemberWrite))
	assert.False(t, HasScope(User{Email: "a@b.c"}, ScopeConfigRead), "user access is role-based, not scoped")
}

func TestValidScope(t *testing.T) {
	for _, s := range AllScopes {
		assert.True(t, ValidScope(s))
	}
	assert.False(t, ValidScope("cluster:admin"))
	assert.False(t, ValidScope(""))
}

func TestHasProjectAccess(t *testing.T) {
	assert.True(t, HasProjectAccess(Superuser{}, "p1", "w1"))
	assert.True(t, HasProjectAccess(User{Email: "a@b.c"}, "p1", "w1"))

	unrestricted := APIKey{WorkspaceID: "w1"}
	assert.True(t, HasProjectAccess(unrestricted, "p1", "w1"))
	assert.False(t, HasProjectAccess(unrestricted, "p1", "w2"), "keys never cross workspaces")

	restricted := APIKey{WorkspaceID: "w1", ProjectIDs: []string{"p1", "p2"}}
	assert.True(t, HasProjectAccess(restricted, "p2", "w1"))
	assert.False(t, HasProjectAccess(restricted, "p3", "w1"))

	// An empty (non-nil) restriction list grants nothing.
	none := APIKey{WorkspaceID: "w1", ProjectIDs: []string{}}
	assert.False(t, HasProjectAccess(none, "p1", "w1"))
}

func TestDiffMembers(t *testing.T) {
	current := []ConfigMember{
		{Email: "alice@example.com", Role: ConfigRoleMaintainer},
		{Email: "bob@example.com", Role: ConfigRoleEditor},
	}
	desired := []ConfigMember{
		{Email: "Alice@Example.com", Role: ConfigRoleMaintainer}, // unchanged up to case
		{Email: "bob@example.com", Role: ConfigRoleMaintainer},   // role change
		{Email: "carol@example.com", Role: ConfigRoleEditor},     // new
	}

	added, removed := DiffMembers(current, desired)

	assert.ElementsMatch(t, []ConfigMember{
		{Email: "bob@example.com", Role: ConfigRoleMaintainer},
		{Email: "carol@example.com", Role: ConfigRoleEditor},
	}, added)
	assert.ElementsMatch(t, []ConfigMember{
		{Email: "bob@example.com", Role: ConfigRoleEditor},
	}, removed)
}

func TestSameMembers(t *testing.T) {
	a := []ConfigMember{
		{Email: "alice@example.com", Role: ConfigRoleMaintainer},
		{Email: "bob@example.com", Role: ConfigRoleEditor},
	}
	b := []ConfigMember{
		{Email: "Bob@example.com", Role: ConfigRoleEditor},
		{Email: "ALICE@example.com", Role: ConfigRoleMaintainer},
	}

	assert.True(t, SameMembers(a, b), "order and email case must not matter")
	assert.False(t, SameMembers(a, a[:1]))
	assert.True(t, SameMembers(nil, nil))
}
