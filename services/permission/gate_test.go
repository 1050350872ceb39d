// File: pulsecrm/services/permission/gate_test.go
package permission

import (
	"testing"

	"pulsecrm/models"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseRole("admin"))
	assert.Equal(t, RoleManager, ParseRole("manager"))
	assert.Equal(t, RoleUser, ParseRole("user"))

	// Anything unrecognized drops to the least-privileged tier.
	assert.Equal(t, RoleUser, ParseRole(""))
	assert.Equal(t, RoleUser, ParseRole("superadmin"))
	assert.Equal(t, RoleUser, ParseRole("Admin"))
}

func TestRoleString(t *testing.T) {
	assert.Equal(t, "admin", RoleAdmin.String())
	assert.Equal(t, "manager", RoleManager.String())
	assert.Equal(t, "user", RoleUser.String())
}

func TestAllowedMissingRecord(t *testing.T) {
	perms := BuildIndex([]models.Permission{
		{Route: "deals", AdminAccess: true},
	})

	// A route with no stored record is open to every role.
	for _, role := range []Role{RoleUser, RoleManager, RoleAdmin} {
		assert.True(t, Allowed(role, "leads", perms), "role %s", role)
	}
}

func TestAllowedPicksRoleFlag(t *testing.T) {
	perms := BuildIndex([]models.Permission{
		{Route: "deals", AdminAccess: true, ManagerAccess: true, UserAccess: false},
		{Route: "tasks", AdminAccess: true, ManagerAccess: false, UserAccess: false},
	})

	assert.True(t, Allowed(RoleAdmin, "deals", perms))
	assert.True(t, Allowed(RoleManager, "deals", perms))
	assert.False(t, Allowed(RoleUser, "deals", perms))

	assert.True(t, Allowed(RoleAdmin, "tasks", perms))
	assert.False(t, Allowed(RoleManager, "tasks", perms))
	assert.False(t, Allowed(RoleUser, "tasks", perms))
}

func TestAllowedAllFlagsOff(t *testing.T) {
	perms := BuildIndex([]models.Permission{
		{Route: "accounts"},
	})

	for _, role := range []Role{RoleUser, RoleManager, RoleAdmin} {
		assert.False(t, Allowed(role, "accounts", perms), "role %s", role)
	}
}

func TestBuildIndexLastWriteWins(t *testing.T) {
	perms := BuildIndex([]models.Permission{
		{Route: "leads", UserAccess: false},
		{Route: "leads", UserAccess: true},
	})

	assert.Len(t, perms, 1)
	assert.True(t, perms["leads"].UserAccess)
}
