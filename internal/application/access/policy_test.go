package access_test

import (
	"testing"

	"github.com/jhoicas/burger-house/internal/application/access"
	"github.com/jhoicas/burger-house/internal/domain"
	"github.com/jhoicas/burger-house/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

var (
	superAdmin = access.Actor{UserID: "s", Role: entity.RoleSuperAdmin}
	admin      = access.Actor{UserID: "a", Role: entity.RoleAdmin}
	manager    = access.Actor{UserID: "m", Role: entity.RoleManager}
	customer   = access.Actor{UserID: "c", Role: entity.RoleUser}
)

func TestConsoleAccess(t *testing.T) {
	assert.True(t, access.CanUseConsole(superAdmin))
	assert.True(t, access.CanUseConsole(admin))
	assert.True(t, access.CanUseConsole(manager))
	assert.False(t, access.CanUseConsole(customer))
	assert.False(t, access.CanUseConsole(access.Guest))

	assert.ErrorIs(t, access.RequireConsole(access.Guest), domain.ErrUnauthorized)
	assert.ErrorIs(t, access.RequireConsole(customer), domain.ErrForbidden)
	assert.NoError(t, access.RequireConsole(manager))
}

func TestTabsByRole(t *testing.T) {
	assert.NoError(t, access.RequireStaffManagement(admin))
	assert.ErrorIs(t, access.RequireStaffManagement(manager), domain.ErrForbidden)

	assert.NoError(t, access.RequireSettings(superAdmin))
	assert.ErrorIs(t, access.RequireSettings(admin), domain.ErrForbidden)
}

func TestCanEditStaff(t *testing.T) {
	superRec := entity.UserProfile{ID: "super-id", Role: entity.RoleSuperAdmin}
	adminRec := entity.UserProfile{ID: "admin-id", Role: entity.RoleAdmin}
	managerRec := entity.UserProfile{ID: "manager-id", Role: entity.RoleManager}

	cases := []struct {
		name   string
		actor  access.Actor
		target entity.UserProfile
		want   bool
	}{
		{"super edita admin", superAdmin, adminRec, true},
		{"super edita manager", superAdmin, managerRec, true},
		{"super no edita super", superAdmin, superRec, false},
		{"admin edita manager", admin, managerRec, true},
		{"admin no edita admin", admin, adminRec, false},
		{"manager no edita a nadie", manager, managerRec, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, access.CanEditStaff(tc.actor, tc.target))
		})
	}
}

func TestAssignableRoles(t *testing.T) {
	assert.Equal(t, []entity.Role{entity.RoleAdmin, entity.RoleManager}, access.AssignableRoles(superAdmin))
	assert.Equal(t, []entity.Role{entity.RoleManager}, access.AssignableRoles(admin))
	assert.Empty(t, access.AssignableRoles(manager))
	assert.False(t, access.CanAssignRole(superAdmin, entity.RoleSuperAdmin), "nadie asigna super-admin")
	assert.False(t, access.CanAssignRole(admin, entity.RoleAdmin))
}
