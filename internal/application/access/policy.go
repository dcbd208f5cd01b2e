// Package access concentra las reglas de autorización de la tienda.
// Los casos de uso consultan estas funciones; ningún handler decide permisos por su cuenta.
package access

import (
	"github.com/jhoicas/burger-house/internal/domain"
	"github.com/jhoicas/burger-house/internal/domain/entity"
)

// Actor quién ejecuta la operación. El valor cero es un invitado.
type Actor struct {
	UserID string
	Name   string
	Role   entity.Role
}

// Guest actor sin sesión.
var Guest = Actor{}

// ActorFor construye el actor a partir de un perfil del directorio.
func ActorFor(u entity.UserProfile) Actor {
	return Actor{UserID: u.ID, Name: u.Name, Role: u.Role}
}

// IsGuest true si no hay sesión.
func (a Actor) IsGuest() bool { return a.UserID == "" }

// CanUseConsole pedidos, carta, analítica y clientes: manager o superior.
func CanUseConsole(a Actor) bool { return a.Role.IsStaff() }

// CanManageStaff pestaña de staff: admin o super-admin.
func CanManageStaff(a Actor) bool { return a.Role.IsAdmin() }

// CanManageSettings identidad de la tienda: solo super-admin.
func CanManageSettings(a Actor) bool { return a.Role == entity.RoleSuperAdmin }

// CanEditStaff un super-admin nunca se edita ni se borra por esta vía. El super-admin
// gestiona admins y managers; el admin solo managers.
func CanEditStaff(a Actor, target entity.UserProfile) bool {
	if target.Role == entity.RoleSuperAdmin {
		return false
	}
	switch a.Role {
	case entity.RoleSuperAdmin:
		return true
	case entity.RoleAdmin:
		return target.Role == entity.RoleManager
	}
	return false
}

// AssignableRoles roles que el actor puede dar a un miembro del staff.
func AssignableRoles(a Actor) []entity.Role {
	switch a.Role {
	case entity.RoleSuperAdmin:
		return []entity.Role{entity.RoleAdmin, entity.RoleManager}
	case entity.RoleAdmin:
		return []entity.Role{entity.RoleManager}
	}
	return nil
}

// CanAssignRole consulta AssignableRoles.
func CanAssignRole(a Actor, role entity.Role) bool {
	for _, r := range AssignableRoles(a) {
		if r == role {
			return true
		}
	}
	return false
}

// RequireConsole ErrUnauthorized para invitados, ErrForbidden para clientes.
func RequireConsole(a Actor) error {
	return require(a, CanUseConsole(a))
}

// RequireStaffManagement igual que RequireConsole pero para la pestaña de staff.
func RequireStaffManagement(a Actor) error {
	return require(a, CanManageStaff(a))
}

// RequireSettings igual que RequireConsole pero para los ajustes.
func RequireSettings(a Actor) error {
	return require(a, CanManageSettings(a))
}

func require(a Actor, allowed bool) error {
	if allowed {
		return nil
	}
	if a.IsGuest() {
		return domain.ErrUnauthorized
	}
	return domain.ErrForbidden
}
