package entity

// Role rol de un UserProfile. Orden de privilegio: super-admin > admin > manager > user.
type Role string

// Roles válidos para UserProfile.
const (
	RoleSuperAdmin Role = "super-admin"
	RoleAdmin      Role = "admin"
	RoleManager    Role = "manager"
	RoleUser       Role = "user"
)

// Valid indica si el rol pertenece al conjunto cerrado.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleManager, RoleUser:
		return true
	}
	return false
}

// Rank devuelve la posición del rol en la jerarquía (mayor = más privilegio, 0 = desconocido).
func (r Role) Rank() int {
	switch r {
	case RoleSuperAdmin:
		return 4
	case RoleAdmin:
		return 3
	case RoleManager:
		return 2
	case RoleUser:
		return 1
	}
	return 0
}

// Outranks indica si r tiene estrictamente más privilegio que other.
func (r Role) Outranks(other Role) bool {
	return r.Rank() > other.Rank()
}

// IsAdmin es true para admin y super-admin.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// IsStaff es true para cualquier rol con acceso a la consola de la tienda.
func (r Role) IsStaff() bool {
	return r.IsAdmin() || r == RoleManager
}
