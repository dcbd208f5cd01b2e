package dto

// UpsertStaffRequest alta o edición de staff. ID vacío crea un registro nuevo.
// Password vacío conserva la contraseña anterior en una edición.
type UpsertStaffRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// StaffMemberResponse miembro del staff con lo que el actor puede hacer sobre él.
type StaffMemberResponse struct {
	UserResponse
	Editable bool `json:"editable"`
}

// StaffListResponse staff visible más los roles que el actor puede asignar.
type StaffListResponse struct {
	Items           []StaffMemberResponse `json:"items"`
	AssignableRoles []string              `json:"assignable_roles"`
}
