package dto

// LoginRequest entrada para login. Identifier acepta email o nombre.
// Password vacío entra sin verificar contraseña (comportamiento de la tienda).
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// UserResponse salida de un perfil (sin password).
type UserResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Role         string   `json:"role"`
	IsAdmin      bool     `json:"is_admin"`
	Address      string   `json:"address,omitempty"`
	Street       string   `json:"street,omitempty"`
	RiderNote    string   `json:"rider_note,omitempty"`
	OrderHistory []string `json:"order_history"`
}

// LoginResponse token JWT + perfil. Outcome es "found" o "created".
type LoginResponse struct {
	Outcome string       `json:"outcome"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

// SessionResponse perfil autenticado más los permisos derivados del rol.
type SessionResponse struct {
	User         UserResponse `json:"user"`
	IsSuperAdmin bool         `json:"is_super_admin"`
	IsAdmin      bool         `json:"is_admin"`
	IsManager    bool         `json:"is_manager"`
	Permissions  Permissions  `json:"permissions"`
}

// Permissions pestañas de la consola disponibles para el rol.
type Permissions struct {
	Console  bool `json:"console"`
	Staff    bool `json:"staff"`
	Settings bool `json:"settings"`
}
