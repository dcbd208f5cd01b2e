package entity

// UserProfile representa un cliente o un miembro del staff del directorio.
// Password se guarda en texto plano: la tienda no ofrece seguridad de autenticación.
type UserProfile struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"` // también sirve como identificador de login
	Password     string   `json:"password,omitempty"`
	Role         Role     `json:"role"`
	IsAdmin      bool     `json:"isAdmin"` // derivado de Role, se recalcula en cada upsert
	Address      string   `json:"address,omitempty"`
	Street       string   `json:"street,omitempty"`
	RiderNote    string   `json:"riderNote,omitempty"`
	OrderHistory []string `json:"orderHistory"`
}

// Clone copia profunda (OrderHistory nunca se comparte).
func (u UserProfile) Clone() UserProfile {
	history := make([]string, len(u.OrderHistory))
	copy(history, u.OrderHistory)
	u.OrderHistory = history
	return u
}

// CloneUsers copia profunda de una lista de perfiles.
func CloneUsers(users []UserProfile) []UserProfile {
	out := make([]UserProfile, len(users))
	for i, u := range users {
		out[i] = u.Clone()
	}
	return out
}
