package dto

// LoginRequest credenciales de inicio de sesión. Los admins entran por
// username y los miembros por cédula, ambos en el mismo campo.
type LoginRequest struct {
	EmailOrUsername string `json:"emailOrUsername"`
	Password        string `json:"password"`
}

// LoginResponse token emitido y rol del usuario autenticado.
type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"` // "admin" | "member"
}
