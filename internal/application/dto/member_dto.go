package dto

// CreateMemberRequest datos del alta de miembro (multipart/form-data en el
// handler; AvatarPath lo fija el handler después de guardar el archivo).
type CreateMemberRequest struct {
	Cedula     string `form:"cedula"`
	Nombre     string `form:"nombre"`
	Email      string `form:"email"`
	Telefono   string `form:"telefono"`
	Password   string `form:"password"`
	Plan       string `form:"plan"` // dia, semana, mes
	AvatarPath string `form:"-"`
}

// UpdateProfileRequest actualización parcial del perfil del propio miembro.
// Los campos nil conservan el valor almacenado.
type UpdateProfileRequest struct {
	FavMachines *string
	Goals       *string
	AvatarPath  *string
}

// MemberResponse proyección de un miembro para el API.
type MemberResponse struct {
	ID               string `json:"id"`
	Cedula           string `json:"cedula"`
	Nombre           string `json:"nombre"`
	Email            string `json:"email"`
	Telefono         string `json:"telefono"`
	Plan             string `json:"plan"`
	FechaInicio      string `json:"fecha_inicio"`
	FechaVencimiento string `json:"fecha_vencimiento,omitempty"`
	DiasRestantes    *int   `json:"dias_restantes"`
	Estado           string `json:"estado"`
	Activo           bool   `json:"activo"`
	Avatar           string `json:"avatar,omitempty"`
	FavMachines      string `json:"fav_machines"`
	Goals            string `json:"goals"`
}

// MemberListResponse listado de miembros activos.
type MemberListResponse struct {
	Items []MemberResponse `json:"items"`
}
