package entity

import "time"

// Member representa un miembro del gimnasio. La cédula es el identificador de
// login y debe ser única entre los miembros activos (índice parcial en DB).
type Member struct {
	ID               string
	Cedula           string
	Nombre           string
	Email            string
	Telefono         string
	PasswordHash     string // bcrypt hash, nunca plano en dominio después de persistir
	Plan             string // dia, semana, mes
	FechaInicio      time.Time
	FechaVencimiento *time.Time // nil si nunca se asignó vencimiento
	Activo           bool
	Avatar           string // URL relativa (/avatars/...), vacío si no tiene
	FavMachines      string
	Goals            string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
