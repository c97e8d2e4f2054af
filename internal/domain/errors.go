package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrMemberNotFound      = errors.New("miembro no encontrado")
	ErrCedulaAlreadyExists = errors.New("ya existe un miembro activo con esa cédula")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrInvalidPlan         = errors.New("plan inválido")
	ErrInvalidDayOfWeek    = errors.New("día de la semana inválido")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrForbidden           = errors.New("acceso denegado")
)
