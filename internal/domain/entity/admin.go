package entity

import "time"

// Admin usuario administrador del gimnasio (inicia sesión por username).
type Admin struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
