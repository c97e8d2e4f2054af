package repository

import (
	"time"

	"github.com/jhoicas/Gimnasio-api/internal/domain/entity"
)

// MemberRepository define el puerto de persistencia para Member (DIP).
// Los métodos Get* devuelven (nil, nil) cuando no hay fila.
type MemberRepository interface {
	Create(member *entity.Member) error
	GetByID(id string) (*entity.Member, error)
	GetActiveByID(id string) (*entity.Member, error)
	GetActiveByCedula(cedula string) (*entity.Member, error)
	ListActive() ([]*entity.Member, error)
	// Deactivate marca activo=false. Devuelve false si el miembro no existe o
	// ya estaba inactivo (la baja no es idempotente de cara al caller).
	Deactivate(id string) (bool, error)
	// GetForUpdate bloquea la fila del miembro (SELECT FOR UPDATE) para
	// serializar renovaciones concurrentes. Solo tiene sentido dentro de una tx.
	GetForUpdate(id string) (*entity.Member, error)
	UpdateVencimiento(id string, venc time.Time) error
	UpdateProfile(member *entity.Member) error
}
