package repository

import "github.com/jhoicas/Gimnasio-api/internal/domain/entity"

// PaymentRepository define el puerto de persistencia para Payment.
// El ledger es append-only: no hay Update ni Delete.
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	GetByID(id string) (*entity.Payment, error)
	ListByMember(memberID string, limit, offset int) ([]*entity.Payment, error)
	List(limit, offset int) ([]*entity.Payment, error)
}
