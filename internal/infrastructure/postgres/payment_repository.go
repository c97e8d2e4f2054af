package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Gimnasio-api/internal/domain/entity"
	"github.com/jhoicas/Gimnasio-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación de PaymentRepository sobre PostgreSQL (usable con pool o tx).
// El ledger es append-only: solo INSERT y SELECT.
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador de pagos. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create apunta un pago en el ledger.
func (r *PaymentRepo) Create(p *entity.Payment) error {
	query := `
		INSERT INTO payments (id, member_id, amount, fecha, created_by)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query, p.ID, p.MemberID, p.Amount, p.Fecha, p.CreatedBy)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// GetByID obtiene un pago por ID.
func (r *PaymentRepo) GetByID(id string) (*entity.Payment, error) {
	query := `SELECT id, member_id, amount, fecha, created_by FROM payments WHERE id = $1`
	var p entity.Payment
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.MemberID, &p.Amount, &p.Fecha, &p.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return &p, nil
}

// ListByMember lista los pagos de un miembro, más recientes primero.
func (r *PaymentRepo) ListByMember(memberID string, limit, offset int) ([]*entity.Payment, error) {
	query := `
		SELECT id, member_id, amount, fecha, created_by
		FROM payments WHERE member_id = $1 ORDER BY fecha DESC LIMIT $2 OFFSET $3`
	return r.list(query, memberID, limit, offset)
}

// List lista todos los pagos, más recientes primero.
func (r *PaymentRepo) List(limit, offset int) ([]*entity.Payment, error) {
	query := `
		SELECT id, member_id, amount, fecha, created_by
		FROM payments ORDER BY fecha DESC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

func (r *PaymentRepo) list(query string, args ...any) ([]*entity.Payment, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Payment
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(&p.ID, &p.MemberID, &p.Amount, &p.Fecha, &p.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
