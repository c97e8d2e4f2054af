package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Gimnasio-api/internal/application/payments"
	"github.com/jhoicas/Gimnasio-api/internal/domain/repository"
)

// Ensure TxRunner implements payments.TxRunner.
var _ payments.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. El vencimiento renovado y su pago nunca se observan por
// separado.
func (r *TxRunner) Run(ctx context.Context, fn func(
	memberRepo repository.MemberRepository,
	paymentRepo repository.PaymentRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	memberRepo := NewMemberRepository(tx)
	paymentRepo := NewPaymentRepository(tx)

	if err := fn(memberRepo, paymentRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
