package payments

import (
	"context"

	"github.com/jhoicas/Gimnasio-api/internal/domain/entity"
	"github.com/jhoicas/Gimnasio-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con repos atados a la tx.
// La renovación necesita que el update del vencimiento y el insert del pago
// se observen siempre juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		memberRepo repository.MemberRepository,
		paymentRepo repository.PaymentRepository,
	) error) error
}

// ReceiptPDFGenerator genera el PDF del recibo de un pago.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, payment *entity.Payment, member *entity.Member) ([]byte, error)
}
