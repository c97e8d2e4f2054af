package payments

import (
	"context"
	"fmt"

	"github.com/jhoicas/Gimnasio-api/internal/domain"
	"github.com/jhoicas/Gimnasio-api/internal/domain/repository"
)

// ReceiptPDFUseCase genera el recibo en PDF de un pago del ledger.
type ReceiptPDFUseCase struct {
	paymentRepo repository.PaymentRepository
	memberRepo  repository.MemberRepository
	generator   ReceiptPDFGenerator
}

// NewReceiptPDFUseCase construye el caso de uso inyectando sus dependencias.
func NewReceiptPDFUseCase(
	paymentRepo repository.PaymentRepository,
	memberRepo repository.MemberRepository,
	generator ReceiptPDFGenerator,
) *ReceiptPDFUseCase {
	return &ReceiptPDFUseCase{
		paymentRepo: paymentRepo,
		memberRepo:  memberRepo,
		generator:   generator,
	}
}

// DownloadReceiptPDF recupera el pago y el miembro asociado y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si el pago no existe.
func (uc *ReceiptPDFUseCase) DownloadReceiptPDF(ctx context.Context, paymentID string) (pdfBytes []byte, filename string, err error) {
	p, err := uc.paymentRepo.GetByID(paymentID)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: obtener pago: %w", err)
	}
	if p == nil {
		return nil, "", domain.ErrNotFound
	}

	// El miembro puede estar inactivo; el recibo sigue siendo válido.
	m, err := uc.memberRepo.GetByID(p.MemberID)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: obtener miembro: %w", err)
	}
	if m == nil {
		return nil, "", domain.ErrNotFound
	}

	pdfBytes, err = uc.generator.GenerateReceiptPDF(ctx, p, m)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: generar pdf: %w", err)
	}
	return pdfBytes, fmt.Sprintf("recibo-%s.pdf", p.ID), nil
}
