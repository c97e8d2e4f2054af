package payments

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Gimnasio-api/internal/application/dto"
	"github.com/jhoicas/Gimnasio-api/internal/domain"
	"github.com/jhoicas/Gimnasio-api/internal/domain/entity"
	"github.com/jhoicas/Gimnasio-api/internal/domain/membership"
	"github.com/jhoicas/Gimnasio-api/internal/domain/repository"
)

// RenewUseCase renueva una membresía: extiende el vencimiento y registra el
// pago en el ledger dentro de una sola transacción. La fila del miembro se
// bloquea (SELECT FOR UPDATE) para que dos renovaciones concurrentes se
// apliquen de forma aditiva y no se pisen.
type RenewUseCase struct {
	txRunner TxRunner
}

// NewRenewUseCase construye el caso de uso.
func NewRenewUseCase(txRunner TxRunner) *RenewUseCase {
	return &RenewUseCase{txRunner: txRunner}
}

// Renew aplica el contrato de renovación (domain/membership) y apunta el pago
// con la identidad del admin que lo registró. Devuelve el nuevo vencimiento.
func (uc *RenewUseCase) Renew(ctx context.Context, adminID string, in dto.RenewRequest) (*dto.RenewResponse, error) {
	if in.MemberID == "" || in.ExtendDays <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var nuevoVenc time.Time
	err := uc.txRunner.Run(ctx, func(memberRepo repository.MemberRepository, paymentRepo repository.PaymentRepository) error {
		m, err := memberRepo.GetForUpdate(in.MemberID)
		if err != nil {
			return err
		}
		if m == nil {
			return domain.ErrMemberNotFound
		}

		nuevoVenc = membership.RenovarVencimiento(m.FechaVencimiento, membership.Hoy(), in.ExtendDays)
		if err := memberRepo.UpdateVencimiento(m.ID, nuevoVenc); err != nil {
			return err
		}

		return paymentRepo.Create(&entity.Payment{
			ID:        uuid.New().String(),
			MemberID:  m.ID,
			Amount:    in.Amount,
			Fecha:     time.Now(),
			CreatedBy: adminID,
		})
	})
	if err != nil {
		return nil, err
	}
	return &dto.RenewResponse{NewVenc: nuevoVenc.Format(dto.DateLayout)}, nil
}
