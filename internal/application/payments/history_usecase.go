package payments

import (
	"github.com/jhoicas/Gimnasio-api/internal/application/dto"
	"github.com/jhoicas/Gimnasio-api/internal/domain/entity"
	"github.com/jhoicas/Gimnasio-api/internal/domain/repository"
)

// HistoryUseCase consultas de solo lectura sobre el ledger de pagos.
type HistoryUseCase struct {
	repo repository.PaymentRepository
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(repo repository.PaymentRepository) *HistoryUseCase {
	return &HistoryUseCase{repo: repo}
}

// List lista pagos, opcionalmente filtrados por miembro, más recientes primero.
func (uc *HistoryUseCase) List(memberID string, limit, offset int) (*dto.PaymentListResponse, error) {
	var (
		list []*entity.Payment
		err  error
	)
	if memberID != "" {
		list, err = uc.repo.ListByMember(memberID, limit, offset)
	} else {
		list, err = uc.repo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}

	items := make([]dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toPaymentResponse(p))
	}
	return &dto.PaymentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toPaymentResponse(p *entity.Payment) dto.PaymentResponse {
	return dto.PaymentResponse{
		ID:        p.ID,
		MemberID:  p.MemberID,
		Amount:    p.Amount,
		Fecha:     p.Fecha.Format("2006-01-02 15:04:05"),
		CreatedBy: p.CreatedBy,
	}
}
