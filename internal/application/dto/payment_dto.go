package dto

import "github.com/shopspring/decimal"

// RenewRequest renovación de membresía: extiende el vencimiento y registra el
// pago en una sola transacción.
type RenewRequest struct {
	MemberID   string          `json:"member_id"`
	Amount     decimal.Decimal `json:"amount"`
	ExtendDays int             `json:"extend_days"`
}

// RenewResponse nueva fecha de vencimiento resultante.
type RenewResponse struct {
	NewVenc string `json:"new_venc"`
}

// PaymentResponse proyección de un pago del ledger.
type PaymentResponse struct {
	ID        string          `json:"id"`
	MemberID  string          `json:"member_id"`
	Amount    decimal.Decimal `json:"amount"`
	Fecha     string          `json:"fecha"`
	CreatedBy string          `json:"created_by"`
}

// PaymentListResponse historial de pagos.
type PaymentListResponse struct {
	Items []PaymentResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
