package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment registro de una renovación de membresía. Es un ledger append-only:
// nunca se actualiza ni se borra.
type Payment struct {
	ID        string
	MemberID  string
	Amount    decimal.Decimal
	Fecha     time.Time
	CreatedBy string // ID del admin que registró el pago
}
