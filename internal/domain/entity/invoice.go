package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice representa una factura emitida a nombre de una empresa.
// Amt es NUMERIC en la base; se maneja como decimal para no perder precisión.
type Invoice struct {
	ID       int64
	CompCode string
	Amt      decimal.Decimal
	Paid     bool
	AddDate  time.Time
	PaidDate *time.Time // nil mientras la factura no esté pagada
}
