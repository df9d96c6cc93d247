package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseEvent una transacción de compra a proveedor.
type PurchaseEvent struct {
	Date         time.Time
	HasDate      bool
	Supplier     string
	ProductName  string
	Quantity     int64
	UnitPrice    decimal.Decimal
	DeliveryDays int64
}

// Spend gasto de la transacción (quantity * unit_price).
func (e PurchaseEvent) Spend() decimal.Decimal {
	return decimal.NewFromInt(e.Quantity).Mul(e.UnitPrice)
}
