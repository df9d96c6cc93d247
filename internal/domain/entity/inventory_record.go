package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryRecord una fila del dataset de estoque/inventario.
//
// ProductName es la llave de consolidación contra ventas y compras. Su
// unicidad NO se valida: si dos productos distintos comparten nombre, la
// agregación los colapsa en una sola fila (comportamiento heredado y
// documentado como supuesto de calidad de datos, no como error).
type InventoryRecord struct {
	ProductID   string
	ProductName string
	Category    string
	Supplier    string
	Quantity    int64
	MinStock    int64
	UnitCost    decimal.Decimal
	LastUpdate  time.Time
}

// StockValue valor monetario inmovilizado en inventario (quantity * unit_cost).
func (r InventoryRecord) StockValue() decimal.Decimal {
	return decimal.NewFromInt(r.Quantity).Mul(r.UnitCost)
}
