package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ConsolidatedRow la visión 360° de un producto: inventario + resumen de
// ventas + resumen de compras, unidos por product_name con join izquierdo
// (cada fila de inventario filtrado aparece exactamente una vez).
//
// Los campos numéricos provenientes de un lado sin match se rellenan con
// cero, nunca quedan indefinidos: la aritmética derivada siempre está
// definida y la ausencia de actividad es un estado válido y mostrable.
type ConsolidatedRow struct {
	// Columnas fuente (inventario)
	ProductID   string
	ProductName string
	Category    string
	Supplier    string
	Quantity    int64
	MinStock    int64
	UnitCost    decimal.Decimal
	LastUpdate  time.Time

	// Pass-through de los resúmenes (cero si no hubo actividad)
	QtySold         int64
	RevenueTotal    decimal.Decimal
	QtyBought       int64
	SpendTotal      decimal.Decimal
	AvgDeliveryDays decimal.Decimal

	// Columnas derivadas, calculadas en este orden
	StockValue    decimal.Decimal // quantity * unit_cost
	StockoutRisk  bool            // quantity < min_stock
	Overstock     bool            // quantity > min_stock * 3
	Profitability decimal.Decimal // revenue_total - qty_sold * unit_cost
}

// ConsolidatedColumns orden canónico de columnas para exportación:
// columnas fuente primero, derivadas al final. Las tablas vacías exponen
// este mismo esquema (el CSV siempre lleva encabezado).
func ConsolidatedColumns() []string {
	return []string{
		"product_id", "product_name", "category", "supplier",
		"quantity", "min_stock", "unit_cost", "last_update",
		"qty_sold", "revenue_total",
		"qty_bought", "spend_total", "avg_delivery_days",
		"stock_value", "stockout_risk", "overstock", "profitability",
	}
}
