package entity

import "github.com/shopspring/decimal"

// ProductSummary ventas agregadas de un producto (una fila por product_name
// presente en las ventas filtradas; los productos sin ventas simplemente no
// aparecen — el consolidador rellena con cero).
type ProductSummary struct {
	ProductName  string
	QtySold      int64
	RevenueTotal decimal.Decimal
}

// PurchaseSummary compras agregadas de un producto. AvgDeliveryDays es la
// media aritmética por transacción, no ponderada por cantidad.
type PurchaseSummary struct {
	ProductName     string
	QtyBought       int64
	SpendTotal      decimal.Decimal
	AvgDeliveryDays decimal.Decimal
}

// SupplierComparison desempeño agregado de un proveedor sobre las compras
// filtradas (precio medio, prazo medio, volumen y gasto acumulado).
type SupplierComparison struct {
	Supplier        string
	AvgUnitPrice    decimal.Decimal
	AvgDeliveryDays decimal.Decimal
	QtyTotal        int64
	SpendTotal      decimal.Decimal
}
