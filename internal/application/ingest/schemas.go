package ingest

import "github.com/tu-usuario/vision360/internal/domain/dataset"

// Defaults de columnas ausentes o celdas no coercibles.
const (
	DefaultStore    = "Store_1"
	DefaultSupplier = "Desconocido"
)

// InventorySchema descriptor del dataset de inventario. Ninguna columna es
// obligatoria en la fuente: las ausentes degradan a cadena vacía / cero.
func InventorySchema() dataset.Schema {
	return dataset.Schema{Columns: []dataset.Column{
		{Name: "product_id", Kind: dataset.String},
		{Name: "product_name", Kind: dataset.String},
		{Name: "category", Kind: dataset.String},
		{Name: "supplier", Kind: dataset.String},
		{Name: "quantity", Kind: dataset.Int, Default: "0"},
		{Name: "min_stock", Kind: dataset.Int, Default: "0"},
		{Name: "unit_cost", Kind: dataset.Decimal, Default: "0"},
		{Name: "last_update", Kind: dataset.Date},
	}}
}

// SalesSchema descriptor del dataset de ventas.
func SalesSchema() dataset.Schema {
	return dataset.Schema{Columns: []dataset.Column{
		{Name: "date", Kind: dataset.Date},
		{Name: "store", Kind: dataset.String, Default: DefaultStore},
		{Name: "product_name", Kind: dataset.String},
		{Name: "quantity", Kind: dataset.Int, Default: "1"},
		{Name: "unit_price", Kind: dataset.Decimal, Default: "0.0"},
	}}
}

// PurchasesSchema descriptor del dataset de compras.
func PurchasesSchema() dataset.Schema {
	return dataset.Schema{Columns: []dataset.Column{
		{Name: "date", Kind: dataset.Date},
		{Name: "supplier", Kind: dataset.String, Default: DefaultSupplier},
		{Name: "product_name", Kind: dataset.String},
		{Name: "quantity", Kind: dataset.Int, Default: "1"},
		{Name: "unit_price", Kind: dataset.Decimal, Default: "0.0"},
		{Name: "delivery_days", Kind: dataset.Int, Default: "0"},
	}}
}
