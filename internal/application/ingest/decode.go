package ingest

import (
	"github.com/tu-usuario/vision360/internal/domain/dataset"
	"github.com/tu-usuario/vision360/internal/domain/entity"
)

// DecodeInventory normaliza una grilla cruda con el esquema de inventario y
// la materializa en registros tipados. Nunca falla: la degradación de
// esquema se resuelve con defaults (la falla estructural ocurre antes, en el
// lector de la fuente).
func DecodeInventory(g dataset.Grid) []entity.InventoryRecord {
	t := dataset.Normalize(g, InventorySchema())
	out := make([]entity.InventoryRecord, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		r := t.Row(i)
		lastUpdate, _ := r.Date("last_update")
		out = append(out, entity.InventoryRecord{
			ProductID:   r.String("product_id"),
			ProductName: r.String("product_name"),
			Category:    r.String("category"),
			Supplier:    r.String("supplier"),
			Quantity:    r.Int("quantity"),
			MinStock:    r.Int("min_stock"),
			UnitCost:    r.Decimal("unit_cost"),
			LastUpdate:  lastUpdate,
		})
	}
	return out
}

// DecodeSales normaliza y materializa el dataset de ventas. Las fechas no
// parseables quedan con HasDate=false: siempre fuera de rango, nunca error.
func DecodeSales(g dataset.Grid) []entity.SalesEvent {
	t := dataset.Normalize(g, SalesSchema())
	out := make([]entity.SalesEvent, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		r := t.Row(i)
		date, ok := r.Date("date")
		out = append(out, entity.SalesEvent{
			Date:        date,
			HasDate:     ok,
			Store:       r.String("store"),
			ProductName: r.String("product_name"),
			Quantity:    r.Int("quantity"),
			UnitPrice:   r.Decimal("unit_price"),
		})
	}
	return out
}

// DecodePurchases normaliza y materializa el dataset de compras.
func DecodePurchases(g dataset.Grid) []entity.PurchaseEvent {
	t := dataset.Normalize(g, PurchasesSchema())
	out := make([]entity.PurchaseEvent, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		r := t.Row(i)
		date, ok := r.Date("date")
		out = append(out, entity.PurchaseEvent{
			Date:         date,
			HasDate:      ok,
			Supplier:     r.String("supplier"),
			ProductName:  r.String("product_name"),
			Quantity:     r.Int("quantity"),
			UnitPrice:    r.Decimal("unit_price"),
			DeliveryDays: r.Int("delivery_days"),
		})
	}
	return out
}
