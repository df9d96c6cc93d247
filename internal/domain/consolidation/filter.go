package consolidation

import (
	"time"

	"github.com/tu-usuario/vision360/internal/domain/entity"
)

// StringFilter selección sobre una dimensión de texto. El sentinela "todos"
// es distinto del conjunto vacío: un conjunto vacío excluye todo (el usuario
// deseleccionó cada valor), mientras que All=true no restringe nada.
type StringFilter struct {
	All    bool
	values map[string]struct{}
}

// AllOf filtro que acepta cualquier valor (sentinela "todos").
func AllOf() StringFilter {
	return StringFilter{All: true}
}

// OnlyOf filtro que acepta exactamente los valores dados. Con una lista
// vacía excluye todas las filas.
func OnlyOf(values ...string) StringFilter {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return StringFilter{values: set}
}

// Match indica si el valor pasa el filtro.
func (f StringFilter) Match(v string) bool {
	if f.All {
		return true
	}
	_, ok := f.values[v]
	return ok
}

// Values copia ordenable de los valores seleccionados (vacío si All).
func (f StringFilter) Values() []string {
	out := make([]string, 0, len(f.values))
	for v := range f.values {
		out = append(out, v)
	}
	return out
}

// DateRange rango de fechas inclusivo a nivel de día.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains indica si la fecha cae dentro del rango (comparación por día).
func (r DateRange) Contains(t time.Time) bool {
	d := truncateDay(t)
	return !d.Before(truncateDay(r.Start)) && !d.After(truncateDay(r.End))
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Selection configuración multidimensional de filtros. Period nil significa
// sin restricción temporal.
type Selection struct {
	Products   StringFilter
	Categories StringFilter
	Stores     StringFilter
	Period     *DateRange
}

// NoSelection selección que no restringe ninguna dimensión.
func NoSelection() Selection {
	return Selection{Products: AllOf(), Categories: AllOf(), Stores: AllOf()}
}

// FilterInventory restringe inventario por producto y categoría.
// Nunca muta la entrada; devuelve una copia independiente.
func FilterInventory(recs []entity.InventoryRecord, sel Selection) []entity.InventoryRecord {
	out := make([]entity.InventoryRecord, 0, len(recs))
	for _, r := range recs {
		if sel.Products.Match(r.ProductName) && sel.Categories.Match(r.Category) {
			out = append(out, r)
		}
	}
	return out
}

// FilterSales restringe ventas por producto, tienda y período. Las filas con
// fecha faltante se tratan como siempre fuera de rango cuando hay período.
func FilterSales(events []entity.SalesEvent, sel Selection) []entity.SalesEvent {
	out := make([]entity.SalesEvent, 0, len(events))
	for _, e := range events {
		if !sel.Products.Match(e.ProductName) || !sel.Stores.Match(e.Store) {
			continue
		}
		if sel.Period != nil && (!e.HasDate || !sel.Period.Contains(e.Date)) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterPurchases restringe compras por producto y período.
func FilterPurchases(events []entity.PurchaseEvent, sel Selection) []entity.PurchaseEvent {
	out := make([]entity.PurchaseEvent, 0, len(events))
	for _, e := range events {
		if !sel.Products.Match(e.ProductName) {
			continue
		}
		if sel.Period != nil && (!e.HasDate || !sel.Period.Contains(e.Date)) {
			continue
		}
		out = append(out, e)
	}
	return out
}
