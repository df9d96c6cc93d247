package consolidation

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/vision360/internal/domain/entity"
)

// Consolidate une el inventario filtrado con los dos resúmenes agregados
// mediante joins izquierdos por product_name, en orden fijo:
// inventario ⟕ resumen de ventas ⟕ resumen de compras.
//
// Invariantes:
//   - la salida tiene exactamente una fila por fila de inventario (el join
//     preserva el lado izquierdo, ninguna fila se descarta);
//   - los campos numéricos de un lado sin match quedan en cero antes de
//     calcular las columnas derivadas;
//   - con inventario vacío devuelve una tabla vacía que conserva el esquema
//     completo (ver entity.ConsolidatedColumns).
func Consolidate(
	inventory []entity.InventoryRecord,
	sales []entity.ProductSummary,
	purchases []entity.PurchaseSummary,
) []entity.ConsolidatedRow {

	salesByName := make(map[string]entity.ProductSummary, len(sales))
	for _, s := range sales {
		salesByName[s.ProductName] = s
	}
	purchasesByName := make(map[string]entity.PurchaseSummary, len(purchases))
	for _, p := range purchases {
		purchasesByName[p.ProductName] = p
	}

	out := make([]entity.ConsolidatedRow, 0, len(inventory))
	for _, inv := range inventory {
		row := entity.ConsolidatedRow{
			ProductID:   inv.ProductID,
			ProductName: inv.ProductName,
			Category:    inv.Category,
			Supplier:    inv.Supplier,
			Quantity:    inv.Quantity,
			MinStock:    inv.MinStock,
			UnitCost:    inv.UnitCost,
			LastUpdate:  inv.LastUpdate,

			// Relleno con cero; se sobreescribe si hubo match
			RevenueTotal:    decimal.Zero,
			SpendTotal:      decimal.Zero,
			AvgDeliveryDays: decimal.Zero,
		}

		if s, ok := salesByName[inv.ProductName]; ok {
			row.QtySold = s.QtySold
			row.RevenueTotal = s.RevenueTotal
		}
		if p, ok := purchasesByName[inv.ProductName]; ok {
			row.QtyBought = p.QtyBought
			row.SpendTotal = p.SpendTotal
			row.AvgDeliveryDays = p.AvgDeliveryDays
		}

		// Derivadas, en este orden
		row.StockValue = inv.StockValue()
		row.StockoutRisk = row.Quantity < row.MinStock
		row.Overstock = row.Quantity > row.MinStock*3
		row.Profitability = row.RevenueTotal.Sub(
			decimal.NewFromInt(row.QtySold).Mul(row.UnitCost))

		out = append(out, row)
	}
	return out
}

// CriticalRows subconjunto de filas con riesgo de ruptura, ordenado por
// cantidad ascendente (las más urgentes primero).
func CriticalRows(rows []entity.ConsolidatedRow) []entity.ConsolidatedRow {
	out := make([]entity.ConsolidatedRow, 0)
	for _, r := range rows {
		if r.StockoutRisk {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Quantity != out[j].Quantity {
			return out[i].Quantity < out[j].Quantity
		}
		return out[i].ProductName < out[j].ProductName
	})
	return out
}
