package consolidation

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/vision360/internal/domain/entity"
)

// SummarizeSales reduce las ventas filtradas a una fila por product_name:
// suma de cantidad y suma de ingreso. Los productos sin ventas no aparecen
// (el consolidador rellena con cero). Salida ordenada por nombre para que la
// agregación sea determinista.
func SummarizeSales(events []entity.SalesEvent) []entity.ProductSummary {
	acc := make(map[string]*entity.ProductSummary)
	for _, e := range events {
		s, ok := acc[e.ProductName]
		if !ok {
			s = &entity.ProductSummary{ProductName: e.ProductName}
			acc[e.ProductName] = s
		}
		s.QtySold += e.Quantity
		s.RevenueTotal = s.RevenueTotal.Add(e.Revenue())
	}

	out := make([]entity.ProductSummary, 0, len(acc))
	for _, s := range acc {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductName < out[j].ProductName })
	return out
}

// SummarizePurchases reduce las compras filtradas a una fila por
// product_name: suma de cantidad, suma de gasto y media aritmética de
// delivery_days por transacción (no ponderada por cantidad).
func SummarizePurchases(events []entity.PurchaseEvent) []entity.PurchaseSummary {
	type bucket struct {
		summary entity.PurchaseSummary
		days    int64
		count   int64
	}

	acc := make(map[string]*bucket)
	for _, e := range events {
		b, ok := acc[e.ProductName]
		if !ok {
			b = &bucket{summary: entity.PurchaseSummary{ProductName: e.ProductName}}
			acc[e.ProductName] = b
		}
		b.summary.QtyBought += e.Quantity
		b.summary.SpendTotal = b.summary.SpendTotal.Add(e.Spend())
		b.days += e.DeliveryDays
		b.count++
	}

	out := make([]entity.PurchaseSummary, 0, len(acc))
	for _, b := range acc {
		b.summary.AvgDeliveryDays = decimal.NewFromInt(b.days).
			Div(decimal.NewFromInt(b.count)).Round(2)
		out = append(out, b.summary)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductName < out[j].ProductName })
	return out
}

// CompareSuppliers agrega las compras filtradas por proveedor: precio
// unitario medio, prazo medio de entrega, cantidad y gasto acumulados.
// Ordenado por precio medio ascendente, desempate por prazo medio y luego
// alfabético — el primer elemento es directamente el candidato de la
// sugerencia de optimización de costos.
func CompareSuppliers(events []entity.PurchaseEvent) []entity.SupplierComparison {
	type bucket struct {
		cmp   entity.SupplierComparison
		price decimal.Decimal
		days  int64
		count int64
	}

	acc := make(map[string]*bucket)
	for _, e := range events {
		b, ok := acc[e.Supplier]
		if !ok {
			b = &bucket{cmp: entity.SupplierComparison{Supplier: e.Supplier}}
			acc[e.Supplier] = b
		}
		b.cmp.QtyTotal += e.Quantity
		b.cmp.SpendTotal = b.cmp.SpendTotal.Add(e.Spend())
		b.price = b.price.Add(e.UnitPrice)
		b.days += e.DeliveryDays
		b.count++
	}

	out := make([]entity.SupplierComparison, 0, len(acc))
	for _, b := range acc {
		n := decimal.NewFromInt(b.count)
		b.cmp.AvgUnitPrice = b.price.Div(n).Round(2)
		b.cmp.AvgDeliveryDays = decimal.NewFromInt(b.days).Div(n).Round(2)
		out = append(out, b.cmp)
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.AvgUnitPrice.Equal(b.AvgUnitPrice) {
			return a.AvgUnitPrice.LessThan(b.AvgUnitPrice)
		}
		if !a.AvgDeliveryDays.Equal(b.AvgDeliveryDays) {
			return a.AvgDeliveryDays.LessThan(b.AvgDeliveryDays)
		}
		return a.Supplier < b.Supplier
	})
	return out
}
