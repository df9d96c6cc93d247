package consolidation

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/vision360/internal/domain/entity"
)

// MonthlyFlow ingreso y gasto agregados de un mes calendario.
type MonthlyFlow struct {
	Month   time.Time // primer día del mes, UTC
	Revenue decimal.Decimal
	Spend   decimal.Decimal
}

// MonthlySeries agrega ventas y compras filtradas por mes calendario y las
// une con join externo sobre el mes: un mes con solo ventas o solo compras
// aparece igual, con cero en el flujo ausente. Las filas sin fecha se
// omiten. Salida ordenada cronológicamente.
func MonthlySeries(sales []entity.SalesEvent, purchases []entity.PurchaseEvent) []MonthlyFlow {
	acc := make(map[time.Time]*MonthlyFlow)

	get := func(t time.Time) *MonthlyFlow {
		m := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
		f, ok := acc[m]
		if !ok {
			f = &MonthlyFlow{Month: m, Revenue: decimal.Zero, Spend: decimal.Zero}
			acc[m] = f
		}
		return f
	}

	for _, e := range sales {
		if !e.HasDate {
			continue
		}
		f := get(e.Date)
		f.Revenue = f.Revenue.Add(e.Revenue())
	}
	for _, e := range purchases {
		if !e.HasDate {
			continue
		}
		f := get(e.Date)
		f.Spend = f.Spend.Add(e.Spend())
	}

	out := make([]MonthlyFlow, 0, len(acc))
	for _, f := range acc {
		out = append(out, *f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month.Before(out[j].Month) })
	return out
}

// TopByRevenue las n filas consolidadas con mayor ingreso, descendente
// (desempate alfabético para salida estable). No muta la entrada.
func TopByRevenue(rows []entity.ConsolidatedRow, n int) []entity.ConsolidatedRow {
	out := make([]entity.ConsolidatedRow, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].RevenueTotal.Equal(out[j].RevenueTotal) {
			return out[i].RevenueTotal.GreaterThan(out[j].RevenueTotal)
		}
		return out[i].ProductName < out[j].ProductName
	})
	if n < len(out) {
		out = out[:n]
	}
	return out
}
