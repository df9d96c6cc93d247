package consolidation

import (
	"fmt"

	"github.com/tu-usuario/vision360/internal/domain/entity"
)

// Recommend deriva hasta tres hechos advisorios sobre la tabla consolidada
// y el comparativo de proveedores. Puramente informativos: nunca modifican
// los datos.
//
//  1. Prioridad de reposición: si hay productos con riesgo de ruptura,
//     cuántos son.
//  2. Optimización de costos: proveedor con menor precio unitario medio
//     (desempate: menor prazo medio, luego alfabético).
//  3. Oportunidad de venta: producto con mayor lucratividad positiva;
//     si ninguno es lucrativo no se emite.
func Recommend(
	rows []entity.ConsolidatedRow,
	suppliers []entity.SupplierComparison,
) []entity.Recommendation {

	recs := make([]entity.Recommendation, 0, 3)

	atRisk := 0
	for _, r := range rows {
		if r.StockoutRisk {
			atRisk++
		}
	}
	if atRisk > 0 {
		recs = append(recs, entity.Recommendation{
			Kind:    entity.RecReplenishment,
			Count:   atRisk,
			Message: fmt.Sprintf("%d producto(s) bajo el stock mínimo: priorizar reposición", atRisk),
		})
	}

	// CompareSuppliers ya ordena por precio medio con los desempates del caso
	if len(suppliers) > 0 {
		best := suppliers[0]
		recs = append(recs, entity.Recommendation{
			Kind:    entity.RecCostOptimization,
			Subject: best.Supplier,
			Message: fmt.Sprintf("proveedor con mejor precio medio: %s (%s)", best.Supplier, best.AvgUnitPrice.StringFixed(2)),
		})
	}

	var top *entity.ConsolidatedRow
	for i := range rows {
		r := &rows[i]
		if !r.Profitability.IsPositive() {
			continue
		}
		if top == nil || r.Profitability.GreaterThan(top.Profitability) {
			top = r
		}
	}
	if top != nil {
		recs = append(recs, entity.Recommendation{
			Kind:    entity.RecSalesOpportunity,
			Subject: top.ProductName,
			Message: fmt.Sprintf("producto más lucrativo: %s (%s)", top.ProductName, top.Profitability.StringFixed(2)),
		})
	}

	return recs
}
