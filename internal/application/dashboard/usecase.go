package dashboard

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/vision360/internal/application/dto"
	"github.com/tu-usuario/vision360/internal/domain/consolidation"
	"github.com/tu-usuario/vision360/internal/domain/entity"
)

const topProductsN = 15

// UseCase ejecuta el pipeline completo del panel en cada cambio de filtros:
// Snapshot → Filtro → Agregación → Consolidación → indicadores y
// recomendaciones. Sin estado mutable compartido entre invocaciones; la
// memoización es una optimización explícita, nunca un mecanismo de
// corrección.
type UseCase struct {
	source DatasetSource
	memo   *memoCache
}

// NewUseCase construye el caso de uso. cacheSize 0 deshabilita la memo.
func NewUseCase(source DatasetSource, cacheSize int) *UseCase {
	return &UseCase{source: source, memo: newMemoCache(cacheSize)}
}

// GetDashboard calcula la respuesta completa del panel para los filtros.
func (uc *UseCase) GetDashboard(ctx context.Context, req dto.FilterRequest) (*dto.DashboardDTO, error) {
	snap, res, err := uc.run(ctx, req)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.ConsolidatedRowDTO, 0, len(res.rows))
	for _, r := range res.rows {
		rows = append(rows, dto.FromConsolidatedRow(r))
	}

	recs := consolidation.Recommend(res.rows, res.suppliers)
	recDTOs := make([]dto.RecommendationDTO, 0, len(recs))
	for _, r := range recs {
		recDTOs = append(recDTOs, dto.FromRecommendation(r))
	}

	suppliers := make([]dto.SupplierComparisonDTO, 0, len(res.suppliers))
	for _, s := range res.suppliers {
		suppliers = append(suppliers, dto.FromSupplierComparison(s))
	}

	monthly := make([]dto.MonthlyFlowDTO, 0, len(res.monthly))
	for _, m := range res.monthly {
		monthly = append(monthly, dto.FromMonthlyFlow(m))
	}

	top := consolidation.TopByRevenue(res.rows, topProductsN)
	topDTOs := make([]dto.ConsolidatedRowDTO, 0, len(top))
	for _, r := range top {
		topDTOs = append(topDTOs, dto.FromConsolidatedRow(r))
	}

	return &dto.DashboardDTO{
		KPIs:            buildKPIs(res),
		Columns:         entity.ConsolidatedColumns(),
		Rows:            rows,
		Recommendations: recDTOs,
		Suppliers:       suppliers,
		Monthly:         monthly,
		TopProducts:     topDTOs,
		DatasetVersion:  snap.Version,
	}, nil
}

// ConsolidatedRows la tabla consolidada para exportación. Devuelve una copia
// independiente: el llamador puede reordenarla sin afectar la memo.
func (uc *UseCase) ConsolidatedRows(ctx context.Context, req dto.FilterRequest) ([]entity.ConsolidatedRow, error) {
	_, res, err := uc.run(ctx, req)
	if err != nil {
		return nil, err
	}
	return cloneRows(res.rows), nil
}

// CriticalRows subconjunto con riesgo de ruptura, para exportación.
func (uc *UseCase) CriticalRows(ctx context.Context, req dto.FilterRequest) ([]entity.ConsolidatedRow, error) {
	_, res, err := uc.run(ctx, req)
	if err != nil {
		return nil, err
	}
	return consolidation.CriticalRows(res.rows), nil
}

// run ejecuta (o recupera de la memo) el pipeline puro para la petición.
func (uc *UseCase) run(ctx context.Context, req dto.FilterRequest) (Snapshot, *pipelineResult, error) {
	sel, err := req.ToSelection()
	if err != nil {
		return Snapshot{}, nil, fmt.Errorf("filtros: %w", err)
	}

	snap, err := uc.source.Snapshot(ctx)
	if err != nil {
		return Snapshot{}, nil, fmt.Errorf("snapshot de datasets: %w", err)
	}

	key := memoKey{fingerprint: snap.Fingerprint, filters: req.CanonicalKey()}
	if res, ok := uc.memo.get(key); ok {
		return snap, res, nil
	}

	inventory := consolidation.FilterInventory(snap.Inventory, sel)
	sales := consolidation.FilterSales(snap.Sales, sel)
	purchases := consolidation.FilterPurchases(snap.Purchases, sel)

	res := &pipelineResult{
		rows: consolidation.Consolidate(
			inventory,
			consolidation.SummarizeSales(sales),
			consolidation.SummarizePurchases(purchases),
		),
		suppliers:         consolidation.CompareSuppliers(purchases),
		monthly:           consolidation.MonthlySeries(sales, purchases),
		filteredSales:     sales,
		filteredPurchases: purchases,
	}

	uc.memo.put(key, res)
	return snap, res, nil
}

func buildKPIs(res *pipelineResult) dto.KPIsDTO {
	totalRevenue := decimal.Zero
	for _, e := range res.filteredSales {
		totalRevenue = totalRevenue.Add(e.Revenue())
	}
	totalSpend := decimal.Zero
	for _, e := range res.filteredPurchases {
		totalSpend = totalSpend.Add(e.Spend())
	}

	stockValue := decimal.Zero
	critical, overstock := 0, 0
	for _, r := range res.rows {
		stockValue = stockValue.Add(r.StockValue)
		if r.StockoutRisk {
			critical++
		}
		if r.Overstock {
			overstock++
		}
	}

	return dto.KPIsDTO{
		TotalRevenue:   totalRevenue,
		StockValue:     stockValue,
		TotalSpend:     totalSpend,
		CriticalCount:  critical,
		OverstockCount: overstock,
		ProductCount:   len(res.rows),
	}
}
