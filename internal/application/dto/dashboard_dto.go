package dto

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/vision360/internal/domain/consolidation"
	"github.com/tu-usuario/vision360/internal/domain/entity"
)

// DashboardDTO respuesta de POST /api/dashboard: la tabla consolidada más
// los indicadores, recomendaciones y agregados de soporte que la capa de
// presentación muestra tal cual. De solo lectura para el consumidor.
type DashboardDTO struct {
	KPIs            KPIsDTO                 `json:"kpis"`
	Columns         []string                `json:"columns"` // esquema completo, presente aun con cero filas
	Rows            []ConsolidatedRowDTO    `json:"rows"`
	Recommendations []RecommendationDTO     `json:"recommendations"`
	Suppliers       []SupplierComparisonDTO `json:"suppliers"`
	Monthly         []MonthlyFlowDTO        `json:"monthly"`
	TopProducts     []ConsolidatedRowDTO    `json:"top_products"`
	DatasetVersion  string                  `json:"dataset_version"`
}

// KPIsDTO indicadores estratégicos sobre la selección filtrada.
type KPIsDTO struct {
	TotalRevenue   decimal.Decimal `json:"total_revenue"`   // ingresos de las ventas filtradas
	StockValue     decimal.Decimal `json:"stock_value"`     // valor inmovilizado del inventario filtrado
	TotalSpend     decimal.Decimal `json:"total_spend"`     // gasto de las compras filtradas
	CriticalCount  int             `json:"critical_count"`  // productos con riesgo de ruptura
	OverstockCount int             `json:"overstock_count"` // productos con exceso de stock
	ProductCount   int             `json:"product_count"`   // filas consolidadas
}

// ConsolidatedRowDTO una fila de la visión 360° de un producto.
type ConsolidatedRowDTO struct {
	ProductID       string          `json:"product_id"`
	ProductName     string          `json:"product_name"`
	Category        string          `json:"category"`
	Supplier        string          `json:"supplier"`
	Quantity        int64           `json:"quantity"`
	MinStock        int64           `json:"min_stock"`
	UnitCost        decimal.Decimal `json:"unit_cost"`
	LastUpdate      string          `json:"last_update"` // YYYY-MM-DD, vacío si desconocida
	QtySold         int64           `json:"qty_sold"`
	RevenueTotal    decimal.Decimal `json:"revenue_total"`
	QtyBought       int64           `json:"qty_bought"`
	SpendTotal      decimal.Decimal `json:"spend_total"`
	AvgDeliveryDays decimal.Decimal `json:"avg_delivery_days"`
	StockValue      decimal.Decimal `json:"stock_value"`
	StockoutRisk    bool            `json:"stockout_risk"`
	Overstock       bool            `json:"overstock"`
	Profitability   decimal.Decimal `json:"profitability"`
}

// RecommendationDTO hecho advisorio para el panel de recomendaciones.
type RecommendationDTO struct {
	Kind    string `json:"kind"`
	Subject string `json:"subject,omitempty"`
	Count   int    `json:"count,omitempty"`
	Message string `json:"message"`
}

// SupplierComparisonDTO comparativo de proveedores sobre compras filtradas.
type SupplierComparisonDTO struct {
	Supplier        string          `json:"supplier"`
	AvgUnitPrice    decimal.Decimal `json:"avg_unit_price"`
	AvgDeliveryDays decimal.Decimal `json:"avg_delivery_days"`
	QtyTotal        int64           `json:"qty_total"`
	SpendTotal      decimal.Decimal `json:"spend_total"`
}

// MonthlyFlowDTO punto de la serie temporal mensual ingreso vs gasto.
type MonthlyFlowDTO struct {
	Month   string          `json:"month"` // YYYY-MM
	Revenue decimal.Decimal `json:"revenue"`
	Spend   decimal.Decimal `json:"spend"`
}

// FromConsolidatedRow mapea la entidad de dominio al DTO.
func FromConsolidatedRow(r entity.ConsolidatedRow) ConsolidatedRowDTO {
	lastUpdate := ""
	if !r.LastUpdate.IsZero() {
		lastUpdate = r.LastUpdate.Format("2006-01-02")
	}
	return ConsolidatedRowDTO{
		ProductID:       r.ProductID,
		ProductName:     r.ProductName,
		Category:        r.Category,
		Supplier:        r.Supplier,
		Quantity:        r.Quantity,
		MinStock:        r.MinStock,
		UnitCost:        r.UnitCost,
		LastUpdate:      lastUpdate,
		QtySold:         r.QtySold,
		RevenueTotal:    r.RevenueTotal,
		QtyBought:       r.QtyBought,
		SpendTotal:      r.SpendTotal,
		AvgDeliveryDays: r.AvgDeliveryDays,
		StockValue:      r.StockValue,
		StockoutRisk:    r.StockoutRisk,
		Overstock:       r.Overstock,
		Profitability:   r.Profitability,
	}
}

// FromRecommendation mapea la sugerencia de dominio al DTO.
func FromRecommendation(r entity.Recommendation) RecommendationDTO {
	return RecommendationDTO{
		Kind:    string(r.Kind),
		Subject: r.Subject,
		Count:   r.Count,
		Message: r.Message,
	}
}

// FromSupplierComparison mapea el comparativo de proveedor al DTO.
func FromSupplierComparison(c entity.SupplierComparison) SupplierComparisonDTO {
	return SupplierComparisonDTO{
		Supplier:        c.Supplier,
		AvgUnitPrice:    c.AvgUnitPrice,
		AvgDeliveryDays: c.AvgDeliveryDays,
		QtyTotal:        c.QtyTotal,
		SpendTotal:      c.SpendTotal,
	}
}

// FromMonthlyFlow mapea un punto mensual al DTO.
func FromMonthlyFlow(f consolidation.MonthlyFlow) MonthlyFlowDTO {
	return MonthlyFlowDTO{
		Month:   f.Month.Format("2006-01"),
		Revenue: f.Revenue,
		Spend:   f.Spend,
	}
}
