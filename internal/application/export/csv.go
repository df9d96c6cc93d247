package export

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/tu-usuario/vision360/internal/domain/entity"
)

// Columnas del subconjunto de productos críticos (mismo recorte que muestra
// el panel de riesgo de ruptura).
var criticalColumns = []string{
	"product_name", "category", "quantity", "min_stock", "qty_sold", "revenue_total",
}

// ConsolidatedCSV serializa la tabla consolidada con el orden canónico de
// columnas: las columnas fuente primero y las derivadas al final. El
// encabezado se emite siempre, también con cero filas, para que el esquema
// sea introspectable.
func ConsolidatedCSV(rows []entity.ConsolidatedRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(entity.ConsolidatedColumns()); err != nil {
		return nil, err
	}
	for _, r := range rows {
		lastUpdate := ""
		if !r.LastUpdate.IsZero() {
			lastUpdate = r.LastUpdate.Format("2006-01-02")
		}
		record := []string{
			r.ProductID,
			r.ProductName,
			r.Category,
			r.Supplier,
			strconv.FormatInt(r.Quantity, 10),
			strconv.FormatInt(r.MinStock, 10),
			r.UnitCost.String(),
			lastUpdate,
			strconv.FormatInt(r.QtySold, 10),
			r.RevenueTotal.String(),
			strconv.FormatInt(r.QtyBought, 10),
			r.SpendTotal.String(),
			r.AvgDeliveryDays.String(),
			r.StockValue.String(),
			strconv.FormatBool(r.StockoutRisk),
			strconv.FormatBool(r.Overstock),
			r.Profitability.String(),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// CriticalCSV serializa el subconjunto de productos críticos.
func CriticalCSV(rows []entity.ConsolidatedRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(criticalColumns); err != nil {
		return nil, err
	}
	for _, r := range rows {
		record := []string{
			r.ProductName,
			r.Category,
			strconv.FormatInt(r.Quantity, 10),
			strconv.FormatInt(r.MinStock, 10),
			strconv.FormatInt(r.QtySold, 10),
			r.RevenueTotal.String(),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
