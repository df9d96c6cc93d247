package export

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/vision360/internal/domain/entity"
)

func sampleRow() entity.ConsolidatedRow {
	return entity.ConsolidatedRow{
		ProductID:       "P0001",
		ProductName:     "Widget",
		Category:        "Electrónica",
		Supplier:        "Proveedor_1",
		Quantity:        5,
		MinStock:        10,
		UnitCost:        decimal.RequireFromString("2"),
		LastUpdate:      time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		QtySold:         3,
		RevenueTotal:    decimal.RequireFromString("30"),
		QtyBought:       0,
		SpendTotal:      decimal.Zero,
		AvgDeliveryDays: decimal.Zero,
		StockValue:      decimal.RequireFromString("10"),
		StockoutRisk:    true,
		Overstock:       false,
		Profitability:   decimal.RequireFromString("24"),
	}
}

func parseCSV(t *testing.T, data []byte) [][]string {
	t.Helper()
	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err, "la salida debe ser CSV válido")
	return records
}

func TestConsolidatedCSV_OrdenCanonicoDeColumnas(t *testing.T) {
	data, err := ConsolidatedCSV([]entity.ConsolidatedRow{sampleRow()})
	require.NoError(t, err)

	records := parseCSV(t, data)
	require.Len(t, records, 2)

	assert.Equal(t, entity.ConsolidatedColumns(), records[0],
		"el encabezado sigue el orden canónico: fuente primero, derivadas al final")

	assert.Equal(t, []string{
		"P0001", "Widget", "Electrónica", "Proveedor_1",
		"5", "10", "2", "2024-01-15",
		"3", "30",
		"0", "0", "0",
		"10", "true", "false", "24",
	}, records[1])
}

func TestConsolidatedCSV_TablaVaciaConservaEncabezado(t *testing.T) {
	data, err := ConsolidatedCSV(nil)
	require.NoError(t, err)

	records := parseCSV(t, data)
	require.Len(t, records, 1, "cero filas pero el esquema sigue siendo introspectable")
	assert.Equal(t, entity.ConsolidatedColumns(), records[0])
}

func TestConsolidatedCSV_FechaDesconocidaVaVacia(t *testing.T) {
	row := sampleRow()
	row.LastUpdate = time.Time{}

	data, err := ConsolidatedCSV([]entity.ConsolidatedRow{row})
	require.NoError(t, err)

	records := parseCSV(t, data)
	assert.Equal(t, "", records[1][7], "last_update desconocida se exporta vacía")
}

func TestCriticalCSV_SubconjuntoDeColumnas(t *testing.T) {
	data, err := CriticalCSV([]entity.ConsolidatedRow{sampleRow()})
	require.NoError(t, err)

	records := parseCSV(t, data)
	require.Len(t, records, 2)
	assert.Equal(t, criticalColumns, records[0])
	assert.Equal(t, []string{"Widget", "Electrónica", "5", "10", "3", "30"}, records[1])
}
