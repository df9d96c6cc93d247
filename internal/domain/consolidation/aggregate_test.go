package consolidation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/vision360/internal/domain/entity"
)

func TestSummarizeSales_UnaFilaPorProducto(t *testing.T) {
	events := []entity.SalesEvent{
		venta("Widget", "Tienda_1", day(2024, 3, 1), 2, "10"),
		venta("Widget", "Tienda_2", day(2024, 3, 2), 1, "12"),
		venta("Gadget", "Tienda_1", day(2024, 3, 3), 5, "4"),
	}

	out := SummarizeSales(events)
	require.Len(t, out, 2)

	// Salida ordenada por nombre
	assert.Equal(t, "Gadget", out[0].ProductName)
	assert.Equal(t, int64(5), out[0].QtySold)
	assert.Equal(t, "20", out[0].RevenueTotal.String())

	assert.Equal(t, "Widget", out[1].ProductName)
	assert.Equal(t, int64(3), out[1].QtySold)
	assert.Equal(t, "32", out[1].RevenueTotal.String(), "2*10 + 1*12")
}

func TestSummarizeSales_SinEventos(t *testing.T) {
	assert.Empty(t, SummarizeSales(nil), "sin ventas el resumen es vacío, no nulo por producto")
}

func TestSummarizePurchases_MediaPorTransaccion(t *testing.T) {
	events := []entity.PurchaseEvent{
		compra("Widget", "Proveedor_1", day(2024, 3, 1), 10, "5", 2),
		compra("Widget", "Proveedor_2", day(2024, 3, 5), 1, "6", 7),
	}

	out := SummarizePurchases(events)
	require.Len(t, out, 1)

	s := out[0]
	assert.Equal(t, int64(11), s.QtyBought)
	assert.Equal(t, "56", s.SpendTotal.String(), "10*5 + 1*6")
	assert.Equal(t, "4.5", s.AvgDeliveryDays.String(),
		"media aritmética por transacción, no ponderada por cantidad")
}

func TestCompareSuppliers_OrdenPorPrecioMedio(t *testing.T) {
	events := []entity.PurchaseEvent{
		compra("A", "Caro", day(2024, 3, 1), 1, "100", 2),
		compra("A", "Barato", day(2024, 3, 2), 1, "10", 9),
		compra("B", "Barato", day(2024, 3, 3), 2, "20", 3),
	}

	out := CompareSuppliers(events)
	require.Len(t, out, 2)

	assert.Equal(t, "Barato", out[0].Supplier, "el primero es el candidato de optimización de costos")
	assert.Equal(t, "15", out[0].AvgUnitPrice.String(), "(10+20)/2")
	assert.Equal(t, "6", out[0].AvgDeliveryDays.String(), "(9+3)/2")
	assert.Equal(t, int64(3), out[0].QtyTotal)
	assert.Equal(t, "50", out[0].SpendTotal.String())

	assert.Equal(t, "Caro", out[1].Supplier)
}

func TestCompareSuppliers_Desempates(t *testing.T) {
	events := []entity.PurchaseEvent{
		compra("A", "Zeta", day(2024, 3, 1), 1, "10", 5),
		compra("A", "Alfa", day(2024, 3, 2), 1, "10", 5),
		compra("A", "Rapido", day(2024, 3, 3), 1, "10", 2),
	}

	out := CompareSuppliers(events)
	require.Len(t, out, 3)
	assert.Equal(t, "Rapido", out[0].Supplier, "a igual precio gana el menor prazo medio")
	assert.Equal(t, "Alfa", out[1].Supplier, "a igual precio y prazo, orden alfabético")
	assert.Equal(t, "Zeta", out[2].Supplier)
}
