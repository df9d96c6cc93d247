package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallParams() Params {
	return Params{Seed: 42, Products: 10, Days: 30, Stores: 3, Suppliers: 3}
}

func TestGenerate_MismaSemillaMismosDatos(t *testing.T) {
	a := Generate(smallParams())
	b := Generate(smallParams())

	assert.Equal(t, a.Inventory, b.Inventory, "misma semilla debe producir inventario idéntico")
	assert.Equal(t, a.Sales, b.Sales, "misma semilla debe producir ventas idénticas")
	assert.Equal(t, a.Purchases, b.Purchases, "misma semilla debe producir compras idénticas")
}

func TestGenerate_SemillaDistintaDatosDistintos(t *testing.T) {
	a := Generate(smallParams())

	p := smallParams()
	p.Seed = 7
	b := Generate(p)

	assert.NotEqual(t, a.Inventory, b.Inventory, "otra semilla debe cambiar el inventario")
}

func TestGenerate_VocabularioCompartido(t *testing.T) {
	data := Generate(smallParams())
	require.Len(t, data.Inventory, 10)

	known := make(map[string]struct{}, len(data.Inventory))
	for _, r := range data.Inventory {
		known[r.ProductName] = struct{}{}
	}

	for _, e := range data.Sales {
		_, ok := known[e.ProductName]
		assert.True(t, ok, "toda venta refiere a un producto del inventario: %s", e.ProductName)
	}
	for _, e := range data.Purchases {
		_, ok := known[e.ProductName]
		assert.True(t, ok, "toda compra refiere a un producto del inventario: %s", e.ProductName)
	}
}

func TestGenerate_RangosPlausibles(t *testing.T) {
	data := Generate(smallParams())

	for _, r := range data.Inventory {
		assert.GreaterOrEqual(t, r.Quantity, int64(0))
		assert.GreaterOrEqual(t, r.MinStock, int64(10))
		assert.Less(t, r.MinStock, int64(30))
		assert.True(t, r.UnitCost.IsPositive(), "el costo unitario es siempre positivo")
	}

	end := epoch.AddDate(0, 0, 30)
	for _, e := range data.Sales {
		require.True(t, e.HasDate)
		assert.GreaterOrEqual(t, e.Quantity, int64(1), "una venta mueve al menos una unidad")
		assert.False(t, e.Date.Before(epoch))
		assert.True(t, e.Date.Before(end))
	}
	for _, e := range data.Purchases {
		require.True(t, e.HasDate)
		assert.GreaterOrEqual(t, e.Quantity, int64(1))
		assert.GreaterOrEqual(t, e.DeliveryDays, int64(1))
		assert.LessOrEqual(t, e.DeliveryDays, int64(29))
	}
}

func TestGenerate_SesgoDePopularidad(t *testing.T) {
	w := popularityWeights(10)
	require.Len(t, w, 10)
	assert.InDelta(t, 1.0, w[0], 1e-9)
	assert.InDelta(t, 0.1, w[9], 1e-9)
	for i := 1; i < len(w); i++ {
		assert.Less(t, w[i], w[i-1], "los pesos decrecen monótonamente")
	}
}

func TestGenerate_UnSoloProducto(t *testing.T) {
	p := smallParams()
	p.Products = 1
	data := Generate(p)

	for _, e := range data.Sales {
		assert.Equal(t, "Producto_001", e.ProductName)
	}
}
