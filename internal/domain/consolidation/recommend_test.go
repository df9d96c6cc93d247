package consolidation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/vision360/internal/domain/entity"
)

func TestRecommend_TresSugerencias(t *testing.T) {
	rows := Consolidate([]entity.InventoryRecord{
		inv("Critico", 5, 10, "2"),
		inv("Estrella", 50, 10, "2"),
	}, SummarizeSales([]entity.SalesEvent{
		venta("Estrella", "Tienda_1", day(2024, 3, 1), 3, "10"),
	}), nil)

	suppliers := CompareSuppliers([]entity.PurchaseEvent{
		compra("Critico", "Barato", day(2024, 3, 1), 1, "5", 2),
		compra("Critico", "Caro", day(2024, 3, 2), 1, "50", 2),
	})

	recs := Recommend(rows, suppliers)
	require.Len(t, recs, 3)

	assert.Equal(t, entity.RecReplenishment, recs[0].Kind)
	assert.Equal(t, 1, recs[0].Count)
	assert.Contains(t, recs[0].Message, "1 producto(s)")

	assert.Equal(t, entity.RecCostOptimization, recs[1].Kind)
	assert.Equal(t, "Barato", recs[1].Subject)

	assert.Equal(t, entity.RecSalesOpportunity, recs[2].Kind)
	assert.Equal(t, "Estrella", recs[2].Subject, "el producto con mayor lucratividad positiva")
}

func TestRecommend_SinDatosSinSugerencias(t *testing.T) {
	assert.Empty(t, Recommend(nil, nil), "sin filas ni proveedores no se inventa nada")
}

func TestRecommend_SinLucroNoHayOportunidad(t *testing.T) {
	// Vende a pérdida: revenue 10, costo de lo vendido 2*10=20
	rows := Consolidate([]entity.InventoryRecord{
		inv("Perdedor", 50, 10, "10"),
	}, SummarizeSales([]entity.SalesEvent{
		venta("Perdedor", "Tienda_1", day(2024, 3, 1), 2, "5"),
	}), nil)

	recs := Recommend(rows, nil)
	for _, r := range recs {
		assert.NotEqual(t, entity.RecSalesOpportunity, r.Kind,
			"con lucratividad no positiva no se sugiere oportunidad de venta")
	}
}

func TestRecommend_SoloInformativo(t *testing.T) {
	rows := Consolidate([]entity.InventoryRecord{inv("A", 5, 10, "1")}, nil, nil)
	before := rows[0]

	Recommend(rows, nil)
	assert.Equal(t, before, rows[0], "las sugerencias nunca modifican la tabla")
}
