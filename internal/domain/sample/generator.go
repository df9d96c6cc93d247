package sample

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/vision360/internal/domain/entity"
)

// Params parámetros del generador de datos de ejemplo.
type Params struct {
	Seed      int64
	Products  int
	Days      int
	Stores    int
	Suppliers int
}

// DefaultParams valores usados por la demo.
func DefaultParams() Params {
	return Params{Seed: 42, Products: 80, Days: 365, Stores: 5, Suppliers: 5}
}

// Datasets los tres datasets sintéticos, con vocabulario de productos
// compartido para que la consolidación produzca matches no triviales.
type Datasets struct {
	Inventory []entity.InventoryRecord
	Sales     []entity.SalesEvent
	Purchases []entity.PurchaseEvent
}

var categories = []string{"Electrónica", "Alimentos", "Higiene", "Herramientas", "Textil"}

// Fecha base fija del historial sintético: la determinismo exige que dos
// invocaciones con la misma semilla produzcan datasets idénticos byte a
// byte, así que no puede depender de time.Now.
var epoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// Generate produce los tres datasets. Cada dataset usa su propia fuente
// sembrada con la misma semilla, de modo que cambiar el tamaño de uno no
// altera los otros.
func Generate(p Params) Datasets {
	return Datasets{
		Inventory: generateInventory(p),
		Sales:     generateSales(p),
		Purchases: generatePurchases(p),
	}
}

func productName(i int) string { return fmt.Sprintf("Producto_%03d", i+1) }

func generateInventory(p Params) []entity.InventoryRecord {
	r := rand.New(rand.NewSource(p.Seed))

	out := make([]entity.InventoryRecord, 0, p.Products)
	for i := 0; i < p.Products; i++ {
		out = append(out, entity.InventoryRecord{
			ProductID:   fmt.Sprintf("P%04d", i+1),
			ProductName: productName(i),
			Category:    categories[r.Intn(len(categories))],
			Supplier:    fmt.Sprintf("Proveedor_%d", r.Intn(p.Suppliers)+1),
			Quantity:    poisson(r, 50),
			MinStock:    10 + int64(r.Intn(20)),
			UnitCost:    uniformPrice(r, 10, 500),
			LastUpdate:  epoch.AddDate(0, 0, i),
		})
	}
	return out
}

func generateSales(p Params) []entity.SalesEvent {
	r := rand.New(rand.NewSource(p.Seed))
	weights := popularityWeights(p.Products)

	var out []entity.SalesEvent
	for d := 0; d < p.Days; d++ {
		day := epoch.AddDate(0, 0, d)
		// Eventos por día ~ Poisson(15)
		for n := poisson(r, 15); n > 0; n-- {
			out = append(out, entity.SalesEvent{
				Date:        day,
				HasDate:     true,
				Store:       fmt.Sprintf("Tienda_%d", r.Intn(p.Stores)+1),
				ProductName: productName(weightedIndex(r, weights)),
				Quantity:    poisson(r, 3) + 1,
				UnitPrice:   uniformPrice(r, 20, 400),
			})
		}
	}
	return out
}

func generatePurchases(p Params) []entity.PurchaseEvent {
	r := rand.New(rand.NewSource(p.Seed))
	weights := popularityWeights(p.Products)

	var out []entity.PurchaseEvent
	for d := 0; d < p.Days; d++ {
		day := epoch.AddDate(0, 0, d)
		// Eventos por día ~ Poisson(8)
		for n := poisson(r, 8); n > 0; n-- {
			out = append(out, entity.PurchaseEvent{
				Date:         day,
				HasDate:      true,
				Supplier:     fmt.Sprintf("Proveedor_%d", r.Intn(p.Suppliers)+1),
				ProductName:  productName(weightedIndex(r, weights)),
				Quantity:     poisson(r, 5) + 1,
				UnitPrice:    uniformPrice(r, 15, 350),
				DeliveryDays: 1 + int64(r.Intn(29)),
			})
		}
	}
	return out
}

// popularityWeights pesos lineales decrecientes de 1.0 a 0.1: un subconjunto
// de productos "populares" concentra los eventos, produciendo el sesgo
// realista de la demo en lugar de una selección uniforme.
func popularityWeights(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		if n == 1 {
			w[i] = 1
			continue
		}
		w[i] = 1 - 0.9*float64(i)/float64(n-1)
	}
	return w
}

func weightedIndex(r *rand.Rand, weights []float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	x := r.Float64() * total
	for i, w := range weights {
		x -= w
		if x < 0 {
			return i
		}
	}
	return len(weights) - 1
}

// poisson muestreo de Poisson por el método de Knuth. Suficiente para las
// medias pequeñas de la demo.
func poisson(r *rand.Rand, lambda float64) int64 {
	l := math.Exp(-lambda)
	var k int64
	p := 1.0
	for {
		p *= r.Float64()
		if p <= l {
			return k
		}
		k++
	}
}

func uniformPrice(r *rand.Rand, min, max float64) decimal.Decimal {
	v := min + r.Float64()*(max-min)
	return decimal.NewFromFloat(v).Round(2)
}
