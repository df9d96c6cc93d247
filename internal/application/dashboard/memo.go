package dashboard

import (
	"sync"

	"github.com/tu-usuario/vision360/internal/domain/consolidation"
	"github.com/tu-usuario/vision360/internal/domain/entity"
)

// pipelineResult salida pura del pipeline para una (huella, selección).
// Dado el mismo contenido de entrada y la misma configuración de filtros el
// pipeline es bit-idéntico, así que memoizarlo no altera la semántica.
type pipelineResult struct {
	rows              []entity.ConsolidatedRow
	suppliers         []entity.SupplierComparison
	monthly           []consolidation.MonthlyFlow
	filteredSales     []entity.SalesEvent
	filteredPurchases []entity.PurchaseEvent
}

type memoKey struct {
	fingerprint string
	filters     string
}

// memoCache memo acotada y puramente opcional: un miss solo cuesta el
// recálculo. Al llenarse se vacía entera; la corrección nunca depende de
// qué entradas sobreviven.
type memoCache struct {
	mu      sync.RWMutex
	max     int
	entries map[memoKey]*pipelineResult
}

func newMemoCache(max int) *memoCache {
	return &memoCache{max: max, entries: make(map[memoKey]*pipelineResult)}
}

func (c *memoCache) get(k memoKey) (*pipelineResult, bool) {
	if c.max <= 0 {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	r, ok := c.entries[k]
	return r, ok
}

func (c *memoCache) put(k memoKey, r *pipelineResult) {
	if c.max <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) >= c.max {
		c.entries = make(map[memoKey]*pipelineResult)
	}
	c.entries[k] = r
}

// cloneRows copia defensiva: sesiones concurrentes no deben compartir
// estado derivado mutable (las filas son structs por valor, la copia del
// slice alcanza).
func cloneRows(rows []entity.ConsolidatedRow) []entity.ConsolidatedRow {
	out := make([]entity.ConsolidatedRow, len(rows))
	copy(out, rows)
	return out
}
