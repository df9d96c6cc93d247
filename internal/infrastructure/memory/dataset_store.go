package memory

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"sync"

	"github.com/google/uuid"

	"github.com/tu-usuario/vision360/internal/application/dashboard"
	"github.com/tu-usuario/vision360/internal/domain/entity"
)

// DatasetStore almacén en memoria de los tres datasets crudos. Los
// reemplazos son atómicos y por dataset completo; los slices publicados no
// se mutan nunca in situ, así que los snapshots pueden compartir el
// respaldo sin riesgo. Cada reemplazo recalcula la huella de contenido
// (llave de la memoización del pipeline) y rota el identificador de
// versión.
//
// Implementa dashboard.DatasetSource e ingest.DatasetWriter.
type DatasetStore struct {
	mu          sync.RWMutex
	inventory   []entity.InventoryRecord
	sales       []entity.SalesEvent
	purchases   []entity.PurchaseEvent
	version     uuid.UUID
	fingerprint string
}

// NewDatasetStore construye el almacén con los datasets iniciales.
func NewDatasetStore(
	inventory []entity.InventoryRecord,
	sales []entity.SalesEvent,
	purchases []entity.PurchaseEvent,
) *DatasetStore {
	s := &DatasetStore{
		inventory: inventory,
		sales:     sales,
		purchases: purchases,
	}
	s.refreshLocked()
	return s
}

// Snapshot vista consistente de los tres datasets.
func (s *DatasetStore) Snapshot(_ context.Context) (dashboard.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return dashboard.Snapshot{
		Version:     s.version.String(),
		Fingerprint: s.fingerprint,
		Inventory:   s.inventory,
		Sales:       s.sales,
		Purchases:   s.purchases,
	}, nil
}

// ReplaceInventory reemplaza el dataset de inventario completo.
func (s *DatasetStore) ReplaceInventory(_ context.Context, recs []entity.InventoryRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inventory = recs
	s.refreshLocked()
	return nil
}

// ReplaceSales reemplaza el dataset de ventas completo.
func (s *DatasetStore) ReplaceSales(_ context.Context, events []entity.SalesEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sales = events
	s.refreshLocked()
	return nil
}

// ReplacePurchases reemplaza el dataset de compras completo.
func (s *DatasetStore) ReplacePurchases(_ context.Context, events []entity.PurchaseEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purchases = events
	s.refreshLocked()
	return nil
}

// refreshLocked recalcula huella y versión. Requiere el lock de escritura.
func (s *DatasetStore) refreshLocked() {
	h := sha256.New()
	for _, r := range s.inventory {
		fmt.Fprintf(h, "i|%s|%s|%s|%s|%d|%d|%s|%d\n",
			r.ProductID, r.ProductName, r.Category, r.Supplier,
			r.Quantity, r.MinStock, r.UnitCost.String(), r.LastUpdate.Unix())
	}
	for _, e := range s.sales {
		writeEventLine(h, "s", e.HasDate, e.Date.Unix(), e.Store, e.ProductName, e.Quantity, e.UnitPrice.String(), 0)
	}
	for _, e := range s.purchases {
		writeEventLine(h, "p", e.HasDate, e.Date.Unix(), e.Supplier, e.ProductName, e.Quantity, e.UnitPrice.String(), e.DeliveryDays)
	}
	s.fingerprint = hex.EncodeToString(h.Sum(nil))
	s.version = uuid.New()
}

func writeEventLine(h hash.Hash, tag string, hasDate bool, unix int64, dim, product string, qty int64, price string, days int64) {
	if !hasDate {
		unix = 0
	}
	fmt.Fprintf(h, "%s|%t|%d|%s|%s|%d|%s|%d\n", tag, hasDate, unix, dim, product, qty, price, days)
}
