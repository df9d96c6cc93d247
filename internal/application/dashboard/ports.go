package dashboard

import (
	"context"

	"github.com/tu-usuario/vision360/internal/domain/entity"
)

// Snapshot vista inmutable de los tres datasets crudos en un instante.
// Fingerprint es el hash de contenido (llave de memoización) y Version el
// identificador opaco del estado, expuesto al consumidor.
type Snapshot struct {
	Version     string
	Fingerprint string
	Inventory   []entity.InventoryRecord
	Sales       []entity.SalesEvent
	Purchases   []entity.PurchaseEvent
}

// DatasetSource provee snapshots consistentes de los datasets. Los slices
// devueltos son de solo lectura por convención: el almacén los reemplaza
// por completo, nunca los muta in situ.
type DatasetSource interface {
	Snapshot(ctx context.Context) (Snapshot, error)
}
