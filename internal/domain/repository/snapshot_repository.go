package repository

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/inventory"
)

// SnapshotRepository define el puerto de persistencia del catálogo + libro de
// stock (DIP). El contrato es lectura total / escritura total: cada operación
// del motor carga el snapshot completo y lo guarda por completo, sin diff
// incremental. Consecuencia documentada: con escritores concurrentes gana la
// última escritura completa; el motor asume a lo sumo un escritor a la vez.
type SnapshotRepository interface {
	Load(ctx context.Context) (*inventory.Snapshot, error)
	Save(ctx context.Context, snap *inventory.Snapshot) error
}
