package repository

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// AuditRepository define el puerto de la bitácora (DIP). Solo agrega y lista:
// las entradas jamás se modifican ni se borran.
type AuditRepository interface {
	Append(ctx context.Context, entry *entity.AuditEntry) error
	// List devuelve las entradas más recientes primero.
	List(ctx context.Context, limit, offset int) ([]*entity.AuditEntry, error)
}
