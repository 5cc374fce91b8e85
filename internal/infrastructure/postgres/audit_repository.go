package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.AuditRepository = (*AuditRepo)(nil)

// AuditRepo implementación del puerto AuditRepository sobre PostgreSQL.
// Solo INSERT y SELECT: la tabla es append-only por contrato.
type AuditRepo struct {
	q Querier
}

// NewAuditRepository construye el adaptador de bitácora. Pasar pool o tx (Querier).
func NewAuditRepository(q Querier) *AuditRepo {
	return &AuditRepo{q: q}
}

// Append agrega una entrada a la bitácora.
func (r *AuditRepo) Append(ctx context.Context, entry *entity.AuditEntry) error {
	query := `
		INSERT INTO audit_log (id, ts, product, quantity, kind, detail)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		entry.ID, entry.Timestamp, entry.Product, entry.Quantity, entry.Kind, entry.Detail,
	)
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

// List devuelve entradas paginadas, más recientes primero.
func (r *AuditRepo) List(ctx context.Context, limit, offset int) ([]*entity.AuditEntry, error) {
	query := `
		SELECT id, ts, product, quantity, kind, detail
		FROM audit_log
		ORDER BY ts DESC, id DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	defer rows.Close()

	var out []*entity.AuditEntry
	for rows.Next() {
		var e entity.AuditEntry
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.Product, &e.Quantity, &e.Kind, &e.Detail); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		out = append(out, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	return out, nil
}
