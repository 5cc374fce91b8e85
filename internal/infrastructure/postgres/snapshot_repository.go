package postgres

import (
	"context"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Almacen-api/internal/domain/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.SnapshotRepository = (*SnapshotRepo)(nil)

// SnapshotRepo implementación del puerto SnapshotRepository sobre PostgreSQL.
// El contrato es lectura total / escritura total: Save reemplaza las tres
// tablas (products, minimums, stock) dentro de una sola transacción, así
// ningún lector observa un snapshot a medias. Riesgo conocido y aceptado por
// el volumen minúsculo de datos: con dos escritores concurrentes gana la
// última escritura completa; no hay token de versión optimista.
type SnapshotRepo struct {
	pool *pgxpool.Pool
}

// NewSnapshotRepository construye el adaptador de snapshots.
func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepo {
	return &SnapshotRepo{pool: pool}
}

// Load lee catálogo, mínimos y existencias completos y arma el snapshot.
func (r *SnapshotRepo) Load(ctx context.Context) (*inventory.Snapshot, error) {
	snap := inventory.NewSnapshot()

	rows, err := r.pool.Query(ctx, `
		SELECT name, code, alt_code, category, supplier, packaging, unit_cost, created_at, updated_at
		FROM products`)
	if err != nil {
		return nil, fmt.Errorf("leer products: %w", err)
	}
	for rows.Next() {
		p := productRow{}
		if err := rows.Scan(&p.Name, &p.Code, &p.AltCode, &p.Category, &p.Supplier,
			&p.Packaging, &p.UnitCost, &p.CreatedAt, &p.UpdatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan product: %w", err)
		}
		snap.Upsert(p.toEntity())
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("leer products: %w", err)
	}

	rows, err = r.pool.Query(ctx, `SELECT product_name, location, min_qty FROM minimums`)
	if err != nil {
		return nil, fmt.Errorf("leer minimums: %w", err)
	}
	for rows.Next() {
		var name, location string
		var min int
		if err := rows.Scan(&name, &location, &min); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan minimum: %w", err)
		}
		if p := snap.Get(name); p != nil {
			p.SetMin(location, min)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("leer minimums: %w", err)
	}

	rows, err = r.pool.Query(ctx, `SELECT product_name, location, quantity FROM stock`)
	if err != nil {
		return nil, fmt.Errorf("leer stock: %w", err)
	}
	for rows.Next() {
		var name, location string
		var qty int
		if err := rows.Scan(&name, &location, &qty); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		if snap.Get(name) != nil {
			snap.Stock[inventory.StockKey{Product: name, Location: location}] = qty
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("leer stock: %w", err)
	}

	return snap, nil
}

// Save reemplaza el contenido completo de las tres tablas en una transacción
// (Commit si todo ok, Rollback diferido si algo falla).
func (r *SnapshotRepo) Save(ctx context.Context, snap *inventory.Snapshot) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, table := range []string{"stock", "minimums", "products"} {
		if _, err := tx.Exec(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("vaciar %s: %w", table, err)
		}
	}

	for _, name := range snap.Names() {
		p := snap.Products[name]
		if _, err := tx.Exec(ctx, `
			INSERT INTO products (name, code, alt_code, category, supplier, packaging, unit_cost, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			p.Name, p.Code, p.AltCode, p.Category, p.Supplier, p.Packaging, p.UnitCost, p.CreatedAt, p.UpdatedAt,
		); err != nil {
			return fmt.Errorf("insert product: %w", err)
		}
		for _, loc := range sortedKeys(p.Min) {
			if _, err := tx.Exec(ctx, `
				INSERT INTO minimums (product_name, location, min_qty) VALUES ($1, $2, $3)`,
				p.Name, loc, p.Min[loc],
			); err != nil {
				return fmt.Errorf("insert minimum: %w", err)
			}
		}
	}

	keys := make([]inventory.StockKey, 0, len(snap.Stock))
	for k := range snap.Stock {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Product != keys[j].Product {
			return keys[i].Product < keys[j].Product
		}
		return keys[i].Location < keys[j].Location
	})
	for _, k := range keys {
		if _, err := tx.Exec(ctx, `
			INSERT INTO stock (product_name, location, quantity) VALUES ($1, $2, $3)`,
			k.Product, k.Location, snap.Stock[k],
		); err != nil {
			return fmt.Errorf("insert stock: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func sortedKeys(m map[string]int) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
