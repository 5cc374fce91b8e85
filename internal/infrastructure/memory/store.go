// Package memory implementa los puertos de persistencia sobre estado en
// proceso, protegido por mutex. Sirve para desarrollo (STORAGE_DRIVER=memory)
// y para las pruebas de los casos de uso; los datos mueren con el proceso.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var (
	_ repository.SnapshotRepository = (*Store)(nil)
	_ repository.AuditRepository    = (*Store)(nil)
)

// Store implementa ambos puertos (snapshot y bitácora) sobre memoria.
// Load y Save intercambian copias profundas para que los casos de uso nunca
// compartan punteros con el estado guardado: el mismo aislamiento que da un
// backend real.
type Store struct {
	mu    sync.Mutex
	snap  *inventory.Snapshot
	audit []*entity.AuditEntry
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{snap: inventory.NewSnapshot()}
}

// Load devuelve una copia profunda del snapshot actual.
func (s *Store) Load(ctx context.Context) (*inventory.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.Clone(), nil
}

// Save reemplaza el snapshot completo (semántica de escritura total).
func (s *Store) Save(ctx context.Context, snap *inventory.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap.Clone()
	return nil
}

// Append agrega una entrada a la bitácora.
func (s *Store) Append(ctx context.Context, entry *entity.AuditEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *entry
	s.audit = append(s.audit, &cp)
	return nil
}

// List devuelve entradas paginadas, más recientes primero.
func (s *Store) List(ctx context.Context, limit, offset int) ([]*entity.AuditEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*entity.AuditEntry
	for i := len(s.audit) - 1 - offset; i >= 0 && len(out) < limit; i-- {
		cp := *s.audit[i]
		out = append(out, &cp)
	}
	return out, nil
}
