package cart

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// Session es el lote de traslados en construcción de una sesión interactiva.
// Las líneas listadas ya están aplicadas al libro de stock: la lista es un
// total acumulado para mostrar y revertir, no un estado pendiente de aplicar.
type Session struct {
	ID        string
	CreatedAt time.Time
	Closed    bool
	Lines     []entity.BatchLine
}

// Manager guarda las sesiones de carrito en proceso. El estado es puramente
// in-process y muere con la sesión interactiva; no se persiste aparte de las
// mutaciones del libro que ya aplicó. El mutex protege el mapa porque el
// servidor HTTP atiende en paralelo, pero el motor sigue asumiendo un solo
// escritor del libro a la vez.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager construye el administrador de sesiones.
func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Open crea una sesión en estado Building.
func (m *Manager) Open() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := &Session{ID: uuid.New().String(), CreatedAt: time.Now()}
	m.sessions[s.ID] = s
	return s
}

// Get devuelve la sesión activa por ID.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	if s.Closed {
		return nil, domain.ErrSessionClosed
	}
	return s, nil
}

// Close marca la sesión como finalizada y descarta sus líneas.
func (m *Manager) Close(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[id]; ok {
		s.Closed = true
		s.Lines = nil
	}
}
