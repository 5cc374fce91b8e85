package inventory

import (
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// StockKey identifica una existencia: (producto, ubicación).
type StockKey struct {
	Product  string
	Location string
}

// Snapshot es el estado completo catálogo + libro de stock que cada operación
// del motor lee, transforma y persiste por completo (sin diffs incrementales).
// El catálogo es dueño exclusivo de los productos; el libro referencia al
// producto por nombre y sus existencias nunca sobreviven al producto.
type Snapshot struct {
	Products map[string]*entity.Product
	Stock    map[StockKey]int
}

// NewSnapshot crea un snapshot vacío.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Products: make(map[string]*entity.Product),
		Stock:    make(map[StockKey]int),
	}
}

// Get devuelve el producto por nombre exacto (nil si no existe).
func (s *Snapshot) Get(name string) *entity.Product {
	return s.Products[name]
}

// Names devuelve los nombres de producto ordenados. Todo recorrido del
// catálogo pasa por aquí para que los resultados sean deterministas.
func (s *Snapshot) Names() []string {
	names := make([]string, 0, len(s.Products))
	for n := range s.Products {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Upsert inserta o reemplaza el producto por su nombre.
func (s *Snapshot) Upsert(p *entity.Product) {
	s.Products[p.Name] = p
}

// Delete elimina el producto y, en cascada, todas sus existencias.
func (s *Snapshot) Delete(name string) error {
	if _, ok := s.Products[name]; !ok {
		return domain.ErrNotFound
	}
	delete(s.Products, name)
	for k := range s.Stock {
		if k.Product == name {
			delete(s.Stock, k)
		}
	}
	return nil
}

// Quantity devuelve la existencia actual (0 si la pareja no existe aún).
func (s *Snapshot) Quantity(name, location string) int {
	return s.Stock[StockKey{Product: name, Location: location}]
}

// SetQuantity sobreescribe la existencia de un producto en una ubicación.
// Es la semántica de conteo físico: un valor negativo se lleva a cero.
func (s *Snapshot) SetQuantity(name, location string, qty int) error {
	if _, ok := s.Products[name]; !ok {
		return domain.ErrNotFound
	}
	if qty < 0 {
		qty = 0
	}
	s.Stock[StockKey{Product: name, Location: location}] = qty
	return nil
}

// Add suma cantidad en una ubicación (entradas, recepciones de compra).
func (s *Snapshot) Add(name, location string, qty int) error {
	if _, ok := s.Products[name]; !ok {
		return domain.ErrNotFound
	}
	if qty < 0 {
		return domain.ErrInvalidInput
	}
	s.Stock[StockKey{Product: name, Location: location}] += qty
	return nil
}

// Withdraw resta cantidad validando contra el saldo vivo: si la resta dejaría
// la existencia negativa se rechaza con ErrInsufficientStock y no se muta
// nada. Es la semántica de los traslados; nunca se recorta en silencio.
func (s *Snapshot) Withdraw(name, location string, qty int) error {
	if _, ok := s.Products[name]; !ok {
		return domain.ErrNotFound
	}
	if qty < 0 {
		return domain.ErrInvalidInput
	}
	key := StockKey{Product: name, Location: location}
	if s.Stock[key] < qty {
		return domain.ErrInsufficientStock
	}
	s.Stock[key] -= qty
	return nil
}

// WithdrawClamped resta con tope en cero y devuelve lo efectivamente
// descontado. Es la semántica deliberadamente permisiva de los ajustes de
// salida y las bajas por venta.
func (s *Snapshot) WithdrawClamped(name, location string, qty int) (int, error) {
	if _, ok := s.Products[name]; !ok {
		return 0, domain.ErrNotFound
	}
	if qty < 0 {
		return 0, domain.ErrInvalidInput
	}
	key := StockKey{Product: name, Location: location}
	current := s.Stock[key]
	if qty > current {
		qty = current
	}
	s.Stock[key] = current - qty
	return qty, nil
}

// Transfer mueve cantidad entre dos ubicaciones de forma atómica dentro del
// snapshot: resta en origen (validada) y suma en destino. La suma
// origen+destino queda invariante.
func (s *Snapshot) Transfer(name, from, to string, qty int) error {
	if from == to {
		return domain.ErrInvalidInput
	}
	if err := s.Withdraw(name, from, qty); err != nil {
		return err
	}
	s.Stock[StockKey{Product: name, Location: to}] += qty
	return nil
}

// Lookup resuelve un identificador externo contra el catálogo: primero por
// nombre exacto, luego por código y por código alterno en orden de nombre
// para que el resultado sea determinista. Devuelve nil si no hay coincidencia.
func (s *Snapshot) Lookup(identifier string) *entity.Product {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil
	}
	if p, ok := s.Products[identifier]; ok {
		return p
	}
	for _, name := range s.Names() {
		p := s.Products[name]
		if p.Code != "" && p.Code == identifier {
			return p
		}
	}
	for _, name := range s.Names() {
		p := s.Products[name]
		if p.AltCode != "" && p.AltCode == identifier {
			return p
		}
	}
	return nil
}

// Clone devuelve una copia profunda del snapshot (productos y existencias).
func (s *Snapshot) Clone() *Snapshot {
	out := NewSnapshot()
	for name, p := range s.Products {
		cp := *p
		if p.Min != nil {
			cp.Min = make(map[string]int, len(p.Min))
			for loc, min := range p.Min {
				cp.Min[loc] = min
			}
		}
		out.Products[name] = &cp
	}
	for k, v := range s.Stock {
		out.Stock[k] = v
	}
	return out
}

// Touch actualiza la marca de modificación del producto.
func (s *Snapshot) Touch(name string, now time.Time) {
	if p, ok := s.Products[name]; ok {
		p.UpdatedAt = now
	}
}
