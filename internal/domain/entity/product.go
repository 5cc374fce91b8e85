package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo del catálogo. La clave de identidad es el
// nombre (string exacto, sensible a mayúsculas); Code y AltCode son claves de
// búsqueda alternativas usadas durante la importación, nunca identidades
// forzadas a ser únicas.
type Product struct {
	Name      string
	Code      string
	AltCode   string
	Category  string
	Supplier  string
	Packaging string          // presentación/unidad de empaque (ej. "caja x100")
	UnitCost  decimal.Decimal // costo unitario de compra
	Min       map[string]int  // mínimo deseado por sede consumidora (piso de stock)
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MinAt devuelve el mínimo configurado para la sede (0 si no existe).
func (p *Product) MinAt(site string) int {
	if p.Min == nil {
		return 0
	}
	return p.Min[site]
}

// SetMin fija el mínimo de una sede. Los mínimos negativos se descartan.
func (p *Product) SetMin(site string, qty int) {
	if qty < 0 {
		return
	}
	if p.Min == nil {
		p.Min = make(map[string]int)
	}
	p.Min[site] = qty
}
