package entity

import "time"

// BatchLine es una línea de traslado ya aplicada al libro de stock dentro de
// una sesión de carrito. Es estado efímero: al finalizar la sesión la lista
// se descarta; las mutaciones que representa ya viven en el libro y en la
// bitácora. Invariante: Quantity > 0 (las líneas en cero se filtran antes).
type BatchLine struct {
	ID          string // uuid, enlaza la línea con sus entradas de bitácora
	Destination string
	Product     string
	Quantity    int
	AddedAt     time.Time
}
