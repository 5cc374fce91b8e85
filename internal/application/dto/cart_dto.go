package dto

import "time"

// CartLineRequest una línea propuesta para agregar al carrito.
type CartLineRequest struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

// AddLinesRequest body para agregar líneas de traslado en bloque.
type AddLinesRequest struct {
	Destination string            `json:"destination"`
	Lines       []CartLineRequest `json:"lines"`
}

// CartLineDTO una línea ya aplicada al libro de stock.
type CartLineDTO struct {
	Index       int       `json:"index"`
	Destination string    `json:"destination"`
	Product     string    `json:"product"`
	Quantity    int       `json:"quantity"`
	AddedAt     time.Time `json:"added_at"`
}

// CartDTO estado visible de una sesión de carrito.
type CartDTO struct {
	SessionID string        `json:"session_id"`
	CreatedAt time.Time     `json:"created_at"`
	Lines     []CartLineDTO `json:"lines"`
}

// LineFailureDTO detalle de una línea rechazada por stock insuficiente.
type LineFailureDTO struct {
	Product   string `json:"product"`
	Requested int    `json:"requested"`
	Available int    `json:"available"`
}

// ManifestRowDTO fila del resumen producto × destino del carrito finalizado.
type ManifestRowDTO struct {
	Product  string         `json:"product"`
	ByDest   map[string]int `json:"by_destination"`
	Total    int            `json:"total"`
}

// CartSummaryDTO resumen agrupado de la sesión finalizada (manifiesto de
// traslado para el colaborador de reportes externo).
type CartSummaryDTO struct {
	SessionID    string           `json:"session_id"`
	Destinations []string         `json:"destinations"`
	Rows         []ManifestRowDTO `json:"rows"`
	TotalUnits   int              `json:"total_units"`
}
