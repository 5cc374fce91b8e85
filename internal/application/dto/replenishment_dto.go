package dto

import "github.com/shopspring/decimal"

// TransferSuggestionDTO una fila de sugerencia de traslado hacia una sede.
// Se incluyen también las filas con Proposed == 0 (el operador puede
// sobreescribir la cantidad), marcadas como no accionables.
type TransferSuggestionDTO struct {
	Product       string `json:"product"`
	Supplier      string `json:"supplier"`
	Packaging     string `json:"packaging"`
	Minimum       int    `json:"minimum"`
	AtDestination int    `json:"at_destination"`
	AtCentral     int    `json:"at_central"`
	Deficit       int    `json:"deficit"`  // max(0, minimo - stock sede)
	Proposed      int    `json:"proposed"` // min(deficit, stock central)
	Actionable    bool   `json:"actionable"`
}

// PurchaseSuggestionDTO una fila de sugerencia de compra a proveedor.
type PurchaseSuggestionDTO struct {
	Product         string          `json:"product"`
	Supplier        string          `json:"supplier"`
	Packaging       string          `json:"packaging"`
	UnitCost        decimal.Decimal `json:"unit_cost"`
	AggregateTarget int             `json:"aggregate_target"` // suma de mínimos de todas las sedes
	AggregateOwned  int             `json:"aggregate_owned"`  // existencias totales, central incluida
	Suggested       int             `json:"suggested"`
	EstimatedCost   decimal.Decimal `json:"estimated_cost"` // Suggested * UnitCost
}
