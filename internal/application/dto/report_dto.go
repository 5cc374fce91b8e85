package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrderLineDTO una línea de la orden de compra sugerida.
type PurchaseOrderLineDTO struct {
	Product   string          `json:"product"`
	Supplier  string          `json:"supplier"`
	Packaging string          `json:"packaging"`
	Quantity  int             `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// PurchaseOrderDTO orden de compra con total general. Datos tabulares puros:
// el render a documento es responsabilidad de un colaborador externo.
type PurchaseOrderDTO struct {
	Supplier   string                 `json:"supplier"` // vacío = todos
	Lines      []PurchaseOrderLineDTO `json:"lines"`
	TotalUnits int                    `json:"total_units"`
	GrandTotal decimal.Decimal        `json:"grand_total"`
}

// AuditEntryDTO una entrada de bitácora para el listado.
type AuditEntryDTO struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Product   string    `json:"product"`
	Quantity  int       `json:"quantity"`
	Kind      string    `json:"kind"`
	Detail    string    `json:"detail"`
}

// ProductDTO vista de catálogo con existencias por ubicación.
type ProductDTO struct {
	Name      string          `json:"name"`
	Code      string          `json:"code,omitempty"`
	AltCode   string          `json:"alt_code,omitempty"`
	Category  string          `json:"category"`
	Supplier  string          `json:"supplier"`
	Packaging string          `json:"packaging"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	Min       map[string]int  `json:"min"`
	Stock     map[string]int  `json:"stock"`
}
