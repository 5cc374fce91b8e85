package dto

// Direcciones de ajuste manual.
const (
	AdjustIn  = "IN"
	AdjustOut = "OUT"
)

// AdjustmentRequest body para un ajuste manual de entrada/salida.
type AdjustmentRequest struct {
	Product   string `json:"product"`
	Location  string `json:"location"`
	Direction string `json:"direction"` // IN | OUT
	Quantity  int    `json:"quantity"`
	Detail    string `json:"detail"`
}

// SaleItemRequest una pareja (identificador, cantidad) de un reporte de ventas.
type SaleItemRequest struct {
	Identifier string `json:"identifier"` // nombre, código o código alterno
	Quantity   int    `json:"quantity"`
}

// SalesDeductionRequest body para la baja masiva por ventas de una ubicación.
type SalesDeductionRequest struct {
	Location string            `json:"location"`
	Items    []SaleItemRequest `json:"items"`
}

// SalesDeductionReport resultado de la baja masiva: las filas sin coincidencia
// se recolectan, no abortan el lote.
type SalesDeductionReport struct {
	Applied   int      `json:"applied"`
	Deducted  int      `json:"deducted_units"`
	Unmatched []string `json:"unmatched"`
}

// PurchaseReceiptRequest body para registrar una compra recibida en la central.
type PurchaseReceiptRequest struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
	Detail   string `json:"detail"`
}
