package dto

import "github.com/shopspring/decimal"

// ColumnAbsent marca un campo lógico sin columna en el archivo importado.
const ColumnAbsent = -1

// RowMapping asigna cada campo lógico a una posición de columna en las filas
// de entrada. El resolver de encabezados lo deriva heurísticamente, pero el
// caller puede construirlo a mano; el reconciliador solo consume el mapping
// ya resuelto.
type RowMapping struct {
	Name      int            `json:"name"`
	Code      int            `json:"code"`
	AltCode   int            `json:"alt_code"`
	Supplier  int            `json:"supplier"`
	Packaging int            `json:"packaging"`
	Cost      int            `json:"cost"`
	Quantity  int            `json:"quantity"` // existencias de la ubicación destino (conteo físico)
	Min       map[string]int `json:"min"`      // columna del mínimo por sede
}

// EmptyMapping devuelve un mapping con todos los campos ausentes.
func EmptyMapping() RowMapping {
	return RowMapping{
		Name:      ColumnAbsent,
		Code:      ColumnAbsent,
		AltCode:   ColumnAbsent,
		Supplier:  ColumnAbsent,
		Packaging: ColumnAbsent,
		Cost:      ColumnAbsent,
		Quantity:  ColumnAbsent,
		Min:       map[string]int{},
	}
}

// ImportRow es una fila ya resuelta contra el mapping, con campos opcionales
// tipados: nil significa "ausente en la fila, no tocar el valor almacenado".
type ImportRow struct {
	Name      string
	Code      *string
	AltCode   *string
	Supplier  *string
	Packaging *string
	Cost      *decimal.Decimal
	Quantity  *int
	Min       map[string]int
}

// StockImportRequest body para importar un conteo físico de una ubicación.
type StockImportRequest struct {
	Location string     `json:"location"`
	Category string     `json:"category"` // categoría de lote para productos creados
	Mapping  RowMapping `json:"mapping"`
	Rows     [][]string `json:"rows"`
}

// MasterImportRequest body para importar datos maestros (sin cantidades).
type MasterImportRequest struct {
	Category string     `json:"category"`
	Mapping  RowMapping `json:"mapping"`
	Rows     [][]string `json:"rows"`
}

// ResolveMappingRequest body para derivar el mapping desde encabezados.
type ResolveMappingRequest struct {
	Headers []string `json:"headers"`
}

// ImportReport resultado de una pasada de importación.
type ImportReport struct {
	Updated   int      `json:"updated"`
	Created   int      `json:"created"`
	Unmatched []string `json:"unmatched"` // identificadores de filas no procesables
}
