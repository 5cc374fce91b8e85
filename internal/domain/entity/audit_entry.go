package entity

import "time"

// Tipos de mutación del libro de stock registrados en la bitácora.
const (
	AuditKindTransfer   = "TRANSFER"   // traslado central -> sede (línea de carrito)
	AuditKindCorrection = "CORRECTION" // reverso de una línea de carrito
	AuditKindEntry      = "ENTRY"      // ajuste manual de entrada
	AuditKindExit       = "EXIT"       // ajuste manual de salida (con tope en cero)
	AuditKindSale       = "SALE"       // baja por reporte de ventas
	AuditKindPurchase   = "PURCHASE"   // recepción de compra en la central
)

// AuditEntry es un registro inmutable de una mutación del libro de stock.
// Solo se agrega, nunca se modifica ni se borra. Las importaciones masivas
// no generan entradas (se journalizan traslados, ajustes, ventas y compras).
type AuditEntry struct {
	ID        string // uuid
	Timestamp time.Time
	Product   string
	Quantity  int
	Kind      string
	Detail    string
}
