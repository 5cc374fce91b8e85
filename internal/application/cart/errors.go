package cart

import (
	"fmt"
	"strings"
)

// LineFailure describe una línea rechazada por saldo insuficiente en origen.
type LineFailure struct {
	Product   string
	Requested int
	Available int
}

func (f LineFailure) String() string {
	return fmt.Sprintf("%s: solicitado %d, disponible %d", f.Product, f.Requested, f.Available)
}

// InsufficientStockError es la falla de validación (reportada, no fatal) de
// un Add: lista cada línea ofensora y garantiza que el libro quedó intacto.
type InsufficientStockError struct {
	Failures []LineFailure
}

func (e *InsufficientStockError) Error() string {
	parts := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		parts[i] = f.String()
	}
	return "stock insuficiente en origen: " + strings.Join(parts, "; ")
}
