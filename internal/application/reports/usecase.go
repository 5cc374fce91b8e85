package reports

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/replenishment"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// UseCase arma los reportes tabulares del motor: orden de compra sugerida y
// listado de bitácora. Emite filas con campos nombrados; convertirlas a PDF u
// hoja de cálculo es responsabilidad del colaborador externo de render.
type UseCase struct {
	replenishment *replenishment.UseCase
	audit         repository.AuditRepository
}

// New construye el caso de uso de reportes.
func New(repl *replenishment.UseCase, audit repository.AuditRepository) *UseCase {
	return &UseCase{replenishment: repl, audit: audit}
}

// PurchaseOrder construye la orden de compra a partir de las sugerencias con
// cantidad positiva: costo por línea y total general en decimal.
func (uc *UseCase) PurchaseOrder(ctx context.Context, supplier string) (*dto.PurchaseOrderDTO, error) {
	suggestions, err := uc.replenishment.SuggestPurchases(ctx, supplier)
	if err != nil {
		return nil, err
	}

	order := &dto.PurchaseOrderDTO{
		Supplier:   supplier,
		Lines:      []dto.PurchaseOrderLineDTO{},
		GrandTotal: decimal.Zero,
	}
	for _, s := range suggestions {
		if s.Suggested <= 0 {
			continue
		}
		line := dto.PurchaseOrderLineDTO{
			Product:   s.Product,
			Supplier:  s.Supplier,
			Packaging: s.Packaging,
			Quantity:  s.Suggested,
			UnitCost:  s.UnitCost,
			LineTotal: s.EstimatedCost,
		}
		order.Lines = append(order.Lines, line)
		order.TotalUnits += s.Suggested
		order.GrandTotal = order.GrandTotal.Add(line.LineTotal)
	}
	return order, nil
}

// AuditLog lista la bitácora paginada, más recientes primero.
func (uc *UseCase) AuditLog(ctx context.Context, page dto.PageRequest) ([]dto.AuditEntryDTO, error) {
	page.DefaultPage()
	entries, err := uc.audit.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("listar bitácora: %w", err)
	}
	out := make([]dto.AuditEntryDTO, len(entries))
	for i, e := range entries {
		out[i] = dto.AuditEntryDTO{
			ID:        e.ID,
			Timestamp: e.Timestamp,
			Product:   e.Product,
			Quantity:  e.Quantity,
			Kind:      e.Kind,
			Detail:    e.Detail,
		}
	}
	return out, nil
}
