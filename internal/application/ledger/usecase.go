package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/pkg/config"
)

// UseCase agrupa las operaciones directas sobre el libro de stock: ajuste
// manual de entrada/salida, baja masiva por ventas y recepción de compras.
// Todas se journalizan; a diferencia de los traslados, las restas de este
// camino son deliberadamente permisivas (tope en cero, sin falla reportada).
type UseCase struct {
	snapshots repository.SnapshotRepository
	audit     repository.AuditRepository
	stock     config.StockConfig
}

// New construye el caso de uso.
func New(snapshots repository.SnapshotRepository, audit repository.AuditRepository, stock config.StockConfig) *UseCase {
	return &UseCase{snapshots: snapshots, audit: audit, stock: stock}
}

// Adjust aplica un ajuste manual en una ubicación: IN suma, OUT resta con
// tope en cero (nunca queda negativo y no se reporta falla por quedarse
// corto). Registra ENTRY o EXIT en la bitácora con lo efectivamente movido.
func (uc *UseCase) Adjust(ctx context.Context, in dto.AdjustmentRequest) error {
	if in.Product == "" || in.Quantity <= 0 {
		return domain.ErrInvalidInput
	}
	if !uc.stock.IsLocation(in.Location) {
		return domain.ErrInvalidLocation
	}

	snap, err := uc.snapshots.Load(ctx)
	if err != nil {
		return fmt.Errorf("cargar snapshot: %w", err)
	}

	moved := in.Quantity
	var kind string
	switch in.Direction {
	case dto.AdjustIn:
		kind = entity.AuditKindEntry
		if err := snap.Add(in.Product, in.Location, in.Quantity); err != nil {
			return err
		}
	case dto.AdjustOut:
		kind = entity.AuditKindExit
		moved, err = snap.WithdrawClamped(in.Product, in.Location, in.Quantity)
		if err != nil {
			return err
		}
	default:
		return domain.ErrInvalidInput
	}

	if err := uc.snapshots.Save(ctx, snap); err != nil {
		return fmt.Errorf("guardar snapshot: %w", err)
	}

	detail := in.Detail
	if detail == "" {
		detail = fmt.Sprintf("ajuste manual en %s", in.Location)
	}
	return uc.appendAudit(ctx, in.Product, moved, kind, detail)
}

// DeductSales descuenta de una ubicación las parejas (identificador,
// cantidad) de un reporte de ventas externo, con tope en cero por fila. Los
// identificadores sin coincidencia (nombre, código ni código alterno) se
// recolectan en el reporte y no abortan el lote.
func (uc *UseCase) DeductSales(ctx context.Context, in dto.SalesDeductionRequest) (*dto.SalesDeductionReport, error) {
	if !uc.stock.IsLocation(in.Location) {
		return nil, domain.ErrInvalidLocation
	}

	snap, err := uc.snapshots.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar snapshot: %w", err)
	}

	report := &dto.SalesDeductionReport{Unmatched: []string{}}
	type applied struct {
		product string
		qty     int
	}
	var journal []applied

	for _, item := range in.Items {
		if item.Quantity <= 0 {
			continue
		}
		p := snap.Lookup(item.Identifier)
		if p == nil {
			report.Unmatched = append(report.Unmatched, item.Identifier)
			continue
		}
		deducted, err := snap.WithdrawClamped(p.Name, in.Location, item.Quantity)
		if err != nil {
			return nil, err
		}
		report.Applied++
		report.Deducted += deducted
		journal = append(journal, applied{product: p.Name, qty: deducted})
	}

	if err := uc.snapshots.Save(ctx, snap); err != nil {
		return nil, fmt.Errorf("guardar snapshot: %w", err)
	}
	for _, j := range journal {
		detail := fmt.Sprintf("baja por ventas en %s", in.Location)
		if err := uc.appendAudit(ctx, j.product, j.qty, entity.AuditKindSale, detail); err != nil {
			return nil, err
		}
	}
	return report, nil
}

// RegisterPurchase registra una compra recibida sumando en la central y
// journalizando la recepción.
func (uc *UseCase) RegisterPurchase(ctx context.Context, in dto.PurchaseReceiptRequest) error {
	if in.Product == "" || in.Quantity <= 0 {
		return domain.ErrInvalidInput
	}

	snap, err := uc.snapshots.Load(ctx)
	if err != nil {
		return fmt.Errorf("cargar snapshot: %w", err)
	}
	if err := snap.Add(in.Product, uc.stock.Central, in.Quantity); err != nil {
		return err
	}
	if err := uc.snapshots.Save(ctx, snap); err != nil {
		return fmt.Errorf("guardar snapshot: %w", err)
	}

	detail := in.Detail
	if detail == "" {
		detail = fmt.Sprintf("compra recibida en %s", uc.stock.Central)
	}
	return uc.appendAudit(ctx, in.Product, in.Quantity, entity.AuditKindPurchase, detail)
}

func (uc *UseCase) appendAudit(ctx context.Context, product string, qty int, kind, detail string) error {
	entry := &entity.AuditEntry{
		ID:        uuid.New().String(),
		Timestamp: time.Now(),
		Product:   product,
		Quantity:  qty,
		Kind:      kind,
		Detail:    detail,
	}
	if err := uc.audit.Append(ctx, entry); err != nil {
		return fmt.Errorf("registrar bitácora: %w", err)
	}
	return nil
}
