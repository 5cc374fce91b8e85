package importer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/pkg/config"
)

// ImportUseCase fusiona filas externas en el catálogo y el libro de stock
// (match-or-create). Las importaciones masivas no escriben bitácora: solo los
// traslados, ajustes, ventas y compras se journalizan.
type ImportUseCase struct {
	snapshots repository.SnapshotRepository
	stock     config.StockConfig
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(snapshots repository.SnapshotRepository, stock config.StockConfig) *ImportUseCase {
	return &ImportUseCase{snapshots: snapshots, stock: stock}
}

// ImportStockCount importa un conteo físico de una ubicación: solo toca la
// existencia de esa ubicación, nunca los datos maestros de productos ya
// existentes. Productos no vistos se crean con la categoría del lote. La
// operación es idempotente: repetir el mismo archivo es una sobreescritura
// sin efecto.
func (uc *ImportUseCase) ImportStockCount(ctx context.Context, in dto.StockImportRequest) (*dto.ImportReport, error) {
	if !uc.stock.IsLocation(in.Location) {
		return nil, domain.ErrInvalidLocation
	}

	snap, err := uc.snapshots.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar snapshot: %w", err)
	}

	now := time.Now()
	report := &dto.ImportReport{Unmatched: []string{}}

	for _, raw := range in.Rows {
		row := resolveRow(in.Mapping, raw)
		p := matchRow(snap, row)
		switch {
		case p != nil:
			report.Updated++
		case row.Name != "":
			p = newProduct(row, in.Category, now)
			snap.Upsert(p)
			report.Created++
		default:
			if id := rowIdentifier(row, raw); id != "" {
				report.Unmatched = append(report.Unmatched, id)
			}
			continue
		}

		if row.Quantity != nil {
			if err := snap.SetQuantity(p.Name, in.Location, *row.Quantity); err != nil {
				return nil, err
			}
			snap.Touch(p.Name, now)
		}
	}

	if err := uc.snapshots.Save(ctx, snap); err != nil {
		return nil, fmt.Errorf("guardar snapshot: %w", err)
	}
	return report, nil
}

// ImportMasterData importa datos maestros (proveedor, presentación, costo,
// mínimos por sede): los campos presentes en la fila sobreescriben, los
// ausentes quedan intactos. Nunca toca cantidades.
func (uc *ImportUseCase) ImportMasterData(ctx context.Context, in dto.MasterImportRequest) (*dto.ImportReport, error) {
	snap, err := uc.snapshots.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar snapshot: %w", err)
	}

	now := time.Now()
	report := &dto.ImportReport{Unmatched: []string{}}

	for _, raw := range in.Rows {
		row := resolveRow(in.Mapping, raw)
		p := matchRow(snap, row)
		switch {
		case p != nil:
			report.Updated++
		case row.Name != "":
			p = newProduct(row, in.Category, now)
			snap.Upsert(p)
			report.Created++
		default:
			if id := rowIdentifier(row, raw); id != "" {
				report.Unmatched = append(report.Unmatched, id)
			}
			continue
		}

		applyMaster(p, row, uc.stock.Sites, now)
	}

	if err := uc.snapshots.Save(ctx, snap); err != nil {
		return nil, fmt.Errorf("guardar snapshot: %w", err)
	}
	return report, nil
}

// matchRow aplica el orden de matching del motor, primera coincidencia gana:
// código exacto, código alterno exacto, nombre exacto (recortado).
func matchRow(snap *inventory.Snapshot, row dto.ImportRow) *entity.Product {
	if row.Code != nil && *row.Code != "" {
		for _, name := range snap.Names() {
			if snap.Products[name].Code == *row.Code {
				return snap.Products[name]
			}
		}
	}
	if row.AltCode != nil && *row.AltCode != "" {
		for _, name := range snap.Names() {
			if snap.Products[name].AltCode == *row.AltCode {
				return snap.Products[name]
			}
		}
	}
	if row.Name != "" {
		return snap.Get(row.Name)
	}
	return nil
}

// resolveRow convierte una fila cruda en campos opcionales tipados según el
// mapping. Los índices fuera de rango cuentan como celda ausente.
func resolveRow(m dto.RowMapping, raw []string) dto.ImportRow {
	row := dto.ImportRow{}

	if v, ok := cell(raw, m.Name); ok {
		row.Name = strings.TrimSpace(v)
	}
	if v, ok := cell(raw, m.Code); ok {
		if c := CleanCode(v); c != "" {
			row.Code = &c
		}
	}
	if v, ok := cell(raw, m.AltCode); ok {
		if c := CleanCode(v); c != "" {
			row.AltCode = &c
		}
	}
	if v, ok := cell(raw, m.Supplier); ok {
		v = strings.TrimSpace(v)
		row.Supplier = &v
	}
	if v, ok := cell(raw, m.Packaging); ok {
		v = strings.TrimSpace(v)
		row.Packaging = &v
	}
	if v, ok := cell(raw, m.Cost); ok {
		d := ParseDecimal(v)
		row.Cost = &d
	}
	if v, ok := cell(raw, m.Quantity); ok {
		q := ParseQuantity(v)
		row.Quantity = &q
	}
	if len(m.Min) > 0 {
		row.Min = make(map[string]int, len(m.Min))
		for site, col := range m.Min {
			if v, ok := cell(raw, col); ok {
				row.Min[site] = ParseQuantity(v)
			}
		}
	}

	return row
}

func cell(raw []string, idx int) (string, bool) {
	if idx == dto.ColumnAbsent || idx < 0 || idx >= len(raw) {
		return "", false
	}
	return raw[idx], true
}

// newProduct crea el producto para una fila sin coincidencia: la categoría
// viene del lote (no de la fila) y todo campo no importado arranca en cero.
func newProduct(row dto.ImportRow, category string, now time.Time) *entity.Product {
	p := &entity.Product{
		Name:      row.Name,
		Category:  category,
		UnitCost:  decimal.Zero,
		Min:       make(map[string]int),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if row.Code != nil {
		p.Code = *row.Code
	}
	if row.AltCode != nil {
		p.AltCode = *row.AltCode
	}
	return p
}

// applyMaster sobreescribe en el producto los campos maestros presentes en la
// fila; mínimos negativos se descartan (SetMin).
func applyMaster(p *entity.Product, row dto.ImportRow, sites []string, now time.Time) {
	if row.Code != nil {
		p.Code = *row.Code
	}
	if row.AltCode != nil {
		p.AltCode = *row.AltCode
	}
	if row.Supplier != nil {
		p.Supplier = *row.Supplier
	}
	if row.Packaging != nil {
		p.Packaging = *row.Packaging
	}
	if row.Cost != nil {
		p.UnitCost = *row.Cost
	}
	for _, site := range sites {
		if min, ok := row.Min[site]; ok {
			p.SetMin(site, min)
		}
	}
	p.UpdatedAt = now
}

// rowIdentifier arma el identificador reportado para una fila no procesable.
func rowIdentifier(row dto.ImportRow, raw []string) string {
	if row.Code != nil && *row.Code != "" {
		return *row.Code
	}
	if row.AltCode != nil && *row.AltCode != "" {
		return *row.AltCode
	}
	for _, c := range raw {
		if c = strings.TrimSpace(c); c != "" {
			return c
		}
	}
	return ""
}
