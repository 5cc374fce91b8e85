package catalog

import (
	"context"
	"fmt"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/pkg/config"
)

// UseCase expone el catálogo con sus existencias por ubicación y el borrado
// explícito de productos (con cascada sobre el libro de stock).
type UseCase struct {
	snapshots repository.SnapshotRepository
	stock     config.StockConfig
}

// New construye el caso de uso de catálogo.
func New(snapshots repository.SnapshotRepository, stock config.StockConfig) *UseCase {
	return &UseCase{snapshots: snapshots, stock: stock}
}

// List devuelve el catálogo completo ordenado por nombre.
func (uc *UseCase) List(ctx context.Context) ([]dto.ProductDTO, error) {
	snap, err := uc.snapshots.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar snapshot: %w", err)
	}

	out := make([]dto.ProductDTO, 0, len(snap.Products))
	for _, name := range snap.Names() {
		out = append(out, uc.toDTO(snap, snap.Products[name]))
	}
	return out, nil
}

// Get devuelve un producto por nombre exacto.
func (uc *UseCase) Get(ctx context.Context, name string) (*dto.ProductDTO, error) {
	snap, err := uc.snapshots.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar snapshot: %w", err)
	}
	p := snap.Get(name)
	if p == nil {
		return nil, domain.ErrNotFound
	}
	d := uc.toDTO(snap, p)
	return &d, nil
}

// Delete elimina el producto y sus existencias. Es la única vía de borrado
// físico y siempre parte de una acción explícita del operador.
func (uc *UseCase) Delete(ctx context.Context, name string) error {
	snap, err := uc.snapshots.Load(ctx)
	if err != nil {
		return fmt.Errorf("cargar snapshot: %w", err)
	}
	if err := snap.Delete(name); err != nil {
		return err
	}
	if err := uc.snapshots.Save(ctx, snap); err != nil {
		return fmt.Errorf("guardar snapshot: %w", err)
	}
	return nil
}

func (uc *UseCase) toDTO(snap *inventory.Snapshot, p *entity.Product) dto.ProductDTO {
	stock := make(map[string]int, len(uc.stock.All()))
	for _, loc := range uc.stock.All() {
		stock[loc] = snap.Quantity(p.Name, loc)
	}
	min := make(map[string]int, len(uc.stock.Sites))
	for _, site := range uc.stock.Sites {
		min[site] = p.MinAt(site)
	}
	return dto.ProductDTO{
		Name:      p.Name,
		Code:      p.Code,
		AltCode:   p.AltCode,
		Category:  p.Category,
		Supplier:  p.Supplier,
		Packaging: p.Packaging,
		UnitCost:  p.UnitCost,
		Min:       min,
		Stock:     stock,
	}
}
