package replenishment

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/pkg/config"
)

// UseCase calcula las sugerencias de reposición (traslado y compra) sobre un
// snapshot del catálogo+libro. Es de solo lectura: no muta ni persiste nada,
// y para un mismo snapshot el resultado es siempre el mismo (recorridos en
// orden de nombre, sin aleatoriedad).
type UseCase struct {
	snapshots repository.SnapshotRepository
	stock     config.StockConfig
}

// New construye el caso de uso de reposición.
func New(snapshots repository.SnapshotRepository, stock config.StockConfig) *UseCase {
	return &UseCase{snapshots: snapshots, stock: stock}
}

// SuggestTransfers devuelve una fila por producto para la sede destino:
// deficit = max(0, mínimo - stock sede); proposed = min(deficit, stock
// central). Las filas con proposed == 0 se incluyen (el operador puede
// sobreescribir) pero marcadas como no accionables.
func (uc *UseCase) SuggestTransfers(ctx context.Context, destination string) ([]dto.TransferSuggestionDTO, error) {
	if !uc.stock.IsSite(destination) {
		return nil, domain.ErrInvalidLocation
	}

	snap, err := uc.snapshots.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar snapshot: %w", err)
	}

	rows := make([]dto.TransferSuggestionDTO, 0, len(snap.Products))
	for _, name := range snap.Names() {
		p := snap.Products[name]
		atDest := snap.Quantity(name, destination)
		atCentral := snap.Quantity(name, uc.stock.Central)
		deficit, proposed := inventory.SuggestTransfer(p.MinAt(destination), atDest, atCentral)

		rows = append(rows, dto.TransferSuggestionDTO{
			Product:       name,
			Supplier:      p.Supplier,
			Packaging:     p.Packaging,
			Minimum:       p.MinAt(destination),
			AtDestination: atDest,
			AtCentral:     atCentral,
			Deficit:       deficit,
			Proposed:      proposed,
			Actionable:    proposed > 0,
		})
	}
	return rows, nil
}

// SuggestPurchases devuelve una fila por producto que pasa el filtro de
// proveedor (vacío = todos): objetivo agregado = suma de mínimos de las
// sedes; existencia agregada = suma de todas las ubicaciones, central
// incluida; suggested = max(0, objetivo - existencia).
func (uc *UseCase) SuggestPurchases(ctx context.Context, supplier string) ([]dto.PurchaseSuggestionDTO, error) {
	snap, err := uc.snapshots.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar snapshot: %w", err)
	}

	rows := make([]dto.PurchaseSuggestionDTO, 0, len(snap.Products))
	for _, name := range snap.Names() {
		p := snap.Products[name]
		if supplier != "" && p.Supplier != supplier {
			continue
		}

		target := 0
		for _, site := range uc.stock.Sites {
			target += p.MinAt(site)
		}
		owned := 0
		for _, loc := range uc.stock.All() {
			owned += snap.Quantity(name, loc)
		}
		suggested := inventory.SuggestPurchase(target, owned)

		rows = append(rows, dto.PurchaseSuggestionDTO{
			Product:         name,
			Supplier:        p.Supplier,
			Packaging:       p.Packaging,
			UnitCost:        p.UnitCost,
			AggregateTarget: target,
			AggregateOwned:  owned,
			Suggested:       suggested,
			EstimatedCost:   p.UnitCost.Mul(decimal.NewFromInt(int64(suggested))),
		})
	}
	return rows, nil
}
