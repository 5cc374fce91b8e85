package postgres

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// productRow fila cruda de la tabla products.
type productRow struct {
	Name      string
	Code      string
	AltCode   string
	Category  string
	Supplier  string
	Packaging string
	UnitCost  decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p productRow) toEntity() *entity.Product {
	return &entity.Product{
		Name:      p.Name,
		Code:      p.Code,
		AltCode:   p.AltCode,
		Category:  p.Category,
		Supplier:  p.Supplier,
		Packaging: p.Packaging,
		UnitCost:  p.UnitCost,
		Min:       make(map[string]int),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
