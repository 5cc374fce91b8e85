package replenishment_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/replenishment"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/inventory"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/memory"
	"github.com/jhoicas/Almacen-api/pkg/config"
)

var testStock = config.StockConfig{Central: "Central", Sites: []string{"SedeA", "SedeB"}}

func seedUseCase(t *testing.T, seed func(*inventory.Snapshot)) *replenishment.UseCase {
	t.Helper()
	store := memory.NewStore()
	snap := inventory.NewSnapshot()
	seed(snap)
	require.NoError(t, store.Save(context.Background(), snap))
	return replenishment.New(store, testStock)
}

func findRow(t *testing.T, rows []dto.TransferSuggestionDTO, product string) dto.TransferSuggestionDTO {
	t.Helper()
	for _, r := range rows {
		if r.Product == product {
			return r
		}
	}
	t.Fatalf("no hay fila para %q", product)
	return dto.TransferSuggestionDTO{}
}

// ── Sugerencia de traslado ────────────────────────────────────────────────────

func TestSuggestTransfers_CentralCubre(t *testing.T) {
	// Gasa: mínimo 50 en SedeA, sede con 10, central con 100 -> propone 40.
	uc := seedUseCase(t, func(snap *inventory.Snapshot) {
		p := &entity.Product{Name: "Gasa", Min: map[string]int{}}
		p.SetMin("SedeA", 50)
		snap.Upsert(p)
		_ = snap.SetQuantity("Gasa", "SedeA", 10)
		_ = snap.SetQuantity("Gasa", "Central", 100)
	})

	rows, err := uc.SuggestTransfers(context.Background(), "SedeA")
	require.NoError(t, err)

	row := findRow(t, rows, "Gasa")
	assert.Equal(t, 40, row.Deficit)
	assert.Equal(t, 40, row.Proposed)
	assert.True(t, row.Actionable)
}

func TestSuggestTransfers_CentralLimita(t *testing.T) {
	// Mismo déficit de 40, central con 20 -> propone 20.
	uc := seedUseCase(t, func(snap *inventory.Snapshot) {
		p := &entity.Product{Name: "Gasa", Min: map[string]int{}}
		p.SetMin("SedeA", 50)
		snap.Upsert(p)
		_ = snap.SetQuantity("Gasa", "SedeA", 10)
		_ = snap.SetQuantity("Gasa", "Central", 20)
	})

	rows, err := uc.SuggestTransfers(context.Background(), "SedeA")
	require.NoError(t, err)

	row := findRow(t, rows, "Gasa")
	assert.Equal(t, 40, row.Deficit)
	assert.Equal(t, 20, row.Proposed)
}

func TestSuggestTransfers_FilaEnCeroNoAccionable(t *testing.T) {
	uc := seedUseCase(t, func(snap *inventory.Snapshot) {
		snap.Upsert(&entity.Product{Name: "Suero"})
		_ = snap.SetQuantity("Suero", "SedeA", 99)
	})

	rows, err := uc.SuggestTransfers(context.Background(), "SedeA")
	require.NoError(t, err)

	row := findRow(t, rows, "Suero")
	assert.Zero(t, row.Proposed)
	assert.False(t, row.Actionable, "las filas en cero se incluyen pero no son accionables")
}

func TestSuggestTransfers_DestinoInvalido(t *testing.T) {
	uc := seedUseCase(t, func(*inventory.Snapshot) {})

	_, err := uc.SuggestTransfers(context.Background(), "Central")
	assert.ErrorIs(t, err, domain.ErrInvalidLocation,
		"la central no es destino de traslado")

	_, err = uc.SuggestTransfers(context.Background(), "SedeX")
	assert.ErrorIs(t, err, domain.ErrInvalidLocation)
}

func TestSuggestTransfers_OrdenDeterminista(t *testing.T) {
	uc := seedUseCase(t, func(snap *inventory.Snapshot) {
		snap.Upsert(&entity.Product{Name: "Zinc"})
		snap.Upsert(&entity.Product{Name: "Alcohol"})
		snap.Upsert(&entity.Product{Name: "Gasa"})
	})

	rows, err := uc.SuggestTransfers(context.Background(), "SedeA")
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, "Alcohol", rows[0].Product)
	assert.Equal(t, "Gasa", rows[1].Product)
	assert.Equal(t, "Zinc", rows[2].Product)
}

// ── Sugerencia de compra ──────────────────────────────────────────────────────

func TestSuggestPurchases_AgregadoIncluyeCentral(t *testing.T) {
	// Suero: mínimos 30+20=50, existencias 5+10+10=25 -> compra 25.
	uc := seedUseCase(t, func(snap *inventory.Snapshot) {
		p := &entity.Product{Name: "Suero", Supplier: "Proveedor X", UnitCost: decimal.NewFromFloat(1.5)}
		p.SetMin("SedeA", 30)
		p.SetMin("SedeB", 20)
		snap.Upsert(p)
		_ = snap.SetQuantity("Suero", "Central", 5)
		_ = snap.SetQuantity("Suero", "SedeA", 10)
		_ = snap.SetQuantity("Suero", "SedeB", 10)
	})

	rows, err := uc.SuggestPurchases(context.Background(), "")
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, 50, rows[0].AggregateTarget)
	assert.Equal(t, 25, rows[0].AggregateOwned, "la central cuenta como existencia")
	assert.Equal(t, 25, rows[0].Suggested)
	assert.Equal(t, "37.5", rows[0].EstimatedCost.String(), "costo estimado = costo unitario × sugerido")
}

func TestSuggestPurchases_FiltroPorProveedor(t *testing.T) {
	uc := seedUseCase(t, func(snap *inventory.Snapshot) {
		snap.Upsert(&entity.Product{Name: "Gasa", Supplier: "Proveedor X"})
		snap.Upsert(&entity.Product{Name: "Suero", Supplier: "Proveedor Y"})
	})

	rows, err := uc.SuggestPurchases(context.Background(), "Proveedor Y")
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, "Suero", rows[0].Product)

	all, err := uc.SuggestPurchases(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2, "filtro vacío = todos los proveedores")
}

func TestSuggestPurchases_ExcedenteNoSugiere(t *testing.T) {
	uc := seedUseCase(t, func(snap *inventory.Snapshot) {
		p := &entity.Product{Name: "Gasa"}
		p.SetMin("SedeA", 10)
		snap.Upsert(p)
		_ = snap.SetQuantity("Gasa", "Central", 500)
	})

	rows, err := uc.SuggestPurchases(context.Background(), "")
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Zero(t, rows[0].Suggested)
	assert.True(t, rows[0].EstimatedCost.IsZero())
}

// El cálculo es de solo lectura: repetirlo no cambia el resultado ni el libro.
func TestSuggestTransfers_NoMutaElLibro(t *testing.T) {
	store := memory.NewStore()
	snap := inventory.NewSnapshot()
	p := &entity.Product{Name: "Gasa"}
	p.SetMin("SedeA", 50)
	snap.Upsert(p)
	_ = snap.SetQuantity("Gasa", "Central", 100)
	require.NoError(t, store.Save(context.Background(), snap))
	uc := replenishment.New(store, testStock)

	first, err := uc.SuggestTransfers(context.Background(), "SedeA")
	require.NoError(t, err)
	second, err := uc.SuggestTransfers(context.Background(), "SedeA")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	after, _ := store.Load(context.Background())
	assert.Equal(t, 100, after.Quantity("Gasa", "Central"))
}
