package importer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/importer"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/inventory"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/memory"
	"github.com/jhoicas/Almacen-api/pkg/config"
)

var testStock = config.StockConfig{Central: "Central", Sites: []string{"SedeA", "SedeB"}}

// seedStore crea un store en memoria con un catálogo mínimo conocido.
func seedStore(t *testing.T) *memory.Store {
	t.Helper()
	store := memory.NewStore()

	snap := inventory.NewSnapshot()
	snap.Upsert(&entity.Product{Name: "Gasa Estéril", Code: "1001", AltCode: "789000111"})
	snap.Upsert(&entity.Product{Name: "Suero Fisiológico", Code: "1002"})
	require.NoError(t, snap.SetQuantity("Gasa Estéril", "Central", 100))
	require.NoError(t, store.Save(context.Background(), snap))

	return store
}

// mapping columna 0 = código, 1 = nombre, 2 = cantidad.
func countMapping() dto.RowMapping {
	m := dto.EmptyMapping()
	m.Code = 0
	m.Name = 1
	m.Quantity = 2
	return m
}

func TestImportStockCount_MatchPorCodigoActualiza(t *testing.T) {
	store := seedStore(t)
	uc := importer.NewImportUseCase(store, testStock)

	report, err := uc.ImportStockCount(context.Background(), dto.StockImportRequest{
		Location: "SedeA",
		Mapping:  countMapping(),
		Rows:     [][]string{{"1001", "Nombre Distinto En Archivo", "25"}},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, report.Updated)
	assert.Zero(t, report.Created)

	snap, _ := store.Load(context.Background())
	assert.Equal(t, 25, snap.Quantity("Gasa Estéril", "SedeA"),
		"el código gana al nombre: la fila actualiza al producto existente")
	assert.Equal(t, 100, snap.Quantity("Gasa Estéril", "Central"),
		"el conteo solo toca la ubicación importada")
	assert.NotNil(t, snap.Get("Gasa Estéril"), "el nombre del catálogo no cambia por un conteo")
}

func TestImportStockCount_MatchPorCodigoAlterno(t *testing.T) {
	store := seedStore(t)
	uc := importer.NewImportUseCase(store, testStock)

	m := countMapping()
	m.Code = dto.ColumnAbsent
	m.AltCode = 0

	report, err := uc.ImportStockCount(context.Background(), dto.StockImportRequest{
		Location: "SedeA",
		Mapping:  m,
		Rows:     [][]string{{"789000111", "", "7"}},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, report.Updated)

	snap, _ := store.Load(context.Background())
	assert.Equal(t, 7, snap.Quantity("Gasa Estéril", "SedeA"))
}

func TestImportStockCount_SinMatchConNombreCrea(t *testing.T) {
	store := seedStore(t)
	uc := importer.NewImportUseCase(store, testStock)

	report, err := uc.ImportStockCount(context.Background(), dto.StockImportRequest{
		Location: "Central",
		Category: "Medicamentos",
		Mapping:  countMapping(),
		Rows:     [][]string{{"9999", "Ibuprofeno 600mg", "40"}},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, report.Created)

	snap, _ := store.Load(context.Background())
	p := snap.Get("Ibuprofeno 600mg")
	require.NotNil(t, p)
	assert.Equal(t, "Medicamentos", p.Category, "la categoría viene del lote, no de la fila")
	assert.Equal(t, "9999", p.Code)
	assert.True(t, p.UnitCost.IsZero(), "los campos no importados arrancan en cero")
	assert.Equal(t, 40, snap.Quantity("Ibuprofeno 600mg", "Central"))
}

func TestImportStockCount_FilaSinNombreNiMatchQuedaUnmatched(t *testing.T) {
	store := seedStore(t)
	uc := importer.NewImportUseCase(store, testStock)

	report, err := uc.ImportStockCount(context.Background(), dto.StockImportRequest{
		Location: "SedeA",
		Mapping:  countMapping(),
		Rows:     [][]string{{"0000", "", "5"}},
	})

	require.NoError(t, err)
	assert.Zero(t, report.Updated)
	assert.Zero(t, report.Created)
	assert.Equal(t, []string{"0000"}, report.Unmatched,
		"la fila irreconocible se reporta, no aborta el lote")
}

func TestImportStockCount_UbicacionDesconocida(t *testing.T) {
	store := seedStore(t)
	uc := importer.NewImportUseCase(store, testStock)

	_, err := uc.ImportStockCount(context.Background(), dto.StockImportRequest{
		Location: "Bodega Fantasma",
		Mapping:  countMapping(),
	})

	assert.ErrorIs(t, err, domain.ErrInvalidLocation)
}

func TestImportStockCount_Idempotente(t *testing.T) {
	store := seedStore(t)
	uc := importer.NewImportUseCase(store, testStock)
	req := dto.StockImportRequest{
		Location: "SedeA",
		Mapping:  countMapping(),
		Rows:     [][]string{{"1001", "", "25"}},
	}

	_, err := uc.ImportStockCount(context.Background(), req)
	require.NoError(t, err)
	_, err = uc.ImportStockCount(context.Background(), req)
	require.NoError(t, err)

	snap, _ := store.Load(context.Background())
	assert.Equal(t, 25, snap.Quantity("Gasa Estéril", "SedeA"),
		"repetir el mismo archivo es una sobreescritura sin efecto")
}

func TestImportStockCount_CantidadNegativaVaACero(t *testing.T) {
	store := seedStore(t)
	uc := importer.NewImportUseCase(store, testStock)

	_, err := uc.ImportStockCount(context.Background(), dto.StockImportRequest{
		Location: "Central",
		Mapping:  countMapping(),
		Rows:     [][]string{{"1001", "", "-12"}},
	})

	require.NoError(t, err)
	snap, _ := store.Load(context.Background())
	assert.Zero(t, snap.Quantity("Gasa Estéril", "Central"))
}

func TestImportMasterData_CamposPresentesSobreescriben(t *testing.T) {
	store := seedStore(t)
	uc := importer.NewImportUseCase(store, testStock)

	m := dto.EmptyMapping()
	m.Code = 0
	m.Supplier = 1
	m.Cost = 2
	m.Min = map[string]int{"SedeA": 3}

	_, err := uc.ImportMasterData(context.Background(), dto.MasterImportRequest{
		Mapping: m,
		Rows:    [][]string{{"1001", "Distribuidora Sur", "R$ 2,50", "50"}},
	})

	require.NoError(t, err)
	snap, _ := store.Load(context.Background())
	p := snap.Get("Gasa Estéril")
	require.NotNil(t, p)
	assert.Equal(t, "Distribuidora Sur", p.Supplier)
	assert.Equal(t, "2.5", p.UnitCost.String())
	assert.Equal(t, 50, p.MinAt("SedeA"))
	assert.Equal(t, "789000111", p.AltCode, "los campos ausentes del archivo quedan intactos")
}

func TestImportMasterData_NuncaTocaCantidades(t *testing.T) {
	store := seedStore(t)
	uc := importer.NewImportUseCase(store, testStock)

	m := dto.EmptyMapping()
	m.Code = 0
	m.Supplier = 1

	_, err := uc.ImportMasterData(context.Background(), dto.MasterImportRequest{
		Mapping: m,
		Rows:    [][]string{{"1001", "Distribuidora Sur"}},
	})

	require.NoError(t, err)
	snap, _ := store.Load(context.Background())
	assert.Equal(t, 100, snap.Quantity("Gasa Estéril", "Central"))
}

func TestImportStockCount_IndiceFueraDeRangoEsCeldaAusente(t *testing.T) {
	store := seedStore(t)
	uc := importer.NewImportUseCase(store, testStock)

	// La fila es más corta que el mapping: sin celda de cantidad no se toca
	// la existencia.
	report, err := uc.ImportStockCount(context.Background(), dto.StockImportRequest{
		Location: "Central",
		Mapping:  countMapping(),
		Rows:     [][]string{{"1001"}},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, report.Updated)
	snap, _ := store.Load(context.Background())
	assert.Equal(t, 100, snap.Quantity("Gasa Estéril", "Central"))
}
