package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/cart"
	"github.com/jhoicas/Almacen-api/internal/application/catalog"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/importer"
	"github.com/jhoicas/Almacen-api/internal/application/ledger"
	"github.com/jhoicas/Almacen-api/internal/application/replenishment"
	"github.com/jhoicas/Almacen-api/internal/application/reports"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/inventory"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/Almacen-api/internal/interfaces/http"
	"github.com/jhoicas/Almacen-api/pkg/config"
)

// ──────────────────────────────────────────────────────────────────────────────
// Pruebas de la superficie HTTP del carrito contra la aplicación completa
// montada sobre el store en memoria.
// ──────────────────────────────────────────────────────────────────────────────

var testStock = config.StockConfig{Central: "Central", Sites: []string{"SedeA", "SedeB"}}

// buildTestApp monta el router completo sobre un store en memoria sembrado
// con Gasa (Central=20) y Suero (Central=50).
func buildTestApp(t *testing.T) (*fiber.App, *memory.Store) {
	t.Helper()
	store := memory.NewStore()

	snap := inventory.NewSnapshot()
	snap.Upsert(&entity.Product{Name: "Gasa"})
	snap.Upsert(&entity.Product{Name: "Suero"})
	require.NoError(t, snap.SetQuantity("Gasa", "Central", 20))
	require.NoError(t, snap.SetQuantity("Suero", "Central", 50))
	require.NoError(t, store.Save(context.Background(), snap))

	replUC := replenishment.New(store, testStock)
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CatalogUC:       catalog.New(store, testStock),
		ImportUC:        importer.NewImportUseCase(store, testStock),
		ReplenishmentUC: replUC,
		CartUC:          cart.New(store, store, cart.NewManager(), testStock),
		LedgerUC:        ledger.New(store, store, testStock),
		ReportsUC:       reports.New(replUC, store),
		Stock:           testStock,
	})
	return app, store
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func openSession(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/cart/", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out dto.CartDTO
	decode(t, resp, &out)
	require.NotEmpty(t, out.SessionID)
	return out.SessionID
}

func TestCartHTTP_FlujoCompleto(t *testing.T) {
	app, store := buildTestApp(t)
	sessionID := openSession(t, app)

	// Agregar un bloque válido.
	resp := doJSON(t, app, http.MethodPost, "/api/cart/"+sessionID+"/lines", dto.AddLinesRequest{
		Destination: "SedeA",
		Lines: []dto.CartLineRequest{
			{Product: "Gasa", Quantity: 20},
			{Product: "Suero", Quantity: 10},
		},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var cartOut dto.CartDTO
	decode(t, resp, &cartOut)
	assert.Len(t, cartOut.Lines, 2)

	snap, _ := store.Load(context.Background())
	assert.Zero(t, snap.Quantity("Gasa", "Central"))
	assert.Equal(t, 20, snap.Quantity("Gasa", "SedeA"))

	// Finalizar: manifiesto producto × destino.
	resp = doJSON(t, app, http.MethodPost, "/api/cart/"+sessionID+"/finalize", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var summary dto.CartSummaryDTO
	decode(t, resp, &summary)
	assert.Equal(t, []string{"SedeA"}, summary.Destinations)
	assert.Equal(t, 30, summary.TotalUnits)

	// La sesión cerrada ya no acepta líneas.
	resp = doJSON(t, app, http.MethodPost, "/api/cart/"+sessionID+"/lines", dto.AddLinesRequest{
		Destination: "SedeA",
		Lines:       []dto.CartLineRequest{{Product: "Gasa", Quantity: 1}},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestCartHTTP_InsuficienteDevuelve409ConDetalle(t *testing.T) {
	app, store := buildTestApp(t)
	sessionID := openSession(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/cart/"+sessionID+"/lines", dto.AddLinesRequest{
		Destination: "SedeA",
		Lines:       []dto.CartLineRequest{{Product: "Gasa", Quantity: 25}},
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var body struct {
		Code     string               `json:"code"`
		Failures []dto.LineFailureDTO `json:"failures"`
	}
	decode(t, resp, &body)
	assert.Equal(t, "INSUFFICIENT_STOCK", body.Code)
	require.Len(t, body.Failures, 1)
	assert.Equal(t, "Gasa", body.Failures[0].Product)
	assert.Equal(t, 25, body.Failures[0].Requested)
	assert.Equal(t, 20, body.Failures[0].Available)

	snap, _ := store.Load(context.Background())
	assert.Equal(t, 20, snap.Quantity("Gasa", "Central"), "el rechazo no muta el libro")
}

func TestCartHTTP_ReversoPorIndice(t *testing.T) {
	app, store := buildTestApp(t)
	sessionID := openSession(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/cart/"+sessionID+"/lines", dto.AddLinesRequest{
		Destination: "SedeA",
		Lines:       []dto.CartLineRequest{{Product: "Gasa", Quantity: 20}},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodDelete, "/api/cart/"+sessionID+"/lines/0", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.CartDTO
	decode(t, resp, &out)
	assert.Empty(t, out.Lines)

	snap, _ := store.Load(context.Background())
	assert.Equal(t, 20, snap.Quantity("Gasa", "Central"), "el reverso restaura la central")

	// Índices no numéricos o fuera de rango.
	resp = doJSON(t, app, http.MethodDelete, "/api/cart/"+sessionID+"/lines/abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodDelete, "/api/cart/"+sessionID+"/lines/5", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestCartHTTP_SesionInexistente(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/cart/no-existe/lines", dto.AddLinesRequest{
		Destination: "SedeA",
		Lines:       []dto.CartLineRequest{{Product: "Gasa", Quantity: 1}},
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestCartHTTP_DestinoInvalido(t *testing.T) {
	app, _ := buildTestApp(t)
	sessionID := openSession(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/cart/"+sessionID+"/lines", dto.AddLinesRequest{
		Destination: "Central",
		Lines:       []dto.CartLineRequest{{Product: "Gasa", Quantity: 1}},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}
