package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Kardex-api/internal/application/analytics"
	"github.com/jhoicas/Kardex-api/internal/application/ledger"
	"github.com/jhoicas/Kardex-api/internal/application/usecase"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/infrastructure/jsonstore"
	httpRouter "github.com/jhoicas/Kardex-api/internal/interfaces/http"
)

// newTestApp monta la API completa sobre el store JSON en un directorio temporal,
// con catálogo mínimo P1/L1/L2 sembrado.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	store, err := jsonstore.NewStore(t.TempDir())
	require.NoError(t, err)

	productRepo := jsonstore.NewProductRepository(store)
	locationRepo := jsonstore.NewLocationRepository(store)
	require.NoError(t, productRepo.Create(&entity.Product{ID: "P1", Name: "Tornillos", UOM: "BOX"}))
	require.NoError(t, locationRepo.Create(&entity.Location{ID: "L1", Name: "Pasillo A"}))
	require.NoError(t, locationRepo.Create(&entity.Location{ID: "L2", Name: "Pasillo B"}))

	movementRepo := jsonstore.NewMovementRepository(store)
	ledgerRepo := jsonstore.NewLedgerRepository(store)
	ledgerUC := ledger.NewLedgerUseCase(jsonstore.NewTxRunner(store), movementRepo, ledgerRepo, productRepo, locationRepo)

	app := fiber.New()
	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   usecase.NewProductUseCase(productRepo),
		LocationUC:  usecase.NewLocationUseCase(locationRepo),
		LedgerUC:    ledgerUC,
		DashboardUC: analytics.NewDashboardUseCase(movementRepo, productRepo, locationRepo),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	}
	return resp.StatusCode, out
}

func TestPostReceipt_Creado(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, "POST", "/api/ledger/receipts", map[string]any{
		"product_id": "P1", "qty": "10", "to_location_id": "L1", "ref": "GR-77",
	})
	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "M001", body["id"])
	assert.Equal(t, "RECEIPT", body["type"])
	assert.Equal(t, "GR-77", body["ref"])
}

func TestPostReceipt_Validacion(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, "POST", "/api/ledger/receipts", map[string]any{
		"product_id": "P1", "qty": "0", "to_location_id": "L1",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", body["code"])
}

func TestPostReceipt_ProductoInexistente(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, "POST", "/api/ledger/receipts", map[string]any{
		"product_id": "NOPE", "qty": "1", "to_location_id": "L1",
	})
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

// Un pick que excede el disponible responde 409 con el disponible en el mensaje.
func TestPostPick_StockInsuficiente(t *testing.T) {
	app := newTestApp(t)

	status, _ := doJSON(t, app, "POST", "/api/ledger/receipts", map[string]any{
		"product_id": "P1", "qty": "5", "to_location_id": "L1",
	})
	require.Equal(t, fiber.StatusCreated, status)

	status, body := doJSON(t, app, "POST", "/api/ledger/picks", map[string]any{
		"product_id": "P1", "qty": "6", "from_location_id": "L1",
	})
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "INSUFFICIENT_STOCK", body["code"])
	assert.Contains(t, body["message"], "disponible 5")

	// Sin efectos: el historial sigue con un solo movimiento.
	status, list := doJSON(t, app, "GET", "/api/ledger/movements", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.EqualValues(t, 1, list["total"])
}

func TestGetAvailability(t *testing.T) {
	app := newTestApp(t)

	status, _ := doJSON(t, app, "POST", "/api/ledger/receipts", map[string]any{
		"product_id": "P1", "qty": "10", "to_location_id": "L1",
	})
	require.Equal(t, fiber.StatusCreated, status)
	status, _ = doJSON(t, app, "POST", "/api/ledger/picks", map[string]any{
		"product_id": "P1", "qty": "4", "from_location_id": "L1",
	})
	require.Equal(t, fiber.StatusCreated, status)

	status, body := doJSON(t, app, "GET", "/api/ledger/availability?product_id=P1&location_id=L1", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "6", body["available"])

	// Parámetros obligatorios.
	status, body = doJSON(t, app, "GET", "/api/ledger/availability?product_id=P1", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", body["code"])
}

func TestPostTransfer_YStock(t *testing.T) {
	app := newTestApp(t)

	status, _ := doJSON(t, app, "POST", "/api/ledger/receipts", map[string]any{
		"product_id": "P1", "qty": "10", "to_location_id": "L1",
	})
	require.Equal(t, fiber.StatusCreated, status)

	status, body := doJSON(t, app, "POST", "/api/ledger/transfers", map[string]any{
		"product_id": "P1", "qty": "4", "from_location_id": "L1", "to_location_id": "L2",
	})
	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "TRANSFER", body["type"])

	status, stock := doJSON(t, app, "GET", "/api/ledger/stock?product_id=P1", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.EqualValues(t, 2, stock["total"], "saldo repartido entre L1 y L2")
}

func TestPostRebuild(t *testing.T) {
	app := newTestApp(t)

	status, _ := doJSON(t, app, "POST", "/api/ledger/receipts", map[string]any{
		"product_id": "P1", "qty": "3", "to_location_id": "L1",
	})
	require.Equal(t, fiber.StatusCreated, status)

	status, body := doJSON(t, app, "POST", "/api/ledger/rebuild", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.EqualValues(t, 1, body["rows"])
}

func TestCatalogos_CRUD(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, "POST", "/api/products/", map[string]any{
		"name": "Cinta de embalaje",
	})
	assert.Equal(t, fiber.StatusCreated, status)
	assert.NotEmpty(t, body["id"], "sin ID en el request se asigna UUID")
	assert.Equal(t, "EA", body["uom"], "UOM por defecto")

	status, body = doJSON(t, app, "POST", "/api/locations/", map[string]any{
		"id": "L9", "name": "Zona de despacho",
	})
	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "L9", body["id"])

	// Duplicado.
	status, body = doJSON(t, app, "POST", "/api/locations/", map[string]any{
		"id": "L9", "name": "Otra",
	})
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "DUPLICATE", body["code"])

	status, body = doJSON(t, app, "GET", "/api/products/P1", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Tornillos", body["name"])

	status, _ = doJSON(t, app, "GET", fmt.Sprintf("/api/products/%s", "NOPE"), nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestGetDashboard(t *testing.T) {
	app := newTestApp(t)

	status, _ := doJSON(t, app, "POST", "/api/ledger/receipts", map[string]any{
		"product_id": "P1", "qty": "5", "to_location_id": "L1",
	})
	require.Equal(t, fiber.StatusCreated, status)

	status, body := doJSON(t, app, "GET", "/api/dashboard", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "5", body["receipts_today"])
	assert.EqualValues(t, 1, body["total_products"])
	assert.NotEmpty(t, body["date_label"])
}
