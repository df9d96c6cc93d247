package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/vision360/internal/application/dashboard"
	"github.com/tu-usuario/vision360/internal/application/dto"
	"github.com/tu-usuario/vision360/internal/application/ingest"
	"github.com/tu-usuario/vision360/internal/domain/sample"
	"github.com/tu-usuario/vision360/internal/infrastructure/memory"
	"github.com/tu-usuario/vision360/internal/infrastructure/tabular"
	apphttp "github.com/tu-usuario/vision360/internal/interfaces/http"
	"github.com/tu-usuario/vision360/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp construye la aplicación completa sobre datasets sintéticos
// chicos, con el cableado real de casos de uso y almacén en memoria.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()

	params := sample.Params{Seed: 42, Products: 8, Days: 20, Stores: 2, Suppliers: 2}
	data := sample.Generate(params)
	store := memory.NewDatasetStore(data.Inventory, data.Sales, data.Purchases)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		DashboardUC: dashboard.NewUseCase(store, 8),
		IngestUC:    ingest.NewUseCase(tabular.NewReader(), store, params),
		Log:         logger.New(logger.Config{Env: "production", Level: "error"}),
	})
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(http.MethodPost, path, r)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeDashboard(t *testing.T, resp *http.Response) dto.DashboardDTO {
	t.Helper()
	var out dto.DashboardDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboard_CuerpoVacioEsSinFiltros(t *testing.T) {
	app := buildTestApp(t)

	resp := postJSON(t, app, "/api/dashboard", "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeDashboard(t, resp)
	assert.Len(t, out.Rows, 8, "sin filtros se consolida todo el inventario")
	assert.NotEmpty(t, out.Columns)
	assert.NotEmpty(t, out.DatasetVersion)
}

func TestDashboard_ListaVaciaExcluyeTodo(t *testing.T) {
	app := buildTestApp(t)

	resp := postJSON(t, app, "/api/dashboard", `{"products": []}`)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeDashboard(t, resp)
	assert.Empty(t, out.Rows, "deselección total: resultados vacíos, no todos")
	assert.NotEmpty(t, out.Columns, "el esquema viaja igual con cero filas")
}

func TestDashboard_RangoAMediasEs400(t *testing.T) {
	app := buildTestApp(t)

	resp := postJSON(t, app, "/api/dashboard", `{"start_date": "2024-01-01"}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "VALIDATION", body.Code)
}

func TestDashboard_JSONMalformadoEs400(t *testing.T) {
	app := buildTestApp(t)

	resp := postJSON(t, app, "/api/dashboard", "{no es json")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/datasets/:kind y /api/datasets/sample
// ──────────────────────────────────────────────────────────────────────────────

func uploadCSV(t *testing.T, app *fiber.App, kind, csv string) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", kind+".csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte(csv))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/datasets/"+kind, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestUpload_ReemplazaElDataset(t *testing.T) {
	app := buildTestApp(t)

	resp := uploadCSV(t, app, "inventory",
		"product_id,product_name,category,quantity,min_stock,unit_cost\n"+
			"P0001,Solo,Electrónica,5,10,2\n")
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(1), body["rows"])

	dash := postJSON(t, app, "/api/dashboard", "")
	defer dash.Body.Close()
	out := decodeDashboard(t, dash)
	require.Len(t, out.Rows, 1, "el panel refleja el dataset recién cargado")
	assert.Equal(t, "Solo", out.Rows[0].ProductName)
}

func TestUpload_DatasetDesconocidoEs400(t *testing.T) {
	app := buildTestApp(t)

	resp := uploadCSV(t, app, "clientes", "a,b\n1,2\n")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "UNKNOWN_DATASET", body.Code)
}

func TestUpload_SinArchivoEs400(t *testing.T) {
	app := buildTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/datasets/sales", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "MISSING_FILE", body.Code)
}

func TestLoadSample_RegeneraConSemilla(t *testing.T) {
	app := buildTestApp(t)

	resp := postJSON(t, app, "/api/datasets/sample", `{"seed": 7}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	dash := postJSON(t, app, "/api/dashboard", "")
	defer dash.Body.Close()
	out := decodeDashboard(t, dash)
	assert.Len(t, out.Rows, 8, "la regeneración conserva los parámetros configurados")
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/export/*
// ──────────────────────────────────────────────────────────────────────────────

func TestExportConsolidated_DevuelveCSV(t *testing.T) {
	app := buildTestApp(t)

	resp := postJSON(t, app, "/api/export/consolidated", "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "consolidado.csv")

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	assert.Len(t, lines, 9, "encabezado más una línea por producto")
	assert.True(t, strings.HasPrefix(lines[0], "product_id,product_name"))
}

func TestExportCritical_FiltrosInvalidosEs400(t *testing.T) {
	app := buildTestApp(t)

	resp := postJSON(t, app, "/api/export/critical", `{"end_date": "2024-06-30"}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
