package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/app"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/config"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/dtos"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/middleware"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/models"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/routes"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/services"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/utils"
)

type testEnv struct {
	app    *app.App
	router *mux.Router
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	cfg := &config.Config{StoreDriver: config.StoreDriverMemory, OrganizationName: utils.OrganizationName}
	a := app.NewMemoryApp(cfg)
	require.NoError(t, app.SeedHouses(context.Background(), a.HouseRepo))

	hk := services.NewHousekeepingService(a.HouseRepo, a.NoteRepo)
	rs := services.NewReportService(a.HouseRepo)
	delivery := services.NewReportDeliveryService(cfg, rs, nil, nil)

	r := NewRouter(Controllers{
		Health:  NewHealthController(a),
		Houses:  NewHousesController(hk),
		Notes:   NewNotesController(hk),
		Reports: NewReportsController(rs, delivery),
	})

	return &testEnv{app: a, router: r}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, path, &buf)
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func (e *testEnv) houseID(t *testing.T, name string) int64 {
	t.Helper()
	houses, err := e.app.HouseRepo.ListWithNotes(context.Background())
	require.NoError(t, err)
	for _, h := range houses {
		if h.Name == name {
			return h.ID
		}
	}
	t.Fatalf("house %q not seeded", name)
	return 0
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) utils.ErrorResponse {
	t.Helper()
	var resp utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func housePath(tmpl string, id int64) string {
	return strings.Replace(tmpl, "{id}", strconv.FormatInt(id, 10), 1)
}

func TestHealthCheck(t *testing.T) {
	env := newTestEnv(t)
	rr := env.do(t, http.MethodGet, routes.Health, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"OK"}`, rr.Body.String())
}

func TestListHouses_Filters(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodGet, routes.HousesBase, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var all []dtos.HouseResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &all))
	assert.Len(t, all, 45)

	rr = env.do(t, http.MethodGet, routes.HousesBase+"?type=outdoor&status=clean", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var outdoor []dtos.HouseResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &outdoor))
	assert.Len(t, outdoor, 11)

	rr = env.do(t, http.MethodGet, routes.HousesBase+"?status=sparkling", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, utils.ErrCodeValidation, decodeError(t, rr).Code)
}

func TestGetHouse_NotFoundAndInvalidID(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodGet, "/api/v1/houses/9999", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, utils.ErrCodeNotFound, decodeError(t, rr).Code)

	rr = env.do(t, http.MethodGet, "/api/v1/houses/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpdateStatus(t *testing.T) {
	env := newTestEnv(t)
	id := env.houseID(t, "Casa 3")
	path := housePath(routes.HouseStatus, id)

	rr := env.do(t, http.MethodPatch, path, map[string]string{"status": "occupied", "check_state": "Check-in"})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, routes.HousesBase, rr.Header().Get(routes.InvalidateHeader))

	var h dtos.HouseResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &h))
	assert.Equal(t, models.HouseStatusOccupied, h.Status)
	assert.Equal(t, models.CheckStateCheckIn, h.CheckState)

	// only check_state; status must be kept
	rr = env.do(t, http.MethodPatch, path, map[string]string{"check_state": "Nada"})
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &h))
	assert.Equal(t, models.HouseStatusOccupied, h.Status)
	assert.Equal(t, models.CheckStateNone, h.CheckState)
}

func TestUpdateStatus_Rejections(t *testing.T) {
	env := newTestEnv(t)
	id := env.houseID(t, "Casa 3")
	path := housePath(routes.HouseStatus, id)

	rr := env.do(t, http.MethodPatch, path, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Empty(t, rr.Header().Get(routes.InvalidateHeader))

	rr = env.do(t, http.MethodPatch, path, map[string]string{"status": "sparkling"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	details, ok := decodeError(t, rr).Details.([]any)
	require.True(t, ok)
	require.Len(t, details, 1)
	assert.Equal(t, "status", details[0].(map[string]any)["field"])

	rr = env.do(t, http.MethodPatch, path, "{not json")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, utils.ErrCodeInvalidPayload, decodeError(t, rr).Code)

	rr = env.do(t, http.MethodPatch, "/api/v1/houses/9999/status", map[string]string{"status": "dirty"})
	assert.Equal(t, http.StatusNotFound, rr.Code)

	h, err := env.app.HouseRepo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, models.HouseStatusClean, h.Status)
}

func TestNotesLifecycle(t *testing.T) {
	env := newTestEnv(t)
	id := env.houseID(t, "Casa 2 EXT")
	path := housePath(routes.HouseNotes, id)

	rr := env.do(t, http.MethodPost, path, map[string]string{"category": "critical", "area": "gasfiteria", "content": "Fuga en el baño"})
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, routes.HousesBase, rr.Header().Get(routes.InvalidateHeader))
	var created models.Note
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, models.DefaultNoteAuthor, created.CreatedBy)
	assert.Equal(t, models.NoteAreaPlumbing, created.Area)

	rr = env.do(t, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var notes []models.Note
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &notes))
	require.Len(t, notes, 1)

	rr = env.do(t, http.MethodGet, housePath(routes.HouseByID, id), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var h dtos.HouseResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &h))
	require.Len(t, h.Badges, 1)
	assert.Equal(t, models.NoteCategoryCritical, h.Badges[0].Category)

	rr = env.do(t, http.MethodDelete, housePath(routes.NoteByID, created.ID), nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, routes.HousesBase, rr.Header().Get(routes.InvalidateHeader))

	rr = env.do(t, http.MethodDelete, housePath(routes.NoteByID, created.ID), nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAddNote_Rejections(t *testing.T) {
	env := newTestEnv(t)
	path := housePath(routes.HouseNotes, env.houseID(t, "Casa 1"))

	cases := []struct {
		name string
		body any
	}{
		{"whitespace content", map[string]string{"category": "minor", "content": "   "}},
		{"bad category", map[string]string{"category": "urgent", "content": "x"}},
		{"bad area", map[string]string{"category": "minor", "area": "jardin", "content": "x"}},
		{"missing content", map[string]string{"category": "minor"}},
		{"malformed", "{"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := env.do(t, http.MethodPost, path, tc.body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}

	rr := env.do(t, http.MethodPost, "/api/v1/houses/9999/notes", map[string]string{"category": "minor", "content": "x"})
	assert.Equal(t, http.StatusNotFound, rr.Code)

	count, err := env.app.NoteRepo.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestBulkDeleteNotes(t *testing.T) {
	env := newTestEnv(t)
	path := housePath(routes.HouseNotes, env.houseID(t, "Casa 7"))

	var ids []int64
	for i := 0; i < 3; i++ {
		rr := env.do(t, http.MethodPost, path, map[string]string{"category": "minor", "content": "Cambiar toallas"})
		require.Equal(t, http.StatusCreated, rr.Code)
		var n models.Note
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &n))
		ids = append(ids, n.ID)
	}

	rr := env.do(t, http.MethodPost, routes.NotesBulkDelete, map[string][]int64{"ids": {ids[0], ids[1], 999}})
	require.Equal(t, http.StatusOK, rr.Code)
	var resp dtos.BulkDeleteNotesResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, []int64{ids[0], ids[1]}, resp.Deleted)
	assert.Equal(t, []int64{999}, resp.NotFound)

	count, err := env.app.NoteRepo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	rr = env.do(t, http.MethodPost, routes.NotesBulkDelete, map[string][]int64{"ids": {}})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = env.do(t, http.MethodPost, routes.NotesBulkDelete, map[string][]int64{"ids": {ids[2], ids[2]}})
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, []int64{ids[2]}, resp.Deleted)
	assert.Empty(t, resp.NotFound)
}

func TestValidationDetailsUseClientFieldNames(t *testing.T) {
	env := newTestEnv(t)

	cases := []struct {
		name   string
		method string
		path   string
		body   any
		field  string
	}{
		{"body key", http.MethodPost, routes.NotesBulkDelete, map[string][]int64{"ids": {}}, "ids"},
		{"snake body key", http.MethodPatch, housePath(routes.HouseStatus, env.houseID(t, "Casa 1")), map[string]string{"check_state": "Late"}, "check_state"},
		{"query param", http.MethodGet, routes.ReportsNotes + "?area=jardin", nil, "area"},
		{"filter query param", http.MethodGet, routes.HousesBase + "?notes=loud", nil, "notes"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := env.do(t, tc.method, tc.path, tc.body)
			require.Equal(t, http.StatusBadRequest, rr.Code)
			details, ok := decodeError(t, rr).Details.([]any)
			require.True(t, ok)
			require.NotEmpty(t, details)
			assert.Equal(t, tc.field, details[0].(map[string]any)["field"])
		})
	}
}

func TestRouter_MountsMetricsAndMiddleware(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodGet, routes.HousesBase, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get(middleware.RequestIDHeader))

	rr = env.do(t, http.MethodGet, routes.Metrics, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "housekeeping_http_request_duration_seconds")
}

func TestReports(t *testing.T) {
	env := newTestEnv(t)
	id := env.houseID(t, "Casa 4")
	rr := env.do(t, http.MethodPatch, housePath(routes.HouseStatus, id), map[string]string{"status": "occupied"})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = env.do(t, http.MethodGet, routes.ReportsHouses+"?filter=occupied", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var houses dtos.HouseReportResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &houses))
	require.Len(t, houses.Rows, 1)
	assert.Equal(t, "Casa 4", houses.Rows[0].Casa)

	rr = env.do(t, http.MethodGet, routes.ReportsHouses+"?filter=occupied&format=text", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, rr.Body.String(), "Casa 4")

	rr = env.do(t, http.MethodGet, routes.ReportsHouses+"?filter=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = env.do(t, http.MethodGet, routes.ReportsOccupancy, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Casa 4")
	assert.Contains(t, rr.Body.String(), "Casas Interiores (1)\nOcupadas: Casa 4")

	rr = env.do(t, http.MethodGet, routes.ReportsOccupancyPrint, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")

	rr = env.do(t, http.MethodGet, routes.ReportsSummary, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var summary dtos.BoardSummaryResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &summary))
	assert.Equal(t, 34, summary.IndoorCount)
	assert.Equal(t, 3, summary.OutdoorPremium)
	assert.Equal(t, []string{"Casa 4"}, summary.Occupancy.IndoorOccupied)
}

func TestNotesReport(t *testing.T) {
	env := newTestEnv(t)
	id := env.houseID(t, "Casa 9")
	path := housePath(routes.HouseNotes, id)
	require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, path, map[string]string{"category": "minor", "area": "electricidad", "content": "Ampolleta"}).Code)
	require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, path, map[string]string{"category": "other", "content": "Revisar"}).Code)

	rr := env.do(t, http.MethodGet, routes.ReportsNotes+"?area=electricidad", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var resp dtos.NotesReportResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, "Ampolleta", resp.Rows[0].Contenido)

	rr = env.do(t, http.MethodGet, routes.ReportsNotes+"?area=all&house_id="+strconv.FormatInt(id, 10), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp.Rows, 2)

	rr = env.do(t, http.MethodGet, routes.ReportsNotes+"?house_id=x", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSendOccupancy_NoSinks(t *testing.T) {
	env := newTestEnv(t)
	rr := env.do(t, http.MethodPost, routes.ReportsOccupancySend, nil)
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Equal(t, utils.ErrCodeExternalServiceFailure, decodeError(t, rr).Code)
}
