package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/orderdesk/pkg/auth"
	"github.com/ghuser/orderdesk/pkg/errhttp"
	"github.com/ghuser/orderdesk/pkg/logger"
	appsvcs "github.com/ghuser/orderdesk/services/item/application/services"
	"github.com/ghuser/orderdesk/services/item/infrastructure/persistence/memory"
)

func newTestRouter(t *testing.T, repo *memory.ItemRepository) http.Handler {
	t.Helper()
	svcs := &appsvcs.Services{Item: appsvcs.NewItemService(repo, nil, nil, logger.Discard())}
	items := NewItemHandler(svcs, errhttp.NewResponder(logger.Discard(), false))

	r := chi.NewRouter()
	r.Get("/api/items", items.List)
	r.Post("/api/items", items.Create)
	r.Get("/api/items/{id}", items.Get)
	r.Put("/api/items/{id}", items.Update)
	r.Delete("/api/items/{id}", items.Delete)
	return r
}

func do(t *testing.T, h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestCreateItem(t *testing.T) {
	h := newTestRouter(t, memory.NewItemRepository())

	req := httptest.NewRequest(http.MethodPost, "/api/items", strings.NewReader(`{"name":"Widget","price":"10"}`))
	req = req.WithContext(auth.WithActor(req.Context(), auth.Actor{PersonID: 1, Email: "ana@x.com"}))
	rr := do(t, h, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "/api/items/1", rr.Header().Get("Location"))

	var body ItemResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "10.00", body.Price)
	assert.Equal(t, "ana@x.com", body.CreatedBy)
	assert.Nil(t, body.UpdatedAt)
}

func TestCreateItem_NumericPriceAccepted(t *testing.T) {
	h := newTestRouter(t, memory.NewItemRepository())

	rr := do(t, h, httptest.NewRequest(http.MethodPost, "/api/items", strings.NewReader(`{"name":"Widget","price":2.5}`)))

	require.Equal(t, http.StatusCreated, rr.Code)
	var body ItemResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "2.50", body.Price)
	assert.Equal(t, "anonymous", body.CreatedBy)
}

func TestCreateItem_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing price", `{"name":"Widget"}`},
		{"negative price", `{"name":"Widget","price":"-1"}`},
		{"sub-cent price", `{"name":"Widget","price":"0.001"}`},
		{"missing name", `{"price":"1"}`},
		{"malformed json", `{"name":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestRouter(t, memory.NewItemRepository())
			rr := do(t, h, httptest.NewRequest(http.MethodPost, "/api/items", strings.NewReader(tt.body)))
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestUpdateItem_StampsActor(t *testing.T) {
	h := newTestRouter(t, memory.NewItemRepository())
	do(t, h, httptest.NewRequest(http.MethodPost, "/api/items", strings.NewReader(`{"name":"Widget","price":"10"}`)))

	req := httptest.NewRequest(http.MethodPut, "/api/items/1", strings.NewReader(`{"name":"Widget","price":"11.00"}`))
	req = req.WithContext(auth.WithActor(req.Context(), auth.Actor{PersonID: 2, Email: "bo@x.com"}))
	require.Equal(t, http.StatusNoContent, do(t, h, req).Code)

	var body ItemResponse
	rr := do(t, h, httptest.NewRequest(http.MethodGet, "/api/items/1", nil))
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "11.00", body.Price)
	require.NotNil(t, body.UpdatedBy)
	assert.Equal(t, "bo@x.com", *body.UpdatedBy)
}

func TestDeleteItem_Referenced(t *testing.T) {
	repo := memory.NewItemRepository()
	repo.InUse = func(int64) bool { return true }
	h := newTestRouter(t, repo)
	do(t, h, httptest.NewRequest(http.MethodPost, "/api/items", strings.NewReader(`{"name":"Widget","price":"10"}`)))

	rr := do(t, h, httptest.NewRequest(http.MethodDelete, "/api/items/1", nil))
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestGetItem_NotFound(t *testing.T) {
	h := newTestRouter(t, memory.NewItemRepository())
	assert.Equal(t, http.StatusNotFound, do(t, h, httptest.NewRequest(http.MethodGet, "/api/items/42", nil)).Code)
}
