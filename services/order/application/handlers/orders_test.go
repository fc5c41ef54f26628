package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/orderdesk/pkg/errhttp"
	"github.com/ghuser/orderdesk/pkg/httpx"
	"github.com/ghuser/orderdesk/pkg/logger"
	appsvcs "github.com/ghuser/orderdesk/services/order/application/services"
	"github.com/ghuser/orderdesk/services/order/infrastructure/persistence/memory"
)

type stubRefs struct{}

func (stubRefs) PersonExists(_ context.Context, id int64) (bool, error) { return id == 1, nil }

func (stubRefs) ItemPrice(_ context.Context, id int64) (decimal.Decimal, bool, error) {
	switch id {
	case 1:
		return decimal.RequireFromString("10.00"), true, nil
	case 2:
		return decimal.RequireFromString("0.99"), true, nil
	}
	return decimal.Zero, false, nil
}

func newTestRouter(t *testing.T) (http.Handler, *memory.OrderRepository) {
	t.Helper()
	repo := memory.NewOrderRepository()
	svcs := &appsvcs.Services{Order: appsvcs.NewOrderService(repo, stubRefs{})}
	orders := NewOrderHandler(svcs, errhttp.NewResponder(logger.Discard(), false))

	r := chi.NewRouter()
	r.Get("/api/orders", orders.List)
	r.Post("/api/orders", orders.Create)
	r.Get("/api/orders/{id}", orders.Get)
	r.Put("/api/orders/{id}", orders.Update)
	r.Delete("/api/orders/{id}", orders.Delete)
	r.Get("/api/persons/{id}/orders", orders.ListByPerson)
	return r, repo
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestCreateOrder(t *testing.T) {
	h, _ := newTestRouter(t)

	rr := do(t, h, http.MethodPost, "/api/orders", `{"person_id":1,"lines":[{"item_id":1,"quantity":2}]}`)

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.Equal(t, "/api/orders/1", rr.Header().Get("Location"))

	var body OrderResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, int64(1), body.OrderNumber)
	assert.Equal(t, "20.00", body.Total)
	require.Len(t, body.Details, 1)
	assert.Equal(t, "10.00", body.Details[0].Price)
	assert.Equal(t, "20.00", body.Details[0].Total)
}

func TestCreateOrder_MissingItemIsBadRequest(t *testing.T) {
	h, repo := newTestRouter(t)

	rr := do(t, h, http.MethodPost, "/api/orders", `{"person_id":1,"lines":[{"item_id":999,"quantity":1}]}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "item 999")
	assert.Zero(t, repo.Creates)
}

func TestCreateOrder_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{"no lines", `{"person_id":1,"lines":[]}`, "lines"},
		{"zero quantity", `{"person_id":1,"lines":[{"item_id":1,"quantity":0}]}`, "lines[0].quantity"},
		{"missing person", `{"lines":[{"item_id":1,"quantity":1}]}`, "person_id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestRouter(t)

			rr := do(t, h, http.MethodPost, "/api/orders", tt.body)

			require.Equal(t, http.StatusBadRequest, rr.Code)
			var body httpx.ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Contains(t, body.Fields, tt.wantField)
		})
	}
}

func TestUpdateOrder_ReplacesLines(t *testing.T) {
	h, _ := newTestRouter(t)
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/api/orders",
		`{"person_id":1,"lines":[{"item_id":1,"quantity":1},{"item_id":2,"quantity":1}]}`).Code)

	rr := do(t, h, http.MethodPut, "/api/orders/1", `{"person_id":1,"lines":[{"item_id":2,"quantity":3}]}`)
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = do(t, h, http.MethodGet, "/api/orders/1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var body OrderResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Len(t, body.Details, 1)
	assert.Equal(t, "2.97", body.Total)
	assert.NotNil(t, body.UpdatedAt)
}

func TestOrderNotFound(t *testing.T) {
	h, _ := newTestRouter(t)

	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/api/orders/5", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodDelete, "/api/orders/5", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodPut, "/api/orders/5",
		`{"person_id":1,"lines":[{"item_id":1,"quantity":1}]}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/api/orders/abc", "").Code)
}

func TestDeleteOrder(t *testing.T) {
	h, _ := newTestRouter(t)
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/api/orders",
		`{"person_id":1,"lines":[{"item_id":1,"quantity":1}]}`).Code)

	assert.Equal(t, http.StatusNoContent, do(t, h, http.MethodDelete, "/api/orders/1", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/api/orders/1", "").Code)
}

func TestListPersonOrders(t *testing.T) {
	h, _ := newTestRouter(t)
	for range 3 {
		require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/api/orders",
			`{"person_id":1,"lines":[{"item_id":1,"quantity":1}]}`).Code)
	}

	rr := do(t, h, http.MethodGet, "/api/persons/1/orders?limit=2", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var page httpx.Page[OrderResponse]
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &page))
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 2, page.Limit)
	require.Len(t, page.Data, 2)
	assert.Equal(t, int64(1), page.Data[0].OrderNumber)

	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/api/persons/9/orders", "").Code)
}
