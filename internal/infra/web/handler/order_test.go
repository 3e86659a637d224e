package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orderuc "github.com/DioGolang/GoOrders/internal/application/usecase/order"
	"github.com/DioGolang/GoOrders/internal/domain/entity"
	"github.com/DioGolang/GoOrders/pkg/logger"
)

type stubCreate struct {
	order *entity.Order
	err   error
}

func (s stubCreate) Execute(context.Context, orderuc.CreateInput) (*entity.Order, error) {
	return s.order, s.err
}

type stubList struct {
	orders []entity.Order
	err    error
}

func (s stubList) Execute(context.Context) ([]entity.Order, error) { return s.orders, s.err }

type stubGet struct {
	order *entity.Order
	err   error
}

func (s stubGet) Execute(context.Context, int64) (*entity.Order, error) { return s.order, s.err }

type stubUpdate struct {
	order *entity.Order
	err   error
}

func (s stubUpdate) Execute(context.Context, int64, orderuc.UpdateInput) (*entity.Order, error) {
	return s.order, s.err
}

type stubDelete struct {
	err error
}

func (s stubDelete) Execute(context.Context, int64) error { return s.err }

func testRouter(h *Order) http.Handler {
	r := chi.NewRouter()
	r.Route("/api/orders", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
	return r
}

func sampleOrder(id int64) *entity.Order {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	return &entity.Order{
		ID:           id,
		CustomerName: "Alice",
		ProductName:  "Widget",
		Quantity:     3,
		UnitPrice:    decimal.RequireFromString("9.99"),
		TotalAmount:  decimal.RequireFromString("29.97"),
		OrderDate:    now,
		Status:       entity.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func newHandler(create orderuc.CreateUseCase, list orderuc.ListUseCase, get orderuc.GetUseCase,
	update orderuc.UpdateUseCase, del orderuc.DeleteUseCase) *Order {
	return NewOrderHandler(create, list, get, update, del, logger.NewNop())
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestOrderHandlerCreate(t *testing.T) {
	t.Run("created order comes back as 201 json", func(t *testing.T) {
		h := newHandler(stubCreate{order: sampleOrder(1)}, nil, nil, nil, nil)
		router := testRouter(h)

		payload := `{"customer_name":"Alice","product_name":"Widget","quantity":3,"unit_price":"9.99"}`
		req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString(payload))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var got entity.Order
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, int64(1), got.ID)
		assert.True(t, decimal.RequireFromString("29.97").Equal(got.TotalAmount))
	})

	t.Run("malformed body is 400", func(t *testing.T) {
		h := newHandler(stubCreate{}, nil, nil, nil, nil)
		router := testRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString("{not json"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeErrorBody(t, rec)
		assert.Equal(t, "Validation error: invalid request body", body.Error)
		assert.Equal(t, http.StatusBadRequest, body.Status)
		assert.False(t, body.Timestamp.IsZero())
	})

	t.Run("validation failure is 400 with the rule message", func(t *testing.T) {
		h := newHandler(stubCreate{err: &entity.ValidationError{Message: "quantity must be at least 1"}}, nil, nil, nil, nil)
		router := testRouter(h)

		payload := `{"customer_name":"Alice","product_name":"Widget","quantity":0,"unit_price":"9.99"}`
		req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString(payload))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeErrorBody(t, rec)
		assert.Equal(t, "Validation error: quantity must be at least 1", body.Error)
	})

	t.Run("storage fault is a sanitized 500", func(t *testing.T) {
		h := newHandler(stubCreate{err: &entity.RepositoryError{Cause: assert.AnError}}, nil, nil, nil, nil)
		router := testRouter(h)

		payload := `{"customer_name":"Alice","product_name":"Widget","quantity":3,"unit_price":"9.99"}`
		req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString(payload))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decodeErrorBody(t, rec)
		assert.Equal(t, "Internal server error", body.Error)
		assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
	})
}

func TestOrderHandlerList(t *testing.T) {
	t.Run("empty store is 200 with an empty array", func(t *testing.T) {
		h := newHandler(nil, stubList{orders: []entity.Order{}}, nil, nil, nil)
		router := testRouter(h)

		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("orders come back as a json array", func(t *testing.T) {
		h := newHandler(nil, stubList{orders: []entity.Order{*sampleOrder(1), *sampleOrder(2)}}, nil, nil, nil)
		router := testRouter(h)

		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var got []entity.Order
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		require.Len(t, got, 2)
		assert.Equal(t, int64(2), got[1].ID)
	})
}

func TestOrderHandlerGet(t *testing.T) {
	t.Run("known id is 200", func(t *testing.T) {
		h := newHandler(nil, nil, stubGet{order: sampleOrder(7)}, nil, nil)
		router := testRouter(h)

		req := httptest.NewRequest(http.MethodGet, "/api/orders/7", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown id is 404 naming the id", func(t *testing.T) {
		h := newHandler(nil, nil, stubGet{err: &entity.NotFoundError{ID: 999}}, nil, nil)
		router := testRouter(h)

		req := httptest.NewRequest(http.MethodGet, "/api/orders/999", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		body := decodeErrorBody(t, rec)
		assert.Equal(t, "Order with id 999 not found", body.Error)
		assert.Equal(t, http.StatusNotFound, body.Status)
	})

	t.Run("non numeric id is 400", func(t *testing.T) {
		h := newHandler(nil, nil, stubGet{}, nil, nil)
		router := testRouter(h)

		req := httptest.NewRequest(http.MethodGet, "/api/orders/abc", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeErrorBody(t, rec)
		assert.Equal(t, "Validation error: id must be an integer", body.Error)
	})
}

func TestOrderHandlerUpdate(t *testing.T) {
	t.Run("updated order is 200", func(t *testing.T) {
		updated := sampleOrder(3)
		updated.Quantity = 5
		updated.TotalAmount = decimal.RequireFromString("49.95")
		h := newHandler(nil, nil, nil, stubUpdate{order: updated}, nil)
		router := testRouter(h)

		req := httptest.NewRequest(http.MethodPut, "/api/orders/3", bytes.NewBufferString(`{"quantity":5}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var got entity.Order
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, 5, got.Quantity)
		assert.True(t, decimal.RequireFromString("49.95").Equal(got.TotalAmount))
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		h := newHandler(nil, nil, nil, stubUpdate{err: &entity.NotFoundError{ID: 3}}, nil)
		router := testRouter(h)

		req := httptest.NewRequest(http.MethodPut, "/api/orders/3", bytes.NewBufferString(`{"quantity":5}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed body is 400", func(t *testing.T) {
		h := newHandler(nil, nil, nil, stubUpdate{}, nil)
		router := testRouter(h)

		req := httptest.NewRequest(http.MethodPut, "/api/orders/3", bytes.NewBufferString("{"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestOrderHandlerDelete(t *testing.T) {
	t.Run("deleted order is 204 with no body", func(t *testing.T) {
		h := newHandler(nil, nil, nil, nil, stubDelete{})
		router := testRouter(h)

		req := httptest.NewRequest(http.MethodDelete, "/api/orders/3", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		h := newHandler(nil, nil, nil, nil, stubDelete{err: &entity.NotFoundError{ID: 42}})
		router := testRouter(h)

		req := httptest.NewRequest(http.MethodDelete, "/api/orders/42", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		body := decodeErrorBody(t, rec)
		assert.Equal(t, "Order with id 42 not found", body.Error)
	})
}
