package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	orderuc "github.com/DioGolang/GoOrders/internal/application/usecase/order"
	"github.com/DioGolang/GoOrders/internal/domain/entity"
	"github.com/DioGolang/GoOrders/pkg/logger"
)

type Order struct {
	CreateUseCase orderuc.CreateUseCase
	ListUseCase   orderuc.ListUseCase
	GetUseCase    orderuc.GetUseCase
	UpdateUseCase orderuc.UpdateUseCase
	DeleteUseCase orderuc.DeleteUseCase
	Logger        logger.Logger
}

func NewOrderHandler(
	create orderuc.CreateUseCase,
	list orderuc.ListUseCase,
	get orderuc.GetUseCase,
	update orderuc.UpdateUseCase,
	del orderuc.DeleteUseCase,
	log logger.Logger,
) *Order {
	return &Order{
		CreateUseCase: create,
		ListUseCase:   list,
		GetUseCase:    get,
		UpdateUseCase: update,
		DeleteUseCase: del,
		Logger:        log,
	}
}

func (h *Order) Create(w http.ResponseWriter, r *http.Request) {
	var input orderuc.CreateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, &entity.ValidationError{Message: "invalid request body"})
		return
	}

	order, err := h.CreateUseCase.Execute(r.Context(), input)
	if err != nil {
		h.logFailure(r, "create order failed", err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

func (h *Order) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.ListUseCase.Execute(r.Context())
	if err != nil {
		h.logFailure(r, "list orders failed", err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

func (h *Order) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	order, err := h.GetUseCase.Execute(r.Context(), id)
	if err != nil {
		h.logFailure(r, "get order failed", err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

func (h *Order) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	var input orderuc.UpdateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, &entity.ValidationError{Message: "invalid request body"})
		return
	}

	order, err := h.UpdateUseCase.Execute(r.Context(), id, input)
	if err != nil {
		h.logFailure(r, "update order failed", err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

func (h *Order) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	if err := h.DeleteUseCase.Execute(r.Context(), id); err != nil {
		h.logFailure(r, "delete order failed", err)
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Order) orderID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, &entity.ValidationError{Message: "id must be an integer"})
		return 0, false
	}
	return id, true
}

// logFailure records the underlying cause server-side. The response body only
// ever carries the sanitized mapping from writeError.
func (h *Order) logFailure(r *http.Request, msg string, err error) {
	var repoErr *entity.RepositoryError
	if errors.As(err, &repoErr) {
		h.Logger.Error(r.Context(), msg, logger.WithError(err))
		return
	}
	h.Logger.Debug(r.Context(), msg, logger.WithError(err))
}
