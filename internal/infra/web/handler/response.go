package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/DioGolang/GoOrders/internal/domain/entity"
)

// errorBody is the contract error shape: {error, status, timestamp}.
type errorBody struct {
	Error     string    `json:"error"`
	Status    int       `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// writeError maps the closed error set to response codes. Anything outside
// the set, repository faults included, becomes a generic internal failure so
// storage detail never leaks to the caller.
func writeError(w http.ResponseWriter, err error) {
	var (
		validation *entity.ValidationError
		notFound   *entity.NotFoundError
	)

	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.As(err, &validation):
		status = http.StatusBadRequest
		message = "Validation error: " + validation.Message
	case errors.As(err, &notFound):
		status = http.StatusNotFound
		message = fmt.Sprintf("Order with id %d not found", notFound.ID)
	}

	writeJSON(w, status, errorBody{
		Error:     message,
		Status:    status,
		Timestamp: time.Now().UTC(),
	})
}
