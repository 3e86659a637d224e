package report

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"github.com/DioGolang/GoOrders/internal/domain/entity"
	"github.com/DioGolang/GoOrders/pkg/logger"
	"github.com/DioGolang/GoOrders/pkg/metrics"
)

// StatusReport is the wire payload sent to the external status collector. It
// is never persisted and never read back.
type StatusReport struct {
	Operation string    `json:"operation"`
	Success   bool      `json:"success"`
	Timestamp time.Time `json:"timestamp"`
	Details   *string   `json:"details"`
	OrderID   *int64    `json:"order_id"`
}

type HTTPReporter struct {
	client   *http.Client
	endpoint string
	timeout  time.Duration
	breaker  *gobreaker.CircuitBreaker
	logger   logger.Logger
	metrics  metrics.Metrics
}

func NewHTTPReporter(endpoint string, timeout time.Duration, log logger.Logger, m metrics.Metrics) *HTTPReporter {
	// When the collector keeps failing, stop hammering it for a while. An
	// open breaker is just another logged delivery failure.
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "status-reporter",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	return &HTTPReporter{
		client:   &http.Client{Timeout: timeout},
		endpoint: endpoint,
		timeout:  timeout,
		breaker:  breaker,
		logger:   log,
		metrics:  m,
	}
}

func (r *HTTPReporter) ReportSuccess(operation string, orderID *int64) {
	r.report(StatusReport{
		Operation: operation,
		Success:   true,
		Timestamp: time.Now().UTC(),
		OrderID:   orderID,
	})
}

func (r *HTTPReporter) ReportFailure(operation string, detail string, orderID *int64) {
	r.report(StatusReport{
		Operation: operation,
		Success:   false,
		Timestamp: time.Now().UTC(),
		Details:   &detail,
		OrderID:   orderID,
	})
}

// report returns before any network I/O happens. The goroutine owns its own
// copy of the payload and runs on a fresh context: a client disconnect must
// not retract an in-flight report, and report delivery must never delay the
// primary response.
func (r *HTTPReporter) report(sr StatusReport) {
	deliveryID := uuid.NewString()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()

		fields := []logger.Field{
			logger.String("delivery_id", deliveryID),
			logger.String("operation", sr.Operation),
		}
		if sr.OrderID != nil {
			fields = append(fields, logger.Int64("order_id", *sr.OrderID))
		}

		if err := r.deliver(ctx, sr); err != nil {
			outcome := "failed"
			if errors.Is(err, gobreaker.ErrOpenState) {
				outcome = "suppressed"
			}
			r.metrics.RecordStatusReport(outcome)

			r.logger.Warn(ctx, "status report not delivered",
				append(fields, logger.WithError(&entity.ReportError{Cause: err}))...,
			)
			return
		}

		r.metrics.RecordStatusReport("delivered")
		r.logger.Debug(ctx, "status report delivered", fields...)
	}()
}

func (r *HTTPReporter) deliver(ctx context.Context, sr StatusReport) error {
	_, err := r.breaker.Execute(func() (interface{}, error) {
		body, err := json.Marshal(sr)
		if err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := r.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, fmt.Errorf("status collector answered %d", resp.StatusCode)
		}
		return nil, nil
	})
	return err
}
