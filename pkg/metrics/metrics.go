package metrics

import "time"

type Metrics interface {
	// Business
	RecordOrderMutation(kind string) // created, updated, deleted
	RecordUseCaseExecution(useCaseName string, success bool, duration time.Duration)

	// Infrastructure
	ObserveHTTPRequestDuration(method, path, statusCode string, duration float64)

	// Status reporting
	RecordStatusReport(outcome string) // delivered, failed, suppressed
}
