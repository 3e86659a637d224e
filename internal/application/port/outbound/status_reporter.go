package outbound

// StatusReporter delivers a best-effort report of one operation's outcome to
// an external collaborator. Both calls return before any network I/O begins;
// delivery happens on its own goroutine, failures are logged and never
// surfaced to the caller, and nothing is retried.
type StatusReporter interface {
	ReportSuccess(operation string, orderID *int64)
	ReportFailure(operation string, detail string, orderID *int64)
}
