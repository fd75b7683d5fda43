package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
)

// Report aggregates the liveness information exposed on /health.
type Report struct {
	Status      Status
	Backend     string
	RecordCount int
}

// Service coordinates health checks.
type Service struct {
	db      DBPinger
	records RecordCounter
	backend string
}

// New creates a Service. backend names the active storage driver.
func New(db DBPinger, records RecordCounter, backend string) *Service {
	return &Service{db: db, records: records, backend: backend}
}

// Check pings the storage backend and counts stored records. A failing
// count degrades the report but keeps the count at zero rather than
// failing the endpoint.
func (s *Service) Check(ctx context.Context) Report {
	report := Report{Status: Healthy, Backend: s.backend}

	if err := s.db.Ping(ctx); err != nil {
		report.Status = Degraded
		return report
	}

	count, err := s.records.Count(ctx)
	if err != nil {
		report.Status = Degraded
		return report
	}
	report.RecordCount = count

	return report
}
