package usecase

import (
	"context"

	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/infra"
)

type StepStatus string

const (
	StepPending StepStatus = "pending"
	StepSuccess StepStatus = "success"
	StepError   StepStatus = "error"
)

type StepResult struct {
	Status  StepStatus
	Message string
}

type DiagnosticReport struct {
	Backend  string
	DemoMode bool
	Secrets  StepResult
	Network  StepResult
	Query    StepResult
}

// ConnectionProbe is implemented by the remote store's infrastructure.
type ConnectionProbe interface {
	Backend() string
	Configured() bool
	Ping(ctx context.Context) error
	ProbeTable(ctx context.Context) error
}

type DiagnosticsUseCase interface {
	Run(ctx context.Context) DiagnosticReport
}

type diagnosticsUseCaseImpl struct {
	probe ConnectionProbe
}

func NewDiagnosticsUseCase(probe ConnectionProbe) DiagnosticsUseCase {
	return &diagnosticsUseCaseImpl{probe: probe}
}

// Run checks configuration, then connectivity, then table access.
// A failed step leaves the later ones pending.
func (d *diagnosticsUseCaseImpl) Run(ctx context.Context) DiagnosticReport {
	report := DiagnosticReport{
		Backend: d.probe.Backend(),
		Secrets: StepResult{Status: StepError, Message: "Checking database settings..."},
		Network: StepResult{Status: StepPending, Message: "Waiting for settings check..."},
		Query:   StepResult{Status: StepPending, Message: "Waiting for network check..."},
	}

	if !d.probe.Configured() {
		report.DemoMode = report.Backend != "postgres"
		report.Secrets.Message = "Database host or name not found. Set DB_HOST and DB_NAME; until then reservations are kept in the local store (demo mode)."
		return report
	}
	report.Secrets = StepResult{Status: StepSuccess, Message: "Database settings found."}

	if err := d.probe.Ping(ctx); err != nil {
		report.Network = StepResult{Status: StepError, Message: "Failed to reach the database. It may be stopped, or the host and port may be wrong."}
		report.Query.Message = "Could not be tested due to network failure."
		return report
	}
	report.Network = StepResult{Status: StepSuccess, Message: "Successfully connected to the database."}

	if err := d.probe.ProbeTable(ctx); err != nil {
		report.Query.Status = StepError
		switch {
		case infra.IsKind(err, infra.KindUndefinedTable):
			report.Query.Message = `The "reservations" table was not found. Run migrations/001_initial_schema.sql.`
		case infra.IsKind(err, infra.KindPermissionDenied):
			report.Query.Message = `The database user is not allowed to read the "reservations" table.`
		default:
			report.Query.Message = "The database returned an error: " + err.Error()
		}
		return report
	}
	report.Query = StepResult{Status: StepSuccess, Message: `Successfully accessed the "reservations" table.`}
	return report
}
