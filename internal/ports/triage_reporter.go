package ports

import (
	"github.com/mikey/email-triage/internal/core"
)

// TriageReporter defines the interface for presenting triage run results
type TriageReporter interface {
	// ReportTriage presents the outcome counts and the unresolved
	// sender domains from a triage run
	ReportTriage(report *core.TriageReport) error
}
