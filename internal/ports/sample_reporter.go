package ports

import (
	"github.com/mikey/email-triage/internal/core"
)

// SampleReporter defines the interface for presenting sampled records
type SampleReporter interface {
	// ReportSample presents the records selected by a sampling run
	ReportSample(result *core.SampleResult) error
}
