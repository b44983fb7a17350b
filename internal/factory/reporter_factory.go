package factory

import (
	"io"

	"github.com/mikey/email-triage/internal/adapters/report"
	"github.com/mikey/email-triage/internal/config"
	"github.com/mikey/email-triage/internal/ports"
	"github.com/mikey/email-triage/internal/utils"
)

// ReporterFactory creates reporters for the toolkit's console output
type ReporterFactory struct {
	cfg  *config.Config
	text *utils.TextProcessor
}

// NewReporterFactory creates a new reporter factory
func NewReporterFactory(cfg *config.Config, text *utils.TextProcessor) *ReporterFactory {
	return &ReporterFactory{
		cfg:  cfg,
		text: text,
	}
}

// CreateTriageReporter creates the reporter for triage run results
func (f *ReporterFactory) CreateTriageReporter(out io.Writer) ports.TriageReporter {
	return report.NewConsole(out, f.text, f.cfg.GetTriage().ReportLimit)
}

// CreateSampleReporter creates a reporter for sampled records. With
// filesOnly set it prints record paths only, for piping.
func (f *ReporterFactory) CreateSampleReporter(out io.Writer, filesOnly bool) ports.SampleReporter {
	if filesOnly {
		return report.NewFilesOnly(out)
	}
	return report.NewConsole(out, f.text, f.cfg.GetTriage().ReportLimit)
}

// CreateSenderReporter creates the reporter for sender rankings
func (f *ReporterFactory) CreateSenderReporter(out io.Writer) ports.SenderReporter {
	return report.NewConsole(out, f.text, f.cfg.GetTriage().ReportLimit)
}
