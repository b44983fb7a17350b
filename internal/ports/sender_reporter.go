package ports

import (
	"github.com/mikey/email-triage/internal/core"
)

// SenderReporter defines the interface for presenting sender rankings
type SenderReporter interface {
	// ReportSenders presents senders ranked by record count
	ReportSenders(senders []core.SenderCount) error
}
