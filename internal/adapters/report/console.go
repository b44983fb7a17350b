package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/mikey/email-triage/internal/core"
	"github.com/mikey/email-triage/internal/utils"
)

// Console writes human-readable reports to a writer, normally stdout
type Console struct {
	out         io.Writer
	text        *utils.TextProcessor
	domainLimit int
}

// NewConsole creates a new console reporter. domainLimit caps how many
// unresolved sender domains a triage report lists.
func NewConsole(out io.Writer, text *utils.TextProcessor, domainLimit int) *Console {
	return &Console{
		out:         out,
		text:        text,
		domainLimit: domainLimit,
	}
}

// ReportTriage prints the outcome counts followed by the unresolved
// sender domains, highest count first, as candidates for the archive
// list.
func (c *Console) ReportTriage(report *core.TriageReport) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Archived:     %d\n", report.Stats.Archived)
	fmt.Fprintf(&b, "To Review:    %d\n", report.Stats.ToReview)
	fmt.Fprintf(&b, "Unprocessed:  %d\n", report.Stats.Unresolved)

	b.WriteString("\n=== SENDER DOMAINS BY COUNT (add to archive_senders to archive) ===\n")
	for _, dc := range report.Domains.Top(c.domainLimit) {
		fmt.Fprintf(&b, "  %4d  %s\n", dc.Count, c.text.SanitizeUTF8(dc.Domain))
	}

	_, err := io.WriteString(c.out, b.String())
	return err
}

// ReportSample prints a summary line and one block per sampled record
func (c *Console) ReportSample(result *core.SampleResult) error {
	var b strings.Builder
	if result.Search != "" {
		fmt.Fprintf(&b, "Found %d matching '%s' in %s (%d total)\n\n",
			result.Matched, result.Search, result.Folder, result.Total)
	} else {
		fmt.Fprintf(&b, "Total: %d emails in %s\n\n", result.Total, result.Folder)
	}

	for _, email := range result.Emails {
		fmt.Fprintf(&b, "%s\n", filepath.Base(string(email.ID)))
		fmt.Fprintf(&b, "  %s\n", c.text.SanitizeUTF8(email.Sender))
		fmt.Fprintf(&b, "  %s\n", c.text.SanitizeUTF8(email.Subject))
		b.WriteString("\n")
	}

	_, err := io.WriteString(c.out, b.String())
	return err
}

// ReportSenders prints one line per sender, highest count first
func (c *Console) ReportSenders(senders []core.SenderCount) error {
	var b strings.Builder
	for _, sc := range senders {
		fmt.Fprintf(&b, "%5d  %s\n", sc.Count, c.text.SanitizeUTF8(sc.Sender))
	}

	_, err := io.WriteString(c.out, b.String())
	return err
}
