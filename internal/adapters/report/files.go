package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mikey/email-triage/internal/core"
)

// FilesOnly prints one record path per line, with no headers, so
// sample output can be piped into other tools.
type FilesOnly struct {
	out io.Writer
}

// NewFilesOnly creates a new path-only sample reporter
func NewFilesOnly(out io.Writer) *FilesOnly {
	return &FilesOnly{
		out: out,
	}
}

// ReportSample prints the full path of every sampled record
func (f *FilesOnly) ReportSample(result *core.SampleResult) error {
	var b strings.Builder
	for _, email := range result.Emails {
		fmt.Fprintf(&b, "%s\n", email.ID)
	}

	_, err := io.WriteString(f.out, b.String())
	return err
}
