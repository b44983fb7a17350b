package core

import "sort"

// Email represents one stored email record. Records are written by the
// mail poller as individual JSON files; triage only interprets the
// sender and subject, the remaining fields travel along untouched.
type Email struct {
	UID         string `json:"uid"`
	Mailbox     string `json:"mailbox"`
	IMAPServer  string `json:"imap_server"`
	Subject     string `json:"subject"`
	From        string `json:"from"`
	ReceivedAt  string `json:"received_at"`
	Snippet     string `json:"snippet"`
	Body        string `json:"body"`
	Unsubscribe string `json:"unsubscribe"`
}

// RecordID identifies a stored record by its source path. It is used
// to address records for loading and moving, never as a semantic key.
type RecordID string

// TriageOutcome is the classification decision for a record's sender.
type TriageOutcome string

const (
	// OutcomeArchive means the sender matched the archive set
	OutcomeArchive TriageOutcome = "archive"

	// OutcomeReview means the sender matched the review set
	OutcomeReview TriageOutcome = "review"

	// OutcomeUnresolved means the sender matched neither set
	OutcomeUnresolved TriageOutcome = "unresolved"
)

// Folders names the source and destination folders for a triage run.
type Folders struct {
	Inbox   string
	Archive string
	Review  string
}

// TriageStats counts the outcomes of a single triage run.
type TriageStats struct {
	Archived   int
	ToReview   int
	Unresolved int
}

// DomainCount is one row of the unresolved-sender report.
type DomainCount struct {
	Domain string
	Count  int
}

// DomainCounts accumulates unresolved records per sender domain over
// one run. It is discarded after reporting.
type DomainCounts map[string]int

// Top returns the n highest-count domains, ordered by count descending
// and domain ascending for equal counts. A non-positive n yields nil.
func (d DomainCounts) Top(n int) []DomainCount {
	if n <= 0 {
		return nil
	}
	ranked := make([]DomainCount, 0, len(d))
	for domain, count := range d {
		ranked = append(ranked, DomainCount{Domain: domain, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Domain < ranked[j].Domain
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// TriageReport is the outcome of one triage run.
type TriageReport struct {
	Stats   TriageStats
	Domains DomainCounts
}

// SenderCount is one row of the sender-frequency report.
type SenderCount struct {
	Sender string
	Count  int
}

// SampleQuery bounds a sampling pass over one folder.
type SampleQuery struct {
	// Folder to sample from.
	Folder string

	// Count caps the number of returned records; the most recently
	// discovered matches are kept. Non-positive means no cap.
	Count int

	// Search filters records by a case-insensitive substring match
	// against sender or subject. Empty means no filtering.
	Search string
}

// SampledEmail is one record selected by a sampling pass. Records that
// failed to parse appear with sender "error" and the parse error as
// the subject when no search is active.
type SampledEmail struct {
	ID      RecordID
	Sender  string
	Subject string
}

// SampleResult is the outcome of a sampling pass.
type SampleResult struct {
	Folder  string
	Search  string
	Total   int
	Matched int
	Emails  []SampledEmail
}
