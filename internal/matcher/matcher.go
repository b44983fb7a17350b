package matcher

import (
	"strings"

	"go.uber.org/zap"

	"github.com/mikey/email-triage/internal/core"
)

// Matcher classifies senders against curated archive and review lists
type Matcher struct {
	archive []string
	review  []string
	logger  *zap.Logger
}

// New creates a new sender matcher
func New(archiveSenders, reviewSenders []string, logger *zap.Logger) *Matcher {
	archive := normalize(archiveSenders)
	review := normalize(reviewSenders)

	if logger != nil {
		logger.Info("Initialized sender matcher",
			zap.Int("archive_entries", len(archive)),
			zap.Int("review_entries", len(review)))
	}

	return &Matcher{
		archive: archive,
		review:  review,
		logger:  logger,
	}
}

// Classify reports which folder a sender's mail belongs in. Review
// entries take precedence over archive entries. Matching is a
// case-insensitive substring test, so an entry can name a bare domain,
// a full address, or any fragment in between.
func (m *Matcher) Classify(sender string) core.TriageOutcome {
	if sender == "" {
		return core.OutcomeUnresolved
	}
	s := strings.ToLower(sender)

	for _, entry := range m.review {
		if strings.Contains(s, entry) {
			if m.logger != nil {
				m.logger.Debug("Sender matched review list",
					zap.String("sender", sender),
					zap.String("entry", entry))
			}
			return core.OutcomeReview
		}
	}
	for _, entry := range m.archive {
		if strings.Contains(s, entry) {
			if m.logger != nil {
				m.logger.Debug("Sender matched archive list",
					zap.String("sender", sender),
					zap.String("entry", entry))
			}
			return core.OutcomeArchive
		}
	}

	return core.OutcomeUnresolved
}

// normalize lowercases and trims entries, dropping any that end up
// empty so a blank config line cannot match every sender.
func normalize(entries []string) []string {
	normalized := make([]string, 0, len(entries))
	for _, entry := range entries {
		entry = strings.ToLower(strings.TrimSpace(entry))
		if entry == "" {
			continue
		}
		normalized = append(normalized, entry)
	}
	return normalized
}
