package core

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
)

// SampleService selects a bounded window of records from a folder for
// human review.
type SampleService struct {
	mailbox Mailbox
	logger  *zap.Logger
}

// NewSampleService creates a new sampling service
func NewSampleService(mailbox Mailbox, logger *zap.Logger) *SampleService {
	return &SampleService{
		mailbox: mailbox,
		logger:  logger,
	}
}

// Sample scans a folder and returns the most recently discovered
// records matching the query, up to the query's count. With a search
// term, matching is a caseless substring test against sender and
// subject. Without one, records that fail to parse are included as
// placeholder rows so broken files surface during review.
func (s *SampleService) Sample(ctx context.Context, q SampleQuery) (*SampleResult, error) {
	ids, err := s.mailbox.List(ctx, q.Folder)
	if err != nil {
		return nil, fmt.Errorf("failed to list folder %s: %w", q.Folder, err)
	}

	result := &SampleResult{
		Folder: q.Folder,
		Search: q.Search,
		Total:  len(ids),
	}

	var matches []SampledEmail
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		email, err := s.mailbox.Load(ctx, id)
		if err != nil {
			if q.Search == "" {
				matches = append(matches, SampledEmail{ID: id, Sender: "error", Subject: err.Error()})
			}
			continue
		}

		sender := email.From
		if sender == "" {
			sender = "unknown"
		}
		subject := email.Subject
		if subject == "" {
			subject = "no subject"
		}

		if q.Search != "" && !containsFold(sender, q.Search) && !containsFold(subject, q.Search) {
			continue
		}
		matches = append(matches, SampledEmail{ID: id, Sender: sender, Subject: subject})
	}
	result.Matched = len(matches)

	// Keep the tail: listings sort oldest first, so the most recent
	// matches are the last ones.
	if q.Count > 0 && len(matches) > q.Count {
		matches = matches[len(matches)-q.Count:]
	}
	result.Emails = matches

	s.logger.Debug("Sampled folder",
		zap.String("folder", q.Folder),
		zap.Int("total", result.Total),
		zap.Int("matched", result.Matched),
		zap.Int("returned", len(result.Emails)))

	return result, nil
}

// containsFold reports whether s contains substr under Unicode case
// folding. An empty substr matches everything.
func containsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	fold := cases.Fold()
	return strings.Contains(fold.String(s), fold.String(substr))
}
