package core

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// TriageService is the core service for partitioning an inbox folder.
// Each run classifies every record currently in the inbox, directs the
// mailbox to relocate matched records, and tallies unresolved senders
// by domain for allow-list curation.
type TriageService struct {
	mailbox    Mailbox
	classifier SenderClassifier
	logger     *zap.Logger
	folders    Folders
	dryRun     bool
}

// NewTriageService creates a new triage service
func NewTriageService(
	mailbox Mailbox,
	classifier SenderClassifier,
	logger *zap.Logger,
	folders Folders,
	dryRun bool,
) *TriageService {
	return &TriageService{
		mailbox:    mailbox,
		classifier: classifier,
		logger:     logger,
		folders:    folders,
		dryRun:     dryRun,
	}
}

// Run performs one triage pass over the inbox folder. Records whose
// sender matches the review set move to the review folder, archive
// matches move to the archive folder, and unresolved records stay in
// place and are counted per domain. Each move commits independently,
// so an interrupted run leaves the folders in a valid state and a
// re-run picks up the remainder.
func (s *TriageService) Run(ctx context.Context) (*TriageReport, error) {
	ids, err := s.mailbox.List(ctx, s.folders.Inbox)
	if err != nil {
		if errors.Is(err, ErrFolderNotFound) {
			// A missing inbox is an empty run, not a failure
			s.logger.Warn("Inbox folder does not exist", zap.String("folder", s.folders.Inbox))
			return &TriageReport{Domains: make(DomainCounts)}, nil
		}
		return nil, fmt.Errorf("failed to list inbox: %w", err)
	}

	s.logger.Info("Starting triage run",
		zap.String("inbox", s.folders.Inbox),
		zap.Int("records", len(ids)),
		zap.Bool("dry_run", s.dryRun))

	report := &TriageReport{Domains: make(DomainCounts)}
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		email, err := s.mailbox.Load(ctx, id)
		if err != nil {
			// Unreadable records stay in place and out of
			// every statistic
			s.logger.Debug("Skipping unreadable record", zap.String("record", string(id)), zap.Error(err))
			continue
		}

		// Review takes precedence over archive
		switch s.classifier.Classify(email.From) {
		case OutcomeReview:
			if err := s.relocate(ctx, id, s.folders.Review); err != nil {
				return nil, err
			}
			report.Stats.ToReview++
		case OutcomeArchive:
			if err := s.relocate(ctx, id, s.folders.Archive); err != nil {
				return nil, err
			}
			report.Stats.Archived++
		default:
			report.Stats.Unresolved++
			report.Domains[ExtractDomain(email.From)]++
		}
	}

	s.logger.Info("Triage run complete",
		zap.Int("archived", report.Stats.Archived),
		zap.Int("to_review", report.Stats.ToReview),
		zap.Int("unresolved", report.Stats.Unresolved))

	return report, nil
}

// relocate directs the mailbox to move one record. A move failure
// aborts the whole run.
func (s *TriageService) relocate(ctx context.Context, id RecordID, destFolder string) error {
	if s.dryRun {
		s.logger.Debug("Dry run, keeping record in place",
			zap.String("record", string(id)),
			zap.String("destination", destFolder))
		return nil
	}
	if err := s.mailbox.Move(ctx, id, destFolder); err != nil {
		return fmt.Errorf("failed to move record %s: %w", id, err)
	}
	s.logger.Debug("Relocated record",
		zap.String("record", string(id)),
		zap.String("destination", destFolder))
	return nil
}
