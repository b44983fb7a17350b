package core

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// SenderStatsService ranks senders by how many records they have in a
// folder.
type SenderStatsService struct {
	mailbox Mailbox
	logger  *zap.Logger
}

// NewSenderStatsService creates a new sender-frequency service
func NewSenderStatsService(mailbox Mailbox, logger *zap.Logger) *SenderStatsService {
	return &SenderStatsService{
		mailbox: mailbox,
		logger:  logger,
	}
}

// TopSenders counts records per sender in the folder and returns the
// limit most frequent, ordered by count descending with ties broken by
// sender ascending. Records without a sender and records that fail to
// parse are skipped. A non-positive limit yields nil.
func (s *SenderStatsService) TopSenders(ctx context.Context, folder string, limit int) ([]SenderCount, error) {
	if limit <= 0 {
		return nil, nil
	}

	ids, err := s.mailbox.List(ctx, folder)
	if err != nil {
		return nil, fmt.Errorf("failed to list folder %s: %w", folder, err)
	}

	counts := make(map[string]int)
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		email, err := s.mailbox.Load(ctx, id)
		if err != nil {
			s.logger.Debug("Skipping unreadable record",
				zap.String("record", string(id)),
				zap.Error(err))
			continue
		}
		if email.From == "" {
			continue
		}
		counts[email.From]++
	}

	ranked := make([]SenderCount, 0, len(counts))
	for sender, count := range counts {
		ranked = append(ranked, SenderCount{Sender: sender, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Sender < ranked[j].Sender
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	s.logger.Debug("Ranked senders",
		zap.String("folder", folder),
		zap.Int("records", len(ids)),
		zap.Int("senders", len(counts)),
		zap.Int("returned", len(ranked)))

	return ranked, nil
}
