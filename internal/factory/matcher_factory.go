package factory

import (
	"go.uber.org/zap"

	"github.com/mikey/email-triage/internal/config"
	"github.com/mikey/email-triage/internal/core"
	"github.com/mikey/email-triage/internal/matcher"
)

// MatcherFactory creates sender matchers based on configuration
type MatcherFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewMatcherFactory creates a new matcher factory
func NewMatcherFactory(cfg *config.Config, logger *zap.Logger) *MatcherFactory {
	return &MatcherFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateMatcher builds a sender matcher from the builtin lists plus any
// extra entries in the configuration
func (f *MatcherFactory) CreateMatcher() core.SenderClassifier {
	triageCfg := f.cfg.GetTriage()

	var archive, review []string
	if triageCfg.UseBuiltinLists {
		archive = append(archive, matcher.BuiltinArchiveSenders...)
		review = append(review, matcher.BuiltinReviewSenders...)
	}
	archive = append(archive, triageCfg.ArchiveSenders...)
	review = append(review, triageCfg.ReviewSenders...)

	return matcher.New(archive, review, f.logger)
}
