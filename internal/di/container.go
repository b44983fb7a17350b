package di

import (
	"os"

	"go.uber.org/dig"

	"github.com/mikey/email-triage/internal/config"
	"github.com/mikey/email-triage/internal/core"
	"github.com/mikey/email-triage/internal/factory"
	"github.com/mikey/email-triage/internal/logging"
	"github.com/mikey/email-triage/internal/ports"
	"github.com/mikey/email-triage/internal/utils"
)

// BuildContainer creates and configures a dependency injection container
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(config.New); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	// Register text processor
	if err := container.Provide(utils.NewTextProcessor); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewMailboxFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewMatcherFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewReporterFactory); err != nil {
		return nil, err
	}

	// Register folder layout
	if err := container.Provide(func(cfg *config.Config) core.Folders {
		folders := cfg.GetFolders()
		return core.Folders{
			Inbox:   folders.Inbox,
			Archive: folders.Archive,
			Review:  folders.Review,
		}
	}); err != nil {
		return nil, err
	}

	// Register record store with destination folders prepared
	if err := container.Provide(func(f *factory.MailboxFactory, folders core.Folders) (core.Mailbox, error) {
		mb, err := f.CreateMailbox()
		if err != nil {
			return nil, err
		}
		if err := f.PrepareFolders(mb, folders); err != nil {
			return nil, err
		}
		return mb, nil
	}); err != nil {
		return nil, err
	}

	// Register sender matcher
	if err := container.Provide(func(f *factory.MatcherFactory) core.SenderClassifier {
		return f.CreateMatcher()
	}); err != nil {
		return nil, err
	}

	// Register dry run flag
	if err := container.Provide(func(cfg *config.Config) bool {
		return cfg.GetTriage().DryRun
	}); err != nil {
		return nil, err
	}

	// Register triage service
	if err := container.Provide(core.NewTriageService); err != nil {
		return nil, err
	}

	// Register triage reporter
	if err := container.Provide(func(f *factory.ReporterFactory) ports.TriageReporter {
		return f.CreateTriageReporter(os.Stdout)
	}); err != nil {
		return nil, err
	}

	return container, nil
}
