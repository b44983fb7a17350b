package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/mikey/email-triage/internal/config"
	"github.com/mikey/email-triage/internal/core"
	"github.com/mikey/email-triage/internal/di"
	"github.com/mikey/email-triage/internal/ports"
)

func main() {
	flags := di.ParseSenderFlags()

	// Build the dependency injection container
	container, err := di.BuildSendersContainer(flags)
	if err != nil {
		fmt.Printf("Failed to build dependency container: %v\n", err)
		os.Exit(1)
	}

	// Run the application
	if err := container.Invoke(run); err != nil {
		fmt.Printf("Application error: %v\n", err)
		os.Exit(1)
	}
}

// run ranks senders in the configured folder and prints the result
func run(
	logger *zap.Logger,
	cfg *config.Config,
	svc *core.SenderStatsService,
	reporter ports.SenderReporter,
) error {
	defer logger.Sync()

	sendersCfg := cfg.GetSenders()
	ranked, err := svc.TopSenders(context.Background(), sendersCfg.Folder, sendersCfg.Limit)
	if err != nil {
		if errors.Is(err, core.ErrFolderNotFound) {
			fmt.Fprintf(os.Stderr, "Folder not found: %s\n", sendersCfg.Folder)
			return nil
		}
		logger.Error("Ranking failed", zap.Error(err))
		return err
	}

	return reporter.ReportSenders(ranked)
}
