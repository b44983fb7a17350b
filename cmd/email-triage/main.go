package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/mikey/email-triage/internal/core"
	"github.com/mikey/email-triage/internal/di"
	"github.com/mikey/email-triage/internal/ports"
)

func main() {
	// Build the dependency injection container
	container, err := di.BuildContainer()
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

// run executes one triage pass over the inbox and prints the report
func run(
	logger *zap.Logger,
	svc *core.TriageService,
	reporter ports.TriageReporter,
) error {
	defer logger.Sync()

	// Stop cleanly on interrupt
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := svc.Run(ctx)
	if err != nil {
		logger.Error("Triage run failed", zap.Error(err))
		return err
	}

	return reporter.ReportTriage(report)
}
