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
	flags := di.ParseSampleFlags()

	// Build the dependency injection container
	container, err := di.BuildSampleContainer(flags)
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

// run samples the configured folder and prints the selection
func run(
	logger *zap.Logger,
	cfg *config.Config,
	flags *di.CLIFlags,
	svc *core.SampleService,
	reporter ports.SampleReporter,
) error {
	defer logger.Sync()

	sampleCfg := cfg.GetSample()
	query := core.SampleQuery{
		Folder: sampleCfg.Folder,
		Count:  sampleCfg.Count,
		Search: flags.Search,
	}

	result, err := svc.Sample(context.Background(), query)
	if err != nil {
		if errors.Is(err, core.ErrFolderNotFound) {
			fmt.Fprintf(os.Stderr, "Folder not found: %s\n", query.Folder)
			return nil
		}
		logger.Error("Sampling failed", zap.Error(err))
		return err
	}

	return reporter.ReportSample(result)
}
