package di

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/mikey/email-triage/internal/config"
	"github.com/mikey/email-triage/internal/core"
	"github.com/mikey/email-triage/internal/factory"
	"github.com/mikey/email-triage/internal/logging"
	"github.com/mikey/email-triage/internal/ports"
	"github.com/mikey/email-triage/internal/utils"
)

// CLIFlags contains the command line flags for the companion tools
type CLIFlags struct {
	// Sampling flags
	Count     int
	Search    string
	FilesOnly bool

	// Ranking flags
	Limit int

	// Shared flags
	Folder     string
	Verbose    bool
	JSONLog    bool
	ConfigFile string
}

// ParseSampleFlags parses the email-sample command line. The folder is
// positional so the tool reads as "sample this folder".
func ParseSampleFlags() *CLIFlags {
	flags := &CLIFlags{}

	flag.IntVar(&flags.Count, "n", 100, "Number of records to show")
	flag.StringVar(&flags.Search, "s", "", "Filter by sender or subject (case-insensitive)")
	flag.BoolVar(&flags.FilesOnly, "files", false, "Only print record paths (for piping)")
	flag.BoolVar(&flags.Verbose, "verbose", false, "Enable verbose logging")
	flag.BoolVar(&flags.JSONLog, "json-log", false, "Output logs in JSON format")
	flag.StringVar(&flags.ConfigFile, "config", "", "Path to config file (overrides command line flags)")

	flag.Parse()
	flags.Folder = flag.Arg(0)
	return flags
}

// ParseSenderFlags parses the top-senders command line, which takes the
// folder and the ranking limit as positional arguments.
func ParseSenderFlags() *CLIFlags {
	flags := &CLIFlags{}

	flag.BoolVar(&flags.Verbose, "verbose", false, "Enable verbose logging")
	flag.BoolVar(&flags.JSONLog, "json-log", false, "Output logs in JSON format")
	flag.StringVar(&flags.ConfigFile, "config", "", "Path to config file (overrides command line flags)")

	flag.Parse()
	flags.Folder = flag.Arg(0)
	if arg := flag.Arg(1); arg != "" {
		limit, err := strconv.Atoi(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid limit: %s\n", arg)
			os.Exit(2)
		}
		flags.Limit = limit
	}
	return flags
}

// BuildSampleContainer creates a dependency injection container for the
// sampling tool
func BuildSampleContainer(flags *CLIFlags) (*dig.Container, error) {
	container, err := buildCLIBase(flags, createSampleConfig)
	if err != nil {
		return nil, err
	}

	// Register sample service
	if err := container.Provide(core.NewSampleService); err != nil {
		return nil, err
	}

	// Register sample reporter
	if err := container.Provide(func(f *factory.ReporterFactory, flags *CLIFlags) ports.SampleReporter {
		return f.CreateSampleReporter(os.Stdout, flags.FilesOnly)
	}); err != nil {
		return nil, err
	}

	return container, nil
}

// BuildSendersContainer creates a dependency injection container for
// the sender-frequency tool
func BuildSendersContainer(flags *CLIFlags) (*dig.Container, error) {
	container, err := buildCLIBase(flags, createSendersConfig)
	if err != nil {
		return nil, err
	}

	// Register sender-frequency service
	if err := container.Provide(core.NewSenderStatsService); err != nil {
		return nil, err
	}

	// Register sender reporter
	if err := container.Provide(func(f *factory.ReporterFactory) ports.SenderReporter {
		return f.CreateSenderReporter(os.Stdout)
	}); err != nil {
		return nil, err
	}

	return container, nil
}

// buildCLIBase registers the providers every companion tool needs
func buildCLIBase(flags *CLIFlags, fromFlags func(*CLIFlags) *config.Config) (*dig.Container, error) {
	container := dig.New()

	// Register flags
	if err := container.Provide(func() *CLIFlags { return flags }); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(func(flags *CLIFlags) (*zap.Logger, error) {
		return logging.InitConsoleLogger(flags.Verbose, flags.JSONLog)
	}); err != nil {
		return nil, err
	}

	// Register configuration
	if err := container.Provide(func(flags *CLIFlags, logger *zap.Logger) (*config.Config, error) {
		if flags.ConfigFile != "" {
			cfg, err := config.NewFromFile(flags.ConfigFile)
			if err != nil {
				return nil, err
			}
			logger.Info("Loaded configuration from file", zap.String("file", flags.ConfigFile))
			return cfg, nil
		}

		// Create config from command line flags
		return fromFlags(flags), nil
	}); err != nil {
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
	if err := container.Provide(factory.NewReporterFactory); err != nil {
		return nil, err
	}

	// Register record store
	if err := container.Provide(func(f *factory.MailboxFactory) (core.Mailbox, error) {
		return f.CreateMailbox()
	}); err != nil {
		return nil, err
	}

	return container, nil
}

// createSampleConfig creates a configuration from the sampling tool's flags
func createSampleConfig(flags *CLIFlags) *config.Config {
	v := config.NewEmptyViper()

	if flags.Folder != "" {
		v.Set("sample.folder", flags.Folder)
	}
	v.Set("sample.count", flags.Count)

	return config.NewFromViper(v)
}

// createSendersConfig creates a configuration from the ranking tool's flags
func createSendersConfig(flags *CLIFlags) *config.Config {
	v := config.NewEmptyViper()

	if flags.Folder != "" {
		v.Set("senders.folder", flags.Folder)
	}
	if flags.Limit > 0 {
		v.Set("senders.limit", flags.Limit)
	}

	return config.NewFromViper(v)
}
