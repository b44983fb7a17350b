package factory

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/mikey/email-triage/internal/adapters/mailbox"
	"github.com/mikey/email-triage/internal/config"
	"github.com/mikey/email-triage/internal/core"
)

// MailboxFactory creates record stores based on configuration
type MailboxFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewMailboxFactory creates a new mailbox factory
func NewMailboxFactory(cfg *config.Config, logger *zap.Logger) *MailboxFactory {
	return &MailboxFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateMailbox creates a record store based on the configuration
func (f *MailboxFactory) CreateMailbox() (core.Mailbox, error) {
	mailboxType := f.cfg.GetMailbox().Type

	switch mailboxType {
	case "dir":
		return mailbox.NewDirMailbox(f.logger), nil
	case "memory":
		return mailbox.NewMemoryMailbox(f.logger), nil
	default:
		return nil, fmt.Errorf("unsupported mailbox type: %s", mailboxType)
	}
}

// PrepareFolders ensures the archive and review folders exist before a
// triage run. The inbox is not created; a missing inbox reads as an
// empty run.
func (f *MailboxFactory) PrepareFolders(mb core.Mailbox, folders core.Folders) error {
	if m, ok := mb.(*mailbox.MemoryMailbox); ok {
		m.CreateFolder(folders.Archive)
		m.CreateFolder(folders.Review)
		return nil
	}

	for _, folder := range []string{folders.Archive, folders.Review} {
		if err := os.MkdirAll(folder, 0755); err != nil {
			return fmt.Errorf("failed to create folder %s: %w", folder, err)
		}
	}
	return nil
}
