package mailbox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/mikey/email-triage/internal/core"
)

// DirMailbox reads records the way the poller writes them, one JSON
// file per email in a directory per folder. Record IDs are file paths.
type DirMailbox struct {
	logger *zap.Logger
}

// NewDirMailbox creates a new directory-backed mailbox
func NewDirMailbox(logger *zap.Logger) *DirMailbox {
	return &DirMailbox{
		logger: logger,
	}
}

// List returns the record files in folder sorted by name. The poller
// embeds the fetch timestamp in each file name, so name order is
// arrival order.
func (m *DirMailbox) List(ctx context.Context, folder string) ([]core.RecordID, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", core.ErrFolderNotFound, folder)
		}
		return nil, fmt.Errorf("failed to read folder %s: %w", folder, err)
	}

	ids := make([]core.RecordID, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		ids = append(ids, core.RecordID(filepath.Join(folder, entry.Name())))
	}

	m.logger.Debug("Listed folder",
		zap.String("folder", folder),
		zap.Int("records", len(ids)))

	return ids, nil
}

// Load reads and decodes a single record file
func (m *DirMailbox) Load(ctx context.Context, id core.RecordID) (*core.Email, error) {
	data, err := os.ReadFile(string(id))
	if err != nil {
		return nil, fmt.Errorf("failed to read record %s: %w", id, err)
	}

	var email core.Email
	if err := json.Unmarshal(data, &email); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", core.ErrMalformedRecord, id, err)
	}

	return &email, nil
}

// Move renames a record file into destFolder, keeping its file name so
// the record's place in arrival order survives the move.
func (m *DirMailbox) Move(ctx context.Context, id core.RecordID, destFolder string) error {
	dest := filepath.Join(destFolder, filepath.Base(string(id)))
	if err := os.Rename(string(id), dest); err != nil {
		return fmt.Errorf("failed to move record to %s: %w", destFolder, err)
	}

	m.logger.Debug("Moved record file",
		zap.String("from", string(id)),
		zap.String("to", dest))

	return nil
}
