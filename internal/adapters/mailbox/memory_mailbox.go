package mailbox

import (
	"context"
	"errors"
	"fmt"
	"path"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/mikey/email-triage/internal/core"
)

// ErrNotFound is returned when a record is not in the mailbox
var ErrNotFound = errors.New("record not found")

// MemoryMailbox is an in-memory implementation of the Mailbox
// interface. It backs tests and rehearsal runs where no record
// directory exists.
type MemoryMailbox struct {
	folders map[string]map[string]*core.Email
	mu      sync.RWMutex
	logger  *zap.Logger
}

// NewMemoryMailbox creates a new in-memory mailbox
func NewMemoryMailbox(logger *zap.Logger) *MemoryMailbox {
	return &MemoryMailbox{
		folders: make(map[string]map[string]*core.Email),
		logger:  logger,
	}
}

// CreateFolder makes folder exist, empty if it was absent
func (m *MemoryMailbox) CreateFolder(folder string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.folders[folder]; !ok {
		m.folders[folder] = make(map[string]*core.Email)
	}
}

// Put stores a copy of email under folder with a file-style name. The
// folder is created if it does not exist.
func (m *MemoryMailbox) Put(folder, name string, email *core.Email) core.RecordID {
	m.mu.Lock()
	defer m.mu.Unlock()

	records, ok := m.folders[folder]
	if !ok {
		records = make(map[string]*core.Email)
		m.folders[folder] = records
	}

	stored := *email
	records[name] = &stored

	return core.RecordID(path.Join(folder, name))
}

// List returns the record IDs in folder sorted by name
func (m *MemoryMailbox) List(ctx context.Context, folder string) ([]core.RecordID, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records, ok := m.folders[folder]
	if !ok {
		return nil, fmt.Errorf("%w: %s", core.ErrFolderNotFound, folder)
	}

	names := make([]string, 0, len(records))
	for name := range records {
		names = append(names, name)
	}
	sort.Strings(names)

	ids := make([]core.RecordID, len(names))
	for i, name := range names {
		ids[i] = core.RecordID(path.Join(folder, name))
	}
	return ids, nil
}

// Load returns a copy of the record with the given ID
func (m *MemoryMailbox) Load(ctx context.Context, id core.RecordID) (*core.Email, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	email, _, _, err := m.find(id)
	if err != nil {
		return nil, err
	}

	loaded := *email
	return &loaded, nil
}

// Move relocates a record into destFolder, creating the folder if it
// does not exist.
func (m *MemoryMailbox) Move(ctx context.Context, id core.RecordID, destFolder string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	email, folder, name, err := m.find(id)
	if err != nil {
		return err
	}

	dest, ok := m.folders[destFolder]
	if !ok {
		dest = make(map[string]*core.Email)
		m.folders[destFolder] = dest
	}

	delete(m.folders[folder], name)
	dest[name] = email

	m.logger.Debug("Moved record",
		zap.String("from", string(id)),
		zap.String("to", path.Join(destFolder, name)))

	return nil
}

// find resolves an ID to its record, folder and name. Callers must
// hold the lock.
func (m *MemoryMailbox) find(id core.RecordID) (*core.Email, string, string, error) {
	folder, name := path.Split(string(id))
	folder = path.Clean(folder)

	records, ok := m.folders[folder]
	if !ok {
		return nil, "", "", fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	email, ok := records[name]
	if !ok {
		return nil, "", "", fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return email, folder, name, nil
}
