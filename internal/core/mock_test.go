package core

import (
	"context"
	"fmt"
)

// mockMailbox is an in-memory Mailbox for testing, with injectable
// failures. Moves are applied so reruns observe the updated folders.
type mockMailbox struct {
	folders map[string][]RecordID
	records map[RecordID]*Email
	loadErr map[RecordID]error
	listErr error
	moveErr error
	moves   []recordMove
}

type recordMove struct {
	id   RecordID
	dest string
}

func newMockMailbox() *mockMailbox {
	return &mockMailbox{
		folders: make(map[string][]RecordID),
		records: make(map[RecordID]*Email),
		loadErr: make(map[RecordID]error),
	}
}

func (m *mockMailbox) add(folder string, id RecordID, email *Email) {
	m.folders[folder] = append(m.folders[folder], id)
	m.records[id] = email
}

func (m *mockMailbox) List(_ context.Context, folder string) ([]RecordID, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	ids, ok := m.folders[folder]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFolderNotFound, folder)
	}
	out := make([]RecordID, len(ids))
	copy(out, ids)
	return out, nil
}

func (m *mockMailbox) Load(_ context.Context, id RecordID) (*Email, error) {
	if err := m.loadErr[id]; err != nil {
		return nil, err
	}
	email, ok := m.records[id]
	if !ok {
		return nil, fmt.Errorf("record not found: %s", id)
	}
	cp := *email
	return &cp, nil
}

func (m *mockMailbox) Move(_ context.Context, id RecordID, destFolder string) error {
	if m.moveErr != nil {
		return m.moveErr
	}
	for folder, ids := range m.folders {
		for i, cur := range ids {
			if cur != id {
				continue
			}
			m.folders[folder] = append(ids[:i:i], ids[i+1:]...)
			m.folders[destFolder] = append(m.folders[destFolder], id)
			m.moves = append(m.moves, recordMove{id: id, dest: destFolder})
			return nil
		}
	}
	return fmt.Errorf("record not found: %s", id)
}

// outcomeClassifier classifies by exact sender lookup, defaulting to
// unresolved.
type outcomeClassifier map[string]TriageOutcome

func (c outcomeClassifier) Classify(sender string) TriageOutcome {
	if outcome, ok := c[sender]; ok {
		return outcome
	}
	return OutcomeUnresolved
}
