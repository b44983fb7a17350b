package core

import (
	"context"
	"errors"
)

var (
	// ErrMalformedRecord is returned when a record's content cannot be parsed
	ErrMalformedRecord = errors.New("malformed record")

	// ErrFolderNotFound is returned when a listed folder does not exist
	ErrFolderNotFound = errors.New("folder not found")
)

// Mailbox defines the interface for listing, loading, and relocating
// stored email records
type Mailbox interface {
	// List returns the identifiers of all records in a folder, sorted
	// lexicographically so repeated listings are deterministic
	List(ctx context.Context, folder string) ([]RecordID, error)

	// Load reads and parses one record; malformed content is reported
	// with an error matching ErrMalformedRecord
	Load(ctx context.Context, id RecordID) (*Email, error)

	// Move relocates one record into the destination folder, keeping
	// its file name
	Move(ctx context.Context, id RecordID, destFolder string) error
}

// SenderClassifier decides the triage outcome for a sender
type SenderClassifier interface {
	// Classify tests a sender text against the curated matcher sets
	Classify(sender string) TriageOutcome
}
