package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestSampler(mb *mockMailbox) *SampleService {
	return NewSampleService(mb, zap.NewNop())
}

func TestSampleReturnsAllWithoutSearch(t *testing.T) {
	mb := newMockMailbox()
	mb.add("folder", "a.json", &Email{From: "x@substack.com", Subject: "Weekly digest"})
	mb.add("folder", "b.json", &Email{Subject: "No sender here"})
	mb.add("folder", "c.json", &Email{From: "y@example.com"})

	result, err := newTestSampler(mb).Sample(context.Background(), SampleQuery{Folder: "folder", Count: 100})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 3, result.Matched)
	assert.Equal(t, []SampledEmail{
		{ID: "a.json", Sender: "x@substack.com", Subject: "Weekly digest"},
		{ID: "b.json", Sender: "unknown", Subject: "No sender here"},
		{ID: "c.json", Sender: "y@example.com", Subject: "no subject"},
	}, result.Emails)
}

func TestSampleIncludesUnreadableAsErrorRows(t *testing.T) {
	mb := newMockMailbox()
	mb.add("folder", "a.json", &Email{From: "x@substack.com", Subject: "ok"})
	mb.add("folder", "b.json", &Email{})
	mb.loadErr["b.json"] = errors.New("invalid character 'x'")

	result, err := newTestSampler(mb).Sample(context.Background(), SampleQuery{Folder: "folder", Count: 100})
	require.NoError(t, err)

	require.Len(t, result.Emails, 2)
	assert.Equal(t, SampledEmail{ID: "b.json", Sender: "error", Subject: "invalid character 'x'"}, result.Emails[1])
}

func TestSampleSearchMatchesSenderOrSubject(t *testing.T) {
	mb := newMockMailbox()
	mb.add("folder", "a.json", &Email{From: "orders@boxshop.io", Subject: "Shipped"})
	mb.add("folder", "b.json", &Email{From: "x@example.com", Subject: "Your BOXSHOP invoice"})
	mb.add("folder", "c.json", &Email{From: "y@example.com", Subject: "Unrelated"})

	result, err := newTestSampler(mb).Sample(context.Background(), SampleQuery{Folder: "folder", Count: 100, Search: "BoxShop"})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 2, result.Matched)
	require.Len(t, result.Emails, 2)
	assert.Equal(t, RecordID("a.json"), result.Emails[0].ID)
	assert.Equal(t, RecordID("b.json"), result.Emails[1].ID)
}

func TestSampleSearchDropsUnreadable(t *testing.T) {
	mb := newMockMailbox()
	mb.add("folder", "a.json", &Email{From: "orders@boxshop.io"})
	mb.add("folder", "b.json", &Email{})
	mb.loadErr["b.json"] = errors.New("truncated")

	result, err := newTestSampler(mb).Sample(context.Background(), SampleQuery{Folder: "folder", Count: 100, Search: "boxshop"})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Matched)
	require.Len(t, result.Emails, 1)
	assert.Equal(t, RecordID("a.json"), result.Emails[0].ID)
}

func TestSampleSearchSeesPlaceholders(t *testing.T) {
	mb := newMockMailbox()
	mb.add("folder", "a.json", &Email{Subject: "orphaned"})
	mb.add("folder", "b.json", &Email{From: "x@example.com", Subject: "other"})

	result, err := newTestSampler(mb).Sample(context.Background(), SampleQuery{Folder: "folder", Count: 100, Search: "unknown"})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Matched)
	require.Len(t, result.Emails, 1)
	assert.Equal(t, "unknown", result.Emails[0].Sender)
}

func TestSampleKeepsMostRecentMatches(t *testing.T) {
	mb := newMockMailbox()
	for _, id := range []RecordID{"a.json", "b.json", "c.json", "d.json", "e.json"} {
		mb.add("folder", id, &Email{From: "x@example.com", Subject: string(id)})
	}

	result, err := newTestSampler(mb).Sample(context.Background(), SampleQuery{Folder: "folder", Count: 2})
	require.NoError(t, err)

	assert.Equal(t, 5, result.Total)
	assert.Equal(t, 5, result.Matched)
	require.Len(t, result.Emails, 2)
	assert.Equal(t, RecordID("d.json"), result.Emails[0].ID)
	assert.Equal(t, RecordID("e.json"), result.Emails[1].ID)
}

func TestSampleZeroCountKeepsAll(t *testing.T) {
	mb := newMockMailbox()
	for _, id := range []RecordID{"a.json", "b.json", "c.json"} {
		mb.add("folder", id, &Email{From: "x@example.com"})
	}

	result, err := newTestSampler(mb).Sample(context.Background(), SampleQuery{Folder: "folder"})
	require.NoError(t, err)

	assert.Len(t, result.Emails, 3)
}

func TestSampleMissingFolder(t *testing.T) {
	mb := newMockMailbox()

	_, err := newTestSampler(mb).Sample(context.Background(), SampleQuery{Folder: "gone"})
	require.ErrorIs(t, err, ErrFolderNotFound)
}

func TestSampleStopsOnCanceledContext(t *testing.T) {
	mb := newMockMailbox()
	mb.add("folder", "a.json", &Email{From: "x@example.com"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestSampler(mb).Sample(ctx, SampleQuery{Folder: "folder"})
	require.ErrorIs(t, err, context.Canceled)
}

func TestContainsFold(t *testing.T) {
	tests := []struct {
		name   string
		s      string
		substr string
		want   bool
	}{
		{name: "exact", s: "boxshop", substr: "boxshop", want: true},
		{name: "mixed case", s: "Your BOXSHOP invoice", substr: "boxshop", want: true},
		{name: "mixed case needle", s: "orders@boxshop.io", substr: "BoxShop", want: true},
		{name: "unicode folding", s: "straße 5", substr: "STRASSE", want: true},
		{name: "empty needle matches", s: "anything", substr: "", want: true},
		{name: "no match", s: "orders@boxshop.io", substr: "bookshop", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, containsFold(tt.s, tt.substr))
		})
	}
}
