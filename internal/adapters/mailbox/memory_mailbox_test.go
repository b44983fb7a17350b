package mailbox

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mikey/email-triage/internal/core"
)

func TestMemoryMailboxPutListLoad(t *testing.T) {
	mb := NewMemoryMailbox(zap.NewNop())

	idB := mb.Put("inbox", "b.json", &core.Email{From: "b@example.com"})
	idA := mb.Put("inbox", "a.json", &core.Email{From: "a@example.com"})

	ids, err := mb.List(context.Background(), "inbox")
	require.NoError(t, err)
	assert.Equal(t, []core.RecordID{idA, idB}, ids)

	email, err := mb.Load(context.Background(), idA)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", email.From)
}

func TestMemoryMailboxLoadReturnsCopy(t *testing.T) {
	mb := NewMemoryMailbox(zap.NewNop())
	id := mb.Put("inbox", "a.json", &core.Email{From: "a@example.com"})

	first, err := mb.Load(context.Background(), id)
	require.NoError(t, err)
	first.From = "mutated"

	second, err := mb.Load(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", second.From)
}

func TestMemoryMailboxMove(t *testing.T) {
	mb := NewMemoryMailbox(zap.NewNop())
	id := mb.Put("inbox", "a.json", &core.Email{From: "a@example.com"})

	require.NoError(t, mb.Move(context.Background(), id, "to_archive"))

	ids, err := mb.List(context.Background(), "inbox")
	require.NoError(t, err)
	assert.Empty(t, ids)

	moved, err := mb.List(context.Background(), "to_archive")
	require.NoError(t, err)
	require.Len(t, moved, 1)

	email, err := mb.Load(context.Background(), moved[0])
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", email.From)
}

func TestMemoryMailboxListMissingFolder(t *testing.T) {
	mb := NewMemoryMailbox(zap.NewNop())

	_, err := mb.List(context.Background(), "gone")
	require.ErrorIs(t, err, core.ErrFolderNotFound)
}

func TestMemoryMailboxCreateFolder(t *testing.T) {
	mb := NewMemoryMailbox(zap.NewNop())
	mb.CreateFolder("inbox")

	ids, err := mb.List(context.Background(), "inbox")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestMemoryMailboxMissingRecord(t *testing.T) {
	mb := NewMemoryMailbox(zap.NewNop())
	mb.CreateFolder("inbox")

	_, err := mb.Load(context.Background(), "inbox/gone.json")
	require.ErrorIs(t, err, ErrNotFound)

	err = mb.Move(context.Background(), "inbox/gone.json", "to_archive")
	require.ErrorIs(t, err, ErrNotFound)
}
