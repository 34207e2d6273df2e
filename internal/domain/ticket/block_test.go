package ticket

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBlock_ValidInput(t *testing.T) {
	ticketCreatedAt := time.Now().UTC().Add(-time.Hour)

	b, err := NewBlock(1, "alice", "Any update on this?", ticketCreatedAt)
	require.NoError(t, err)
	require.NotNil(t, b)

	assert.Equal(t, uint(1), b.TicketID())
	assert.Equal(t, "alice", b.Author())
	assert.Equal(t, "Any update on this?", b.Text())
	assert.False(t, b.CreatedAt().Before(ticketCreatedAt), "block must not predate its ticket")
}

func TestNewBlock_InvalidInput(t *testing.T) {
	past := time.Now().UTC().Add(-time.Hour)

	tests := []struct {
		name     string
		ticketID uint
		author   string
		text     string
		errMsg   string
	}{
		{
			name:     "zero ticket ID",
			ticketID: 0, author: "alice", text: "hi",
			errMsg: "ticket ID is required",
		},
		{
			name:     "empty author",
			ticketID: 1, author: "", text: "hi",
			errMsg: "author is required",
		},
		{
			name:     "author too long",
			ticketID: 1, author: strings.Repeat("a", 21), text: "hi",
			errMsg: "author exceeds maximum length",
		},
		{
			name:     "empty text",
			ticketID: 1, author: "alice", text: "",
			errMsg: "text cannot be empty",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := NewBlock(tc.ticketID, tc.author, tc.text, past)
			require.Error(t, err)
			assert.Nil(t, b)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}

func TestNewBlock_RejectsTicketFromTheFuture(t *testing.T) {
	// A ticket whose creation timestamp lies ahead of the server clock can
	// only come from corrupted data; the block is rejected.
	future := time.Now().UTC().Add(time.Hour)

	b, err := NewBlock(1, "alice", "hi", future)
	require.Error(t, err)
	assert.Nil(t, b)
	assert.Contains(t, err.Error(), "block date must be at or after ticket creation date")
}

func TestBlock_SetID(t *testing.T) {
	b, err := NewBlock(1, "alice", "hi", time.Now().UTC().Add(-time.Minute))
	require.NoError(t, err)

	require.NoError(t, b.SetID(5))
	assert.Equal(t, uint(5), b.ID())
	assert.Error(t, b.SetID(6))
}
