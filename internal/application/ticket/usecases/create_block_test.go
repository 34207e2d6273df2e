package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/infrastructure/sanitizer"
	"helpdesk/internal/shared/errors"
)

func openTicket(t *testing.T, id uint) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket("Flaky wifi", "drops every hour", vo.CategoryMaintenance, 1)
	require.NoError(t, err)
	require.NoError(t, tk.SetID(id))
	return tk
}

func closedTicket(t *testing.T, id uint) *ticket.Ticket {
	t.Helper()
	tk := openTicket(t, id)
	require.NoError(t, tk.ToggleState(1, false))
	return tk
}

func TestCreateBlockUseCase_Execute(t *testing.T) {
	t.Run("appends to open ticket", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return openTicket(t, id), nil
			},
		}
		var saved *ticket.Block
		blockRepo := &mockBlockRepository{
			SaveFunc: func(ctx context.Context, b *ticket.Block) error {
				saved = b
				return b.SetID(11)
			},
		}

		uc := NewCreateBlockUseCase(ticketRepo, blockRepo, &mockSanitizer{}, &mockLogger{})
		result, err := uc.Execute(context.Background(), CreateBlockCommand{
			TicketID: 3,
			Author:   "alice",
			Text:     "rebooted the router",
		})

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, uint(11), result.BlockID)
		assert.Equal(t, uint(3), result.TicketID)
		assert.Equal(t, "alice", result.Author)
	})

	t.Run("closed ticket conflicts", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return closedTicket(t, id), nil
			},
		}
		blockSaved := false
		blockRepo := &mockBlockRepository{
			SaveFunc: func(ctx context.Context, b *ticket.Block) error {
				blockSaved = true
				return nil
			},
		}

		uc := NewCreateBlockUseCase(ticketRepo, blockRepo, &mockSanitizer{}, &mockLogger{})
		_, err := uc.Execute(context.Background(), CreateBlockCommand{
			TicketID: 3,
			Author:   "alice",
			Text:     "too late",
		})

		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
		assert.False(t, blockSaved)
	})

	t.Run("unknown ticket not found", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return nil, errors.NewNotFoundError("ticket not found")
			},
		}

		uc := NewCreateBlockUseCase(ticketRepo, &mockBlockRepository{}, &mockSanitizer{}, &mockLogger{})
		_, err := uc.Execute(context.Background(), CreateBlockCommand{
			TicketID: 99,
			Author:   "alice",
			Text:     "hello?",
		})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("validation failures", func(t *testing.T) {
		uc := NewCreateBlockUseCase(&mockTicketRepository{}, &mockBlockRepository{}, &mockSanitizer{}, &mockLogger{})

		cases := []CreateBlockCommand{
			{TicketID: 0, Author: "alice", Text: "x"},
			{TicketID: 1, Author: "", Text: "x"},
			{TicketID: 1, Author: "this-username-is-way-too-long", Text: "x"},
			{TicketID: 1, Author: "alice", Text: ""},
		}

		for _, cmd := range cases {
			_, err := uc.Execute(context.Background(), cmd)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		}
	})

	t.Run("rejects text with no content after sanitization", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return openTicket(t, id), nil
			},
		}
		blockSaved := false
		blockRepo := &mockBlockRepository{
			SaveFunc: func(ctx context.Context, b *ticket.Block) error {
				blockSaved = true
				return nil
			},
		}

		uc := NewCreateBlockUseCase(ticketRepo, blockRepo, sanitizer.New(), &mockLogger{})

		for _, text := range []string{"   ", "<b></b>", "<b>\n\t</b><i></i>"} {
			_, err := uc.Execute(context.Background(), CreateBlockCommand{
				TicketID: 3,
				Author:   "alice",
				Text:     text,
			})
			require.Error(t, err, "text %q should be rejected", text)
			assert.True(t, errors.IsValidationError(err))
		}
		assert.False(t, blockSaved)
	})
}
