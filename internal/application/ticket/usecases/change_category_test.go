package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
)

func TestChangeCategoryUseCase_Execute(t *testing.T) {
	t.Run("admin changes category", func(t *testing.T) {
		updated := false
		repo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return openTicket(t, 1), nil
			},
			UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				updated = true
				return nil
			},
		}

		uc := NewChangeCategoryUseCase(repo, &mockLogger{})
		result, err := uc.Execute(context.Background(), ChangeCategoryCommand{
			TicketID:    1,
			NewCategory: "payment",
			IsAdmin:     true,
		})

		require.NoError(t, err)
		assert.Equal(t, "maintenance", result.OldCategory)
		assert.Equal(t, "payment", result.NewCategory)
		assert.True(t, updated)
	})

	t.Run("non-admin forbidden", func(t *testing.T) {
		fetched := false
		repo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				fetched = true
				return openTicket(t, 1), nil
			},
		}

		uc := NewChangeCategoryUseCase(repo, &mockLogger{})
		_, err := uc.Execute(context.Background(), ChangeCategoryCommand{
			TicketID:    1,
			NewCategory: "payment",
		})

		require.Error(t, err)
		assert.True(t, errors.IsForbiddenError(err))
		assert.False(t, fetched)
	})

	t.Run("same category is a no-op", func(t *testing.T) {
		updated := false
		repo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return openTicket(t, 1), nil
			},
			UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				updated = true
				return nil
			},
		}

		uc := NewChangeCategoryUseCase(repo, &mockLogger{})
		result, err := uc.Execute(context.Background(), ChangeCategoryCommand{
			TicketID:    1,
			NewCategory: "maintenance",
			IsAdmin:     true,
		})

		require.NoError(t, err)
		assert.Equal(t, result.OldCategory, result.NewCategory)
		assert.True(t, updated)
	})

	t.Run("invalid category rejected", func(t *testing.T) {
		uc := NewChangeCategoryUseCase(&mockTicketRepository{}, &mockLogger{})
		_, err := uc.Execute(context.Background(), ChangeCategoryCommand{
			TicketID:    1,
			NewCategory: "gardening",
			IsAdmin:     true,
		})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("unknown ticket not found", func(t *testing.T) {
		repo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return nil, errors.NewNotFoundError("ticket not found")
			},
		}

		uc := NewChangeCategoryUseCase(repo, &mockLogger{})
		_, err := uc.Execute(context.Background(), ChangeCategoryCommand{
			TicketID:    42,
			NewCategory: "payment",
			IsAdmin:     true,
		})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}
