package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/sanitizer"
	"helpdesk/internal/shared/errors"
)

func TestCreateTicketUseCase_Execute(t *testing.T) {
	tests := []struct {
		name    string
		cmd     CreateTicketCommand
		saveErr error
		wantErr bool
		errType errors.ErrorType
	}{
		{
			name: "valid ticket",
			cmd: CreateTicketCommand{
				Title:    "Printer jam",
				Body:     "Paper stuck in tray 2",
				Category: "maintenance",
				OwnerID:  1,
			},
		},
		{
			name: "missing title",
			cmd: CreateTicketCommand{
				Body:     "no title",
				Category: "inquiry",
				OwnerID:  1,
			},
			wantErr: true,
			errType: errors.ErrorTypeValidation,
		},
		{
			name: "title too long",
			cmd: CreateTicketCommand{
				Title:    string(make([]byte, 101)),
				Body:     "body",
				Category: "inquiry",
				OwnerID:  1,
			},
			wantErr: true,
			errType: errors.ErrorTypeValidation,
		},
		{
			name: "unknown category",
			cmd: CreateTicketCommand{
				Title:    "Printer jam",
				Body:     "Paper stuck",
				Category: "hardware",
				OwnerID:  1,
			},
			wantErr: true,
			errType: errors.ErrorTypeValidation,
		},
		{
			name: "missing owner",
			cmd: CreateTicketCommand{
				Title:    "Printer jam",
				Body:     "Paper stuck",
				Category: "maintenance",
			},
			wantErr: true,
			errType: errors.ErrorTypeValidation,
		},
		{
			name: "storage failure propagates",
			cmd: CreateTicketCommand{
				Title:    "Printer jam",
				Body:     "Paper stuck",
				Category: "maintenance",
				OwnerID:  1,
			},
			saveErr: errors.NewStorageError("database is gone"),
			wantErr: true,
			errType: errors.ErrorTypeStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockTicketRepository{
				SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
					if tt.saveErr != nil {
						return tt.saveErr
					}
					return tk.SetID(42)
				},
			}

			uc := NewCreateTicketUseCase(repo, &mockSanitizer{}, &mockLogger{})
			result, err := uc.Execute(context.Background(), tt.cmd)

			if tt.wantErr {
				require.Error(t, err)
				appErr := errors.GetAppError(err)
				require.NotNil(t, appErr)
				assert.Equal(t, tt.errType, appErr.Type)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, uint(42), result.TicketID)
			assert.Equal(t, "open", result.State)
			assert.False(t, result.CreatedAt.IsZero())
		})
	}
}

func TestCreateTicketUseCase_SanitizesBeforePersisting(t *testing.T) {
	var saved *ticket.Ticket
	repo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			saved = tk
			return tk.SetID(1)
		},
	}

	uc := NewCreateTicketUseCase(repo, sanitizer.New(), &mockLogger{})

	cmd := CreateTicketCommand{
		Title:    `Broken <script>alert("x")</script>monitor`,
		Body:     `The screen is <b>black</b> and <img src=x onerror=alert(1)> smells like smoke`,
		Category: "maintenance",
		OwnerID:  7,
	}

	result, err := uc.Execute(context.Background(), cmd)
	require.NoError(t, err)
	require.NotNil(t, saved)

	assert.Equal(t, "Broken monitor", saved.Title())
	assert.Equal(t, "The screen is <b>black</b> and  smells like smoke", saved.Body())
	assert.Equal(t, saved.Title(), result.Title)
}

func TestCreateTicketUseCase_RejectsBodyWithNoContent(t *testing.T) {
	ticketSaved := false
	repo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			ticketSaved = true
			return nil
		},
	}

	uc := NewCreateTicketUseCase(repo, sanitizer.New(), &mockLogger{})

	for _, body := range []string{"   ", "<b></b>", "<i>\n</i>"} {
		_, err := uc.Execute(context.Background(), CreateTicketCommand{
			Title:    "Valid title",
			Body:     body,
			Category: "inquiry",
			OwnerID:  7,
		})
		require.Error(t, err, "body %q should be rejected", body)
		assert.True(t, errors.IsValidationError(err))
	}
	assert.False(t, ticketSaved)
}
