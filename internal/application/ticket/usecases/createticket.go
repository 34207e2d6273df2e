package usecases

import (
	"context"
	"strings"
	"time"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/infrastructure/sanitizer"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CreateTicketCommand struct {
	Title    string
	Body     string
	Category string
	OwnerID  uint
}

type CreateTicketResult struct {
	TicketID  uint      `json:"ticket_id"`
	Title     string    `json:"title"`
	State     string    `json:"state"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	sanitizer  sanitizer.Service
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	sanitizer sanitizer.Service,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		sanitizer:  sanitizer,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "owner_id", cmd.OwnerID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create ticket command", "error", err)
		return nil, err
	}

	// Sanitization happens here and nowhere else on the write path. Titles
	// are plain text; bodies keep the b/i/br inline subset.
	title := uc.sanitizer.Strict(cmd.Title)
	body := uc.sanitizer.Inline(cmd.Body)

	if strings.TrimSpace(uc.sanitizer.Strict(body)) == "" {
		return nil, errors.NewValidationError("body is empty after sanitization")
	}

	newTicket, err := ticket.NewTicket(
		title,
		body,
		vo.Category(cmd.Category),
		cmd.OwnerID,
	)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID())

	return &CreateTicketResult{
		TicketID:  newTicket.ID(),
		Title:     newTicket.Title(),
		State:     newTicket.State().String(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if len(cmd.Title) == 0 {
		return errors.NewValidationError("title is required")
	}

	if len(cmd.Title) > ticket.MaxTitleLength {
		return errors.NewValidationError("title exceeds maximum length of 100 characters")
	}

	if len(cmd.Body) == 0 {
		return errors.NewValidationError("body is required")
	}

	if len(cmd.Body) > ticket.MaxBodyLength {
		return errors.NewValidationError("body exceeds maximum length of 5000 characters")
	}

	if cmd.OwnerID == 0 {
		return errors.NewValidationError("owner ID is required")
	}

	if !vo.Category(cmd.Category).IsValid() {
		return errors.NewValidationError("invalid category")
	}

	return nil
}
