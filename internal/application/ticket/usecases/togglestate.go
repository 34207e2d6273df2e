package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ToggleStateCommand struct {
	TicketID uint
	CallerID uint
	IsAdmin  bool
}

type ToggleStateResult struct {
	TicketID  uint      `json:"ticket_id"`
	OldState  string    `json:"old_state"`
	NewState  string    `json:"new_state"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ToggleStateUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewToggleStateUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *ToggleStateUseCase {
	return &ToggleStateUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ToggleStateUseCase) Execute(ctx context.Context, cmd ToggleStateCommand) (*ToggleStateResult, error) {
	uc.logger.Infow("executing toggle state use case", "ticket_id", cmd.TicketID, "caller_id", cmd.CallerID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid toggle state command", "error", err)
		return nil, err
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	oldState := t.State()

	if err := t.ToggleState(cmd.CallerID, cmd.IsAdmin); err != nil {
		uc.logger.Warnw("state toggle denied",
			"ticket_id", cmd.TicketID,
			"caller_id", cmd.CallerID,
			"state", oldState)
		return nil, errors.NewForbiddenError("you are not allowed to change the state of this ticket")
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket state toggled",
		"ticket_id", cmd.TicketID,
		"old_state", oldState,
		"new_state", t.State())

	return &ToggleStateResult{
		TicketID:  t.ID(),
		OldState:  oldState.String(),
		NewState:  t.State().String(),
		UpdatedAt: t.UpdatedAt(),
	}, nil
}

func (uc *ToggleStateUseCase) validateCommand(cmd ToggleStateCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}

	if cmd.CallerID == 0 {
		return errors.NewValidationError("caller ID is required")
	}

	return nil
}
