package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ChangeCategoryCommand struct {
	TicketID    uint
	NewCategory string
	IsAdmin     bool
}

type ChangeCategoryResult struct {
	TicketID    uint      `json:"ticket_id"`
	OldCategory string    `json:"old_category"`
	NewCategory string    `json:"new_category"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ChangeCategoryUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewChangeCategoryUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *ChangeCategoryUseCase {
	return &ChangeCategoryUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ChangeCategoryUseCase) Execute(ctx context.Context, cmd ChangeCategoryCommand) (*ChangeCategoryResult, error) {
	uc.logger.Infow("executing change category use case", "ticket_id", cmd.TicketID, "new_category", cmd.NewCategory)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid change category command", "error", err)
		return nil, err
	}

	// Recategorization is an admin action regardless of ownership.
	if !cmd.IsAdmin {
		return nil, errors.NewForbiddenError("only administrators may change ticket categories")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	oldCategory := t.Category()

	if err := t.ChangeCategory(vo.Category(cmd.NewCategory)); err != nil {
		uc.logger.Errorw("failed to change ticket category", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket category changed",
		"ticket_id", cmd.TicketID,
		"old_category", oldCategory,
		"new_category", t.Category())

	return &ChangeCategoryResult{
		TicketID:    t.ID(),
		OldCategory: oldCategory.String(),
		NewCategory: t.Category().String(),
		UpdatedAt:   t.UpdatedAt(),
	}, nil
}

func (uc *ChangeCategoryUseCase) validateCommand(cmd ChangeCategoryCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}

	if !vo.Category(cmd.NewCategory).IsValid() {
		return errors.NewValidationError("invalid category")
	}

	return nil
}
