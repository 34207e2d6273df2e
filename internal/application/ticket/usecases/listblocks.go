package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ListBlocksQuery struct {
	TicketID uint
}

type ListBlocksUseCase struct {
	ticketRepo ticket.TicketRepository
	blockRepo  ticket.BlockRepository
	logger     logger.Interface
}

func NewListBlocksUseCase(
	ticketRepo ticket.TicketRepository,
	blockRepo ticket.BlockRepository,
	logger logger.Interface,
) *ListBlocksUseCase {
	return &ListBlocksUseCase{
		ticketRepo: ticketRepo,
		blockRepo:  blockRepo,
		logger:     logger,
	}
}

// Execute returns the ticket's thread oldest first. The ticket is loaded
// first so an unknown ID yields not found rather than an empty thread.
func (uc *ListBlocksUseCase) Execute(ctx context.Context, query ListBlocksQuery) ([]*dto.BlockDTO, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	if _, err := uc.ticketRepo.GetByID(ctx, query.TicketID); err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", query.TicketID, "error", err)
		return nil, err
	}

	blocks, err := uc.blockRepo.GetByTicketID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to list blocks", "ticket_id", query.TicketID, "error", err)
		return nil, err
	}

	return dto.BlocksToDTO(blocks), nil
}
