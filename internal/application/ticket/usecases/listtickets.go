package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/logger"
)

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// Execute returns every ticket, newest first, with the owner's username
// denormalized onto each entry. The listing is the public landing view, so
// there is no caller filtering here.
func (uc *ListTicketsUseCase) Execute(ctx context.Context) ([]*dto.TicketDTO, error) {
	tickets, err := uc.ticketRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	result := dto.TicketsToDTO(tickets)

	usernames := make(map[uint]string)
	for _, t := range result {
		name, ok := usernames[t.OwnerID]
		if !ok {
			owner, err := uc.userRepo.GetByID(ctx, t.OwnerID)
			if err == nil && owner != nil {
				name = owner.Username()
			}
			// A missing owner leaves the username blank rather than
			// failing the whole listing.
			usernames[t.OwnerID] = name
		}
		t.OwnerUsername = name
	}

	return result, nil
}
