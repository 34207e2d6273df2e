package ticket

import (
	"context"
)

type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	// List returns all tickets ordered by creation date descending.
	List(ctx context.Context) ([]*Ticket, error)
}

type BlockRepository interface {
	Save(ctx context.Context, block *Block) error
	// GetByTicketID returns the ticket's blocks ordered by creation date
	// ascending.
	GetByTicketID(ctx context.Context, ticketID uint) ([]*Block, error)
}
