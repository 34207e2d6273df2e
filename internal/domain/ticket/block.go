package ticket

import (
	"fmt"
	"time"

	"helpdesk/internal/shared/biztime"
)

const (
	MaxAuthorLength = 20
	MaxTextLength   = 5000
)

// Block is a follow-up message appended to a ticket's thread. Blocks are
// immutable once created; the author is the denormalized username of the
// caller at creation time.
type Block struct {
	id        uint
	ticketID  uint
	author    string
	text      string
	createdAt time.Time
}

func NewBlock(
	ticketID uint,
	author string,
	text string,
	ticketCreatedAt time.Time,
) (*Block, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(author) == 0 {
		return nil, fmt.Errorf("author is required")
	}
	if len(author) > MaxAuthorLength {
		return nil, fmt.Errorf("author exceeds maximum length of %d characters", MaxAuthorLength)
	}
	if len(text) == 0 {
		return nil, fmt.Errorf("text cannot be empty")
	}
	if len(text) > MaxTextLength {
		return nil, fmt.Errorf("text exceeds maximum length of %d characters", MaxTextLength)
	}

	now := biztime.NowUTC()

	// Timestamps are server-assigned, so this should always hold; it is
	// re-checked because a block predating its ticket breaks thread order.
	if now.Before(ticketCreatedAt) {
		return nil, fmt.Errorf("block date must be at or after ticket creation date")
	}

	return &Block{
		ticketID:  ticketID,
		author:    author,
		text:      text,
		createdAt: now,
	}, nil
}

func ReconstructBlock(
	id uint,
	ticketID uint,
	author string,
	text string,
	createdAt time.Time,
) (*Block, error) {
	if id == 0 {
		return nil, fmt.Errorf("block ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(author) == 0 {
		return nil, fmt.Errorf("author is required")
	}

	return &Block{
		id:        id,
		ticketID:  ticketID,
		author:    author,
		text:      text,
		createdAt: createdAt,
	}, nil
}

func (b *Block) ID() uint {
	return b.id
}

func (b *Block) TicketID() uint {
	return b.ticketID
}

func (b *Block) Author() string {
	return b.author
}

func (b *Block) Text() string {
	return b.text
}

func (b *Block) CreatedAt() time.Time {
	return b.createdAt
}

func (b *Block) SetID(id uint) error {
	if b.id != 0 {
		return fmt.Errorf("block ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("block ID cannot be zero")
	}
	b.id = id
	return nil
}
