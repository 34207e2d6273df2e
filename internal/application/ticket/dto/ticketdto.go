package dto

import (
	"time"

	"helpdesk/internal/domain/ticket"
)

type TicketDTO struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Body          string    `json:"body"`
	Category      string    `json:"category"`
	State         string    `json:"state"`
	OwnerID       uint      `json:"owner_id"`
	OwnerUsername string    `json:"owner_username,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type BlockDTO struct {
	ID        uint      `json:"id"`
	TicketID  uint      `json:"ticket_id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

func TicketToDTO(t *ticket.Ticket) *TicketDTO {
	return &TicketDTO{
		ID:        t.ID(),
		Title:     t.Title(),
		Body:      t.Body(),
		Category:  t.Category().String(),
		State:     t.State().String(),
		OwnerID:   t.OwnerID(),
		CreatedAt: t.CreatedAt(),
		UpdatedAt: t.UpdatedAt(),
	}
}

func TicketsToDTO(tickets []*ticket.Ticket) []*TicketDTO {
	result := make([]*TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		result = append(result, TicketToDTO(t))
	}
	return result
}

func BlockToDTO(b *ticket.Block) *BlockDTO {
	return &BlockDTO{
		ID:        b.ID(),
		TicketID:  b.TicketID(),
		Author:    b.Author(),
		Text:      b.Text(),
		CreatedAt: b.CreatedAt(),
	}
}

func BlocksToDTO(blocks []*ticket.Block) []*BlockDTO {
	result := make([]*BlockDTO, 0, len(blocks))
	for _, b := range blocks {
		result = append(result, BlockToDTO(b))
	}
	return result
}
