package mappers

import (
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between ticket domain entities and
// persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	BlockToModel(b *ticket.Block) *models.BlockModel
	BlockToDomain(model *models.BlockModel) (*ticket.Block, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:        t.ID(),
		Title:     t.Title(),
		Body:      t.Body(),
		Category:  t.Category().String(),
		State:     t.State().String(),
		OwnerID:   t.OwnerID(),
		CreatedAt: t.CreatedAt().UnixMilli(),
		UpdatedAt: t.UpdatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	category, err := vo.NewCategory(model.Category)
	if err != nil {
		return nil, err
	}
	state, err := vo.NewTicketState(model.State)
	if err != nil {
		return nil, err
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Title,
		model.Body,
		category,
		state,
		model.OwnerID,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *TicketMapperImpl) BlockToModel(b *ticket.Block) *models.BlockModel {
	return &models.BlockModel{
		ID:        b.ID(),
		TicketID:  b.TicketID(),
		Author:    b.Author(),
		Text:      b.Text(),
		CreatedAt: b.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) BlockToDomain(model *models.BlockModel) (*ticket.Block, error) {
	return ticket.ReconstructBlock(
		model.ID,
		model.TicketID,
		model.Author,
		model.Text,
		millisToTime(model.CreatedAt),
	)
}
