package repository

import (
	"context"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	apperrors "helpdesk/internal/shared/errors"
)

type BlockRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewBlockRepository(db *gorm.DB) *BlockRepository {
	return &BlockRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *BlockRepository) Save(ctx context.Context, b *ticket.Block) error {
	model := r.mapper.BlockToModel(b)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return apperrors.NewStorageError("failed to save block", err.Error())
	}

	if err := b.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *BlockRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Block, error) {
	var blockModels []models.BlockModel

	if err := r.db.WithContext(ctx).
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&blockModels).Error; err != nil {
		return nil, apperrors.NewStorageError("failed to list blocks", err.Error())
	}

	blocks := make([]*ticket.Block, 0, len(blockModels))
	for i := range blockModels {
		b, err := r.mapper.BlockToDomain(&blockModels[i])
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}

	return blocks, nil
}
