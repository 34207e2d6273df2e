package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/sanitizer"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CreateBlockCommand struct {
	TicketID uint
	Author   string
	Text     string
}

type CreateBlockResult struct {
	BlockID   uint      `json:"block_id"`
	TicketID  uint      `json:"ticket_id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateBlockUseCase struct {
	ticketRepo ticket.TicketRepository
	blockRepo  ticket.BlockRepository
	sanitizer  sanitizer.Service
	logger     logger.Interface
}

func NewCreateBlockUseCase(
	ticketRepo ticket.TicketRepository,
	blockRepo ticket.BlockRepository,
	sanitizer sanitizer.Service,
	logger logger.Interface,
) *CreateBlockUseCase {
	return &CreateBlockUseCase{
		ticketRepo: ticketRepo,
		blockRepo:  blockRepo,
		sanitizer:  sanitizer,
		logger:     logger,
	}
}

func (uc *CreateBlockUseCase) Execute(ctx context.Context, cmd CreateBlockCommand) (*CreateBlockResult, error) {
	uc.logger.Infow("executing create block use case", "ticket_id", cmd.TicketID, "author", cmd.Author)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create block command", "error", err)
		return nil, err
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	if !t.AcceptsBlocks() {
		return nil, errors.NewConflictError(fmt.Sprintf("ticket %d is closed", cmd.TicketID))
	}

	author := uc.sanitizer.Strict(cmd.Author)
	text := uc.sanitizer.Inline(cmd.Text)

	// Whitespace-only and format-only texts ("   ", "<b></b>") survive the
	// inline policy but carry no content.
	if strings.TrimSpace(uc.sanitizer.Strict(text)) == "" {
		return nil, errors.NewValidationError("text is empty after sanitization")
	}

	block, err := ticket.NewBlock(t.ID(), author, text, t.CreatedAt())
	if err != nil {
		uc.logger.Errorw("failed to create block entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.blockRepo.Save(ctx, block); err != nil {
		uc.logger.Errorw("failed to save block", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("block created successfully", "block_id", block.ID(), "ticket_id", cmd.TicketID)

	return &CreateBlockResult{
		BlockID:   block.ID(),
		TicketID:  block.TicketID(),
		Author:    block.Author(),
		Text:      block.Text(),
		CreatedAt: block.CreatedAt(),
	}, nil
}

func (uc *CreateBlockUseCase) validateCommand(cmd CreateBlockCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}

	if len(cmd.Author) == 0 {
		return errors.NewValidationError("author is required")
	}

	if len(cmd.Author) > ticket.MaxAuthorLength {
		return errors.NewValidationError("author exceeds maximum length of 20 characters")
	}

	if len(cmd.Text) == 0 {
		return errors.NewValidationError("text is required")
	}

	if len(cmd.Text) > ticket.MaxTextLength {
		return errors.NewValidationError("text exceeds maximum length of 5000 characters")
	}

	return nil
}
