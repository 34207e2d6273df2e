package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type CreateBlockExecutor interface {
	Execute(ctx context.Context, cmd CreateBlockCommand) (*CreateBlockResult, error)
}

type ToggleStateExecutor interface {
	Execute(ctx context.Context, cmd ToggleStateCommand) (*ToggleStateResult, error)
}

type ChangeCategoryExecutor interface {
	Execute(ctx context.Context, cmd ChangeCategoryCommand) (*ChangeCategoryResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context) ([]*dto.TicketDTO, error)
}

type ListBlocksExecutor interface {
	Execute(ctx context.Context, query ListBlocksQuery) ([]*dto.BlockDTO, error)
}
