package usecases

import "context"

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type LogoutExecutor interface {
	Execute(ctx context.Context, cmd LogoutCommand) error
}

type CurrentUserExecutor interface {
	Execute(ctx context.Context, query CurrentUserQuery) (*CurrentUserResult, error)
}

type IssueAccessTokenExecutor interface {
	Execute(ctx context.Context, query IssueAccessTokenQuery) (*IssueAccessTokenResult, error)
}
