package usecases

import "context"

type AddFollowUpExecutor interface {
	Execute(ctx context.Context, cmd AddFollowUpCommand) (*AddFollowUpResult, error)
}

type ListFollowUpsExecutor interface {
	Execute(ctx context.Context, query ListFollowUpsQuery) (*ListFollowUpsResult, error)
}

type ResolveFollowUpExecutor interface {
	Execute(ctx context.Context, cmd ResolveFollowUpCommand) (*ResolveFollowUpResult, error)
}
