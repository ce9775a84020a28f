package usecases

import "context"

// TransactionManager runs a function inside a database transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type GetSummaryExecutor interface {
	Execute(ctx context.Context) (*GetSummaryResult, error)
}

type GetChannelStateExecutor interface {
	Execute(ctx context.Context, query GetChannelStateQuery) (*GetChannelStateResult, error)
}

type MarkBriefedExecutor interface {
	Execute(ctx context.Context, cmd MarkBriefedCommand) (*MarkBriefedResult, error)
}

type CheckNewExecutor interface {
	Execute(ctx context.Context, query CheckNewQuery) (*CheckNewResult, error)
}

type ResetChannelExecutor interface {
	Execute(ctx context.Context, cmd ResetChannelCommand) (*ResetChannelResult, error)
}

type PruneSeenExecutor interface {
	Execute(ctx context.Context) (*PruneSeenResult, error)
}

type GetPrefsExecutor interface {
	Execute(ctx context.Context) (*GetPrefsResult, error)
}

type SetPrefExecutor interface {
	Execute(ctx context.Context, cmd SetPrefCommand) error
}

type DeletePrefExecutor interface {
	Execute(ctx context.Context, cmd DeletePrefCommand) (*DeletePrefResult, error)
}

type GetMemoryExecutor interface {
	Execute(ctx context.Context) (*GetMemoryResult, error)
}

type SetMemoryExecutor interface {
	Execute(ctx context.Context, cmd SetMemoryCommand) error
}
