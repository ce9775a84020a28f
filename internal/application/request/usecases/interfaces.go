package usecases

import "context"

type CreateRequestExecutor interface {
	Execute(ctx context.Context, cmd CreateRequestCommand) (*CreateRequestResult, error)
}

type GetRequestExecutor interface {
	Execute(ctx context.Context, query GetRequestQuery) (*RequestEntry, error)
}

type LinkItemExecutor interface {
	Execute(ctx context.Context, cmd LinkItemCommand) (*LinkItemResult, error)
}

type ListRequestsExecutor interface {
	Execute(ctx context.Context, query ListRequestsQuery) (*ListRequestsResult, error)
}

type SearchRequestsExecutor interface {
	Execute(ctx context.Context, query SearchRequestsQuery) (*SearchRequestsResult, error)
}

type SetStatusExecutor interface {
	Execute(ctx context.Context, cmd SetStatusCommand) (*SetStatusResult, error)
}

type ReconcileExecutor interface {
	Execute(ctx context.Context, cmd ReconcileCommand) (*ReconcileResult, error)
}

type ApproveZendeskUpdateExecutor interface {
	Execute(ctx context.Context, cmd ApproveZendeskUpdateCommand) (*ApproveZendeskUpdateResult, error)
}

type DeleteRequestExecutor interface {
	Execute(ctx context.Context, cmd DeleteRequestCommand) (*DeleteRequestResult, error)
}
