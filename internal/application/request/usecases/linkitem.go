package usecases

import (
	"context"

	"briefing/internal/domain/channel"
	"briefing/internal/domain/request"
	"briefing/internal/shared/errors"
	"briefing/internal/shared/logger"
)

type LinkItemCommand struct {
	RequestID uint
	Channel   string
	ItemID    string
	Label     string
}

type LinkItemResult struct {
	RequestID     uint
	ItemID        uint
	AlreadyLinked bool
}

// LinkItemUseCase attaches a channel item to a request. Linking the
// same item twice reports success with AlreadyLinked set instead of
// failing, so retried webhooks stay harmless.
type LinkItemUseCase struct {
	requestRepo request.Repository
	logger      logger.Interface
}

func NewLinkItemUseCase(
	requestRepo request.Repository,
	logger logger.Interface,
) *LinkItemUseCase {
	return &LinkItemUseCase{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *LinkItemUseCase) Execute(ctx context.Context, cmd LinkItemCommand) (*LinkItemResult, error) {
	if cmd.RequestID == 0 {
		return nil, errors.NewValidationError("request ID is required")
	}
	if cmd.ItemID == "" {
		return nil, errors.NewValidationError("item ID is required")
	}

	ch, err := channel.NewChannel(cmd.Channel)
	if err != nil {
		return nil, errors.NewValidationError("invalid channel")
	}

	req, err := uc.requestRepo.GetByID(ctx, cmd.RequestID)
	if err != nil {
		uc.logger.Errorw("failed to load request", "request_id", cmd.RequestID, "error", err)
		return nil, err
	}
	if req == nil {
		return nil, errors.NewNotFoundError("request not found")
	}

	alreadyLinked := false
	for _, existing := range req.Items() {
		if existing.Channel() == ch && existing.ItemID() == cmd.ItemID {
			alreadyLinked = true
			break
		}
	}

	item, err := req.AttachItem(ch, cmd.ItemID, cmd.Label)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if !alreadyLinked {
		if err := uc.requestRepo.SaveItem(ctx, item); err != nil {
			uc.logger.Errorw("failed to save request item",
				"request_id", req.ID(), "channel", ch.String(), "item_id", cmd.ItemID, "error", err)
			return nil, err
		}
		uc.logger.Infow("item linked",
			"request_id", req.ID(), "channel", ch.String(), "item_id", cmd.ItemID)
	}

	return &LinkItemResult{
		RequestID:     req.ID(),
		ItemID:        item.ID(),
		AlreadyLinked: alreadyLinked,
	}, nil
}
