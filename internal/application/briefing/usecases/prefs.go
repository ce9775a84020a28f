package usecases

import (
	"context"
	"time"

	"briefing/internal/domain/briefing"
	"briefing/internal/shared/errors"
	"briefing/internal/shared/logger"
)

type PrefEntry struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

type GetPrefsResult struct {
	Prefs []PrefEntry
}

type GetPrefsUseCase struct {
	prefRepo briefing.PrefRepository
	logger   logger.Interface
}

func NewGetPrefsUseCase(prefRepo briefing.PrefRepository, logger logger.Interface) *GetPrefsUseCase {
	return &GetPrefsUseCase{prefRepo: prefRepo, logger: logger}
}

func (uc *GetPrefsUseCase) Execute(ctx context.Context) (*GetPrefsResult, error) {
	prefs, err := uc.prefRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load preferences", "error", err)
		return nil, err
	}

	entries := make([]PrefEntry, 0, len(prefs))
	for _, pref := range prefs {
		entries = append(entries, PrefEntry{
			Key:       pref.Key,
			Value:     pref.Value,
			UpdatedAt: pref.UpdatedAt,
		})
	}

	return &GetPrefsResult{Prefs: entries}, nil
}

type SetPrefCommand struct {
	Key   string
	Value string
}

type SetPrefUseCase struct {
	prefRepo briefing.PrefRepository
	logger   logger.Interface
}

func NewSetPrefUseCase(prefRepo briefing.PrefRepository, logger logger.Interface) *SetPrefUseCase {
	return &SetPrefUseCase{prefRepo: prefRepo, logger: logger}
}

func (uc *SetPrefUseCase) Execute(ctx context.Context, cmd SetPrefCommand) error {
	if cmd.Key == "" {
		return errors.NewValidationError("preference key is required")
	}
	if len(cmd.Key) > 100 {
		return errors.NewValidationError("preference key exceeds maximum length of 100 characters")
	}

	if err := uc.prefRepo.Upsert(ctx, cmd.Key, cmd.Value); err != nil {
		uc.logger.Errorw("failed to save preference", "key", cmd.Key, "error", err)
		return err
	}

	uc.logger.Infow("preference saved", "key", cmd.Key)
	return nil
}

type DeletePrefCommand struct {
	Key string
}

type DeletePrefResult struct {
	Deleted bool
}

type DeletePrefUseCase struct {
	prefRepo briefing.PrefRepository
	logger   logger.Interface
}

func NewDeletePrefUseCase(prefRepo briefing.PrefRepository, logger logger.Interface) *DeletePrefUseCase {
	return &DeletePrefUseCase{prefRepo: prefRepo, logger: logger}
}

func (uc *DeletePrefUseCase) Execute(ctx context.Context, cmd DeletePrefCommand) (*DeletePrefResult, error) {
	if cmd.Key == "" {
		return nil, errors.NewValidationError("preference key is required")
	}

	deleted, err := uc.prefRepo.Delete(ctx, cmd.Key)
	if err != nil {
		uc.logger.Errorw("failed to delete preference", "key", cmd.Key, "error", err)
		return nil, err
	}

	if !deleted {
		return nil, errors.NewNotFoundError("preference not found")
	}

	return &DeletePrefResult{Deleted: true}, nil
}
