package usecases

import (
	"context"
	"time"

	"briefing/internal/domain/briefing"
	"briefing/internal/domain/channel"
	"briefing/internal/shared/logger"
)

type mockStateRepository struct {
	GetFunc         func(ctx context.Context, ch channel.Channel) (*briefing.ChannelState, error)
	GetAllFunc      func(ctx context.Context) ([]*briefing.ChannelState, error)
	SeedFunc        func(ctx context.Context, channels []channel.Channel) error
	MarkBriefedFunc func(ctx context.Context, ch channel.Channel, ts time.Time) error
	ResetFunc       func(ctx context.Context, ch channel.Channel) error
}

func (m *mockStateRepository) Get(ctx context.Context, ch channel.Channel) (*briefing.ChannelState, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, ch)
	}
	return nil, nil
}

func (m *mockStateRepository) GetAll(ctx context.Context) ([]*briefing.ChannelState, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockStateRepository) Seed(ctx context.Context, channels []channel.Channel) error {
	if m.SeedFunc != nil {
		return m.SeedFunc(ctx, channels)
	}
	return nil
}

func (m *mockStateRepository) MarkBriefed(ctx context.Context, ch channel.Channel, ts time.Time) error {
	if m.MarkBriefedFunc != nil {
		return m.MarkBriefedFunc(ctx, ch, ts)
	}
	return nil
}

func (m *mockStateRepository) Reset(ctx context.Context, ch channel.Channel) error {
	if m.ResetFunc != nil {
		return m.ResetFunc(ctx, ch)
	}
	return nil
}

type mockSeenRepository struct {
	FindFunc            func(ctx context.Context, ch channel.Channel, itemKey string) (*briefing.SeenRecord, error)
	MarkSeenFunc        func(ctx context.Context, record *briefing.SeenRecord) error
	ListByChannelFunc   func(ctx context.Context, ch channel.Channel, limit int) ([]*briefing.SeenRecord, error)
	DeleteByChannelFunc func(ctx context.Context, ch channel.Channel) error
	PruneOlderThanFunc  func(ctx context.Context, ch channel.Channel, cutoff time.Time) (int64, error)
}

func (m *mockSeenRepository) Find(ctx context.Context, ch channel.Channel, itemKey string) (*briefing.SeenRecord, error) {
	if m.FindFunc != nil {
		return m.FindFunc(ctx, ch, itemKey)
	}
	return nil, nil
}

func (m *mockSeenRepository) MarkSeen(ctx context.Context, record *briefing.SeenRecord) error {
	if m.MarkSeenFunc != nil {
		return m.MarkSeenFunc(ctx, record)
	}
	return nil
}

func (m *mockSeenRepository) ListByChannel(ctx context.Context, ch channel.Channel, limit int) ([]*briefing.SeenRecord, error) {
	if m.ListByChannelFunc != nil {
		return m.ListByChannelFunc(ctx, ch, limit)
	}
	return nil, nil
}

func (m *mockSeenRepository) DeleteByChannel(ctx context.Context, ch channel.Channel) error {
	if m.DeleteByChannelFunc != nil {
		return m.DeleteByChannelFunc(ctx, ch)
	}
	return nil
}

func (m *mockSeenRepository) PruneOlderThan(ctx context.Context, ch channel.Channel, cutoff time.Time) (int64, error) {
	if m.PruneOlderThanFunc != nil {
		return m.PruneOlderThanFunc(ctx, ch, cutoff)
	}
	return 0, nil
}

type mockPrefRepository struct {
	GetAllFunc func(ctx context.Context) ([]briefing.Pref, error)
	UpsertFunc func(ctx context.Context, key, value string) error
	DeleteFunc func(ctx context.Context, key string) (bool, error)
}

func (m *mockPrefRepository) GetAll(ctx context.Context) ([]briefing.Pref, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockPrefRepository) Upsert(ctx context.Context, key, value string) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, key, value)
	}
	return nil
}

func (m *mockPrefRepository) Delete(ctx context.Context, key string) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	return false, nil
}

type mockMemoryRepository struct {
	GetFunc func(ctx context.Context) (*briefing.Memory, error)
	SetFunc func(ctx context.Context, content string) error
}

func (m *mockMemoryRepository) Get(ctx context.Context) (*briefing.Memory, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	return nil, nil
}

func (m *mockMemoryRepository) Set(ctx context.Context, content string) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, content)
	}
	return nil
}

// mockTxManager runs the function directly without a real transaction.
type mockTxManager struct{}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                        {}
func (m *mockLogger) Info(msg string, args ...any)                         {}
func (m *mockLogger) Warn(msg string, args ...any)                         {}
func (m *mockLogger) Error(msg string, args ...any)                        {}
func (m *mockLogger) With(args ...any) logger.Interface                    { return m }
func (m *mockLogger) Named(name string) logger.Interface                   { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{})      {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})       {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})       {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{})      {}
