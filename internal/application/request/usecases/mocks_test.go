package usecases

import (
	"context"

	"briefing/internal/domain/request"
	vo "briefing/internal/domain/request/valueobjects"
	"briefing/internal/shared/logger"
)

type mockRequestRepository struct {
	SaveFunc         func(ctx context.Context, r *request.Request) error
	GetByIDFunc      func(ctx context.Context, id uint) (*request.Request, error)
	ListFunc         func(ctx context.Context, filter request.Filter) ([]*request.Request, error)
	SearchFunc       func(ctx context.Context, text string) ([]*request.Request, error)
	UpdateStatusFunc func(ctx context.Context, r *request.Request, expected vo.Status) error
	SaveItemFunc     func(ctx context.Context, item *request.Item) error
	DeleteFunc       func(ctx context.Context, id uint) (bool, error)
}

func (m *mockRequestRepository) Save(ctx context.Context, r *request.Request) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, r)
	}
	return r.SetID(1)
}

func (m *mockRequestRepository) GetByID(ctx context.Context, id uint) (*request.Request, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockRequestRepository) List(ctx context.Context, filter request.Filter) ([]*request.Request, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockRequestRepository) Search(ctx context.Context, text string) ([]*request.Request, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, text)
	}
	return nil, nil
}

func (m *mockRequestRepository) UpdateStatus(ctx context.Context, r *request.Request, expected vo.Status) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, r, expected)
	}
	return nil
}

func (m *mockRequestRepository) SaveItem(ctx context.Context, item *request.Item) error {
	if m.SaveItemFunc != nil {
		return m.SaveItemFunc(ctx, item)
	}
	if item.ID() == 0 {
		return item.SetID(1)
	}
	return nil
}

func (m *mockRequestRepository) Delete(ctx context.Context, id uint) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return false, nil
}

type mockZendeskGateway struct {
	GetTicketStatusFunc    func(ctx context.Context, ticketID string) (string, error)
	UpdateTicketStatusFunc func(ctx context.Context, ticketID, status string) error
}

func (m *mockZendeskGateway) GetTicketStatus(ctx context.Context, ticketID string) (string, error) {
	if m.GetTicketStatusFunc != nil {
		return m.GetTicketStatusFunc(ctx, ticketID)
	}
	return "open", nil
}

func (m *mockZendeskGateway) UpdateTicketStatus(ctx context.Context, ticketID, status string) error {
	if m.UpdateTicketStatusFunc != nil {
		return m.UpdateTicketStatusFunc(ctx, ticketID, status)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
