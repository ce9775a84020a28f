package reconciliation

import (
	"context"

	"briefing/internal/shared/logger"
)

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

func (m *mockLogger) Debug(msg string, args ...any)                      {}
func (m *mockLogger) Info(msg string, args ...any)                       {}
func (m *mockLogger) Warn(msg string, args ...any)                       {}
func (m *mockLogger) Error(msg string, args ...any)                      {}
func (m *mockLogger) With(args ...any) logger.Interface                  { return m }
func (m *mockLogger) Named(name string) logger.Interface                 { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{})    {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})     {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})     {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{})    {}
