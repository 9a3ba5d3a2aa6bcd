package api

import (
	"context"

	"github.com/ethicamind/ethicamind-cli/internal/models"
)

// MockChatClient is a mock implementation of ChatClient for testing
type MockChatClient struct {
	// Mock return values
	SendVal *models.Reply
	SendErr error

	// Call counters/recorders
	SendCalled int
	LastSent   string
}

// Ensure MockChatClient implements ChatClient
var _ ChatClient = (*MockChatClient)(nil)

func (m *MockChatClient) Send(ctx context.Context, message string) (*models.Reply, error) {
	m.SendCalled++
	m.LastSent = message
	return m.SendVal, m.SendErr
}
