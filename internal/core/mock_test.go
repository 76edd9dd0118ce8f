package core

import (
	"context"

	"github.com/qanoonlab/qanoon/internal/llm"
)

type MockDelegate struct {
	Response      string
	ResponseQueue []string
	Err           error

	Calls       int
	LastSystem  string
	LastHistory []llm.Message
	LastQuery   string
}

func (m *MockDelegate) Chat(ctx context.Context, system string, history []llm.Message, query string) (string, error) {
	m.Calls++
	m.LastSystem = system
	m.LastHistory = history
	m.LastQuery = query

	if m.Err != nil {
		return "", m.Err
	}
	if len(m.ResponseQueue) > 0 {
		resp := m.ResponseQueue[0]
		m.ResponseQueue = m.ResponseQueue[1:]
		return resp, nil
	}
	return m.Response, nil
}
