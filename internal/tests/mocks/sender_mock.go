package mocks

import (
	"context"
	"sync"

	"promptmail/internal/email"
)

type SenderMock struct {
	SendFunc func(ctx context.Context, creds email.Credentials, msg email.Message) error

	mu    sync.Mutex
	Sent  []email.Message
	Creds []email.Credentials
}

func (m *SenderMock) Send(ctx context.Context, creds email.Credentials, msg email.Message) error {
	m.mu.Lock()
	m.Sent = append(m.Sent, msg)
	m.Creds = append(m.Creds, creds)
	m.mu.Unlock()
	if m.SendFunc != nil {
		return m.SendFunc(ctx, creds, msg)
	}
	return nil
}

func (m *SenderMock) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Sent)
}
