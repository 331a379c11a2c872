package mocks

import (
	"context"
	"sync/atomic"
)

type GeneratorMock struct {
	GenerateFunc func(ctx context.Context, apiKey, prompt string) (string, error)

	calls atomic.Int32
}

func (m *GeneratorMock) Generate(ctx context.Context, apiKey, prompt string) (string, error) {
	m.calls.Add(1)
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, apiKey, prompt)
	}
	return "", nil
}

func (m *GeneratorMock) Calls() int {
	return int(m.calls.Load())
}
