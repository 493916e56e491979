package mocks

import (
	"context"
	"sync"
)

// MockIntentOracle is a mock implementation of IntentOracle for testing
type MockIntentOracle struct {
	mu sync.Mutex

	// Response is returned verbatim from Infer
	Response []byte

	// Err, when set, is returned instead of Response
	Err error

	// InferFn, when set, overrides the canned Response/Err
	InferFn func(ctx context.Context, query string) ([]byte, error)

	// Calls records every query passed to Infer
	Calls []string
}

// NewMockIntentOracle creates a new MockIntentOracle
func NewMockIntentOracle() *MockIntentOracle {
	return &MockIntentOracle{}
}

func (m *MockIntentOracle) Infer(ctx context.Context, query string) ([]byte, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, query)
	fn := m.InferFn
	resp, err := m.Response, m.Err
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, query)
	}
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (m *MockIntentOracle) Model() string {
	return "mock-oracle"
}

// CallCount returns how many times Infer was invoked
func (m *MockIntentOracle) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
