package analysis

import (
	"context"
	"sync"

	"github.com/Veraticus/fraudwatch/internal/llm"
)

// mockClient records requests and replays a canned reply.
type mockClient struct {
	err      error
	requests []llm.Request
	response llm.Response
	mu       sync.Mutex
	block    bool
}

func (m *mockClient) Generate(ctx context.Context, req llm.Request) (llm.Response, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	if m.block {
		<-ctx.Done()
		return llm.Response{}, ctx.Err()
	}
	if m.err != nil {
		return llm.Response{}, m.err
	}
	return m.response, nil
}

func (m *mockClient) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}
