package ai

import "context"

// Compile-time interface check.
var _ Generator = (*MockGenerator)(nil)

// MockGenerator is a canned Generator for tests and local debugging. It
// records every request it receives and returns the configured response or
// error without calling any external service.
type MockGenerator struct {
	Response *Response
	Err      error
	Requests []Request
}

func (m *MockGenerator) Generate(_ context.Context, req Request) (*Response, error) {
	m.Requests = append(m.Requests, req)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Response, nil
}
