package receipt

import "context"

// MockParser is a test double for Parser.
type MockParser struct {
	Result Partial
	Err    error
	Calls  int
}

// Parse returns the configured result.
func (m *MockParser) Parse(_ context.Context, _ []byte, _ string) (Partial, error) {
	m.Calls++
	if m.Err != nil {
		return Partial{}, m.Err
	}
	return m.Result, nil
}
