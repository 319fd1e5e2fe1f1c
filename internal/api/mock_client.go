package api

// MockQueryClient is a mock implementation of QueryClientInterface for testing
type MockQueryClient struct {
	// Mock return values
	QueryVal    string
	QueryErr    error
	EndpointVal string

	// Call counters/recorders
	QueryCalled int
	CloseCalled bool
	LastText    string

	// Optional hook invoked instead of the canned return values
	QueryFunc func(text string) (string, error)
}

// Ensure MockQueryClient implements QueryClientInterface
var _ QueryClientInterface = (*MockQueryClient)(nil)

func (m *MockQueryClient) Query(text string) (string, error) {
	m.QueryCalled++
	m.LastText = text
	if m.QueryFunc != nil {
		return m.QueryFunc(text)
	}
	return m.QueryVal, m.QueryErr
}

func (m *MockQueryClient) Endpoint() string {
	return m.EndpointVal
}

func (m *MockQueryClient) Close() {
	m.CloseCalled = true
}
