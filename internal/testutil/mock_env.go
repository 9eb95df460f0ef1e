package testutil

import "sync/atomic"

// MockEnvironment is a mock implementation of tint.Environment for testing.
// It counts probe calls so tests can assert memoization.
type MockEnvironment struct {
	HasConsoleFunc          func() bool
	OperatingSystemNameFunc func() string

	ConsoleCalls atomic.Int32
	OSNameCalls  atomic.Int32
}

// NewMockEnvironment returns a MockEnvironment reporting console and osName.
func NewMockEnvironment(console bool, osName string) *MockEnvironment {
	return &MockEnvironment{
		HasConsoleFunc:          func() bool { return console },
		OperatingSystemNameFunc: func() string { return osName },
	}
}

func (m *MockEnvironment) HasConsole() bool {
	m.ConsoleCalls.Add(1)
	if m.HasConsoleFunc != nil {
		return m.HasConsoleFunc()
	}
	return false
}

func (m *MockEnvironment) OperatingSystemName() string {
	m.OSNameCalls.Add(1)
	if m.OperatingSystemNameFunc != nil {
		return m.OperatingSystemNameFunc()
	}
	return ""
}
