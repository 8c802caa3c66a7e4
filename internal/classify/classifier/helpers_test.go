package classifier_test

import (
	"context"

	"tm-intent-classifier/pkg/genaihub"
)

// Mock logger for testing
type mockLogger struct {
	warnCount int
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     { m.warnCount++ }
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   { m.warnCount++ }
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

// Mock GenAI Hub client for testing
type mockHub struct {
	response *genaihub.ChatResponse
	err      error
	calls    int
}

func (m *mockHub) ChatCompletion(ctx context.Context, req *genaihub.ChatRequest) (*genaihub.ChatResponse, error) {
	m.calls++
	return m.response, m.err
}

func (m *mockHub) Model() string {
	return "gpt-4o-test"
}

func hubReply(content string) *genaihub.ChatResponse {
	return &genaihub.ChatResponse{
		Choices: []genaihub.ChatChoice{
			{Message: genaihub.ChatMessage{Role: "assistant", Content: content}},
		},
	}
}
