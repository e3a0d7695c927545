package usecase

import "context"

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, args ...any)  {}

// scriptedGateway returns canned completions per call, dispatched by the
// provided function.
type scriptedGateway struct {
	completeFunc func(prompt string, temperature float64) string
	calls        []string
}

func (g *scriptedGateway) Complete(ctx context.Context, prompt string, temperature float64) string {
	g.calls = append(g.calls, prompt)
	if g.completeFunc == nil {
		return ""
	}
	return g.completeFunc(prompt, temperature)
}
