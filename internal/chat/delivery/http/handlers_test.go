package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"customer-care-assistant/internal/chat"
	chatHTTP "customer-care-assistant/internal/chat/delivery/http"
	"customer-care-assistant/internal/model"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

type mockChatUseCase struct {
	output chat.ProcessOutput
	err    error

	gotInput chat.ProcessInput
}

func (m *mockChatUseCase) Process(ctx context.Context, input chat.ProcessInput) (chat.ProcessOutput, error) {
	m.gotInput = input
	return m.output, m.err
}

func newTestRouter(uc chat.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := chatHTTP.New(&mockLogger{}, uc)
	chatHTTP.RegisterRoutes(r.Group("/api/v1/chatbot"), h)
	return r
}

func postChat(t *testing.T, r *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chatbot/chat", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestChatHandler(t *testing.T) {
	t.Run("Success Envelope", func(t *testing.T) {
		uc := &mockChatUseCase{
			output: chat.ProcessOutput{
				Response:         "Happy to help with your order.",
				Sentiment:        model.SentimentResult{Label: model.SentimentNeutral, Score: 0.61},
				Escalate:         false,
				Intent:           model.IntentOrderStatus,
				RefinementNotes:  "notes",
				ProcessedMessage: "where is my order",
			},
		}
		r := newTestRouter(uc)

		w := postChat(t, r, gin.H{"message": "where is my order", "user_id": "u1"})
		if w.Code != http.StatusOK {
			t.Fatalf("status: %d, body: %s", w.Code, w.Body.String())
		}

		var envelope struct {
			ErrorCode int    `json:"error_code"`
			Message   string `json:"message"`
			Data      struct {
				Response        string `json:"response"`
				EscalateToHuman bool   `json:"escalate_to_human"`
				DetectedIntent  string `json:"detected_intent"`
				Sentiment       struct {
					Label string  `json:"label"`
					Score float64 `json:"score"`
				} `json:"sentiment"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if envelope.ErrorCode != 0 {
			t.Errorf("error_code: %d", envelope.ErrorCode)
		}
		if envelope.Data.Response != "Happy to help with your order." {
			t.Errorf("response: %q", envelope.Data.Response)
		}
		if envelope.Data.DetectedIntent != "order_status" {
			t.Errorf("detected_intent: %q", envelope.Data.DetectedIntent)
		}
		if envelope.Data.Sentiment.Label != "NEUTRAL" || envelope.Data.Sentiment.Score != 0.61 {
			t.Errorf("sentiment: %+v", envelope.Data.Sentiment)
		}

		if uc.gotInput.Message != "where is my order" || uc.gotInput.UserID != "u1" {
			t.Errorf("input passed to usecase: %+v", uc.gotInput)
		}
	})

	t.Run("Missing Message Is 400", func(t *testing.T) {
		uc := &mockChatUseCase{}
		r := newTestRouter(uc)

		w := postChat(t, r, gin.H{"user_id": "u1"})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status: %d, want 400", w.Code)
		}
	})

	t.Run("Voice Input Without Message Passes Binding", func(t *testing.T) {
		uc := &mockChatUseCase{
			output: chat.ProcessOutput{Response: "ok"},
		}
		r := newTestRouter(uc)

		w := postChat(t, r, gin.H{"is_voice_input": true, "simulated_voice_text": "my router is on fire"})
		if w.Code != http.StatusOK {
			t.Errorf("status: %d, body: %s", w.Code, w.Body.String())
		}
		if !uc.gotInput.IsVoiceInput || uc.gotInput.SimulatedVoiceText != "my router is on fire" {
			t.Errorf("input passed to usecase: %+v", uc.gotInput)
		}
	})

	t.Run("Domain Error Maps To 400", func(t *testing.T) {
		uc := &mockChatUseCase{err: chat.ErrEmptyMessage}
		r := newTestRouter(uc)

		// Binding passes (voice flag set) but the usecase still rejects.
		w := postChat(t, r, gin.H{"is_voice_input": true})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status: %d, want 400", w.Code)
		}
	})
}
