package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"tm-intent-classifier/internal/classify"
	classifyHTTP "tm-intent-classifier/internal/classify/delivery/http"
	"tm-intent-classifier/internal/topics"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

// mockUseCase returns a canned output or error.
type mockUseCase struct {
	output classify.ClassifyOutput
	err    error
	calls  int
}

func (m *mockUseCase) Classify(ctx context.Context, input classify.ClassifyInput) (classify.ClassifyOutput, error) {
	m.calls++
	return m.output, m.err
}

func newTestRouter(uc classify.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := classifyHTTP.New(&mockLogger{}, uc)
	classifyHTTP.RegisterRoutes(r.Group("/api/v1"), h)
	return r
}

func postClassify(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/classify", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestClassifyHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc := &mockUseCase{output: classify.ClassifyOutput{
			Result: classify.Result{
				IsTalentManagement: true,
				Confidence:         0.95,
				Topic:              "performance_management",
			},
			TopicDisplayName: "Performance Management",
			Links: []topics.Link{
				{Title: "Performance & Goals Administration", URL: "https://help.sap.com/x", Description: "guide"},
			},
			Summary: "Your question is about Performance Management.",
		}}
		r := newTestRouter(uc)

		w := postClassify(t, r, `{"query": "How do I submit my performance review?"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp struct {
			IsTalentManagement bool    `json:"is_talent_management"`
			Confidence         float64 `json:"confidence"`
			Topic              string  `json:"topic"`
			TopicDisplayName   string  `json:"topic_display_name"`
			Links              []struct {
				Title string `json:"title"`
				URL   string `json:"url"`
			} `json:"links"`
			Summary string `json:"summary"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}
		if !resp.IsTalentManagement || resp.Topic != "performance_management" {
			t.Errorf("unexpected body: %s", w.Body.String())
		}
		if resp.TopicDisplayName != "Performance Management" {
			t.Errorf("unexpected display name: %s", resp.TopicDisplayName)
		}
		if len(resp.Links) != 1 || resp.Links[0].URL == "" {
			t.Errorf("expected links to be rendered, got %s", w.Body.String())
		}
	})

	t.Run("Empty Links Render As Array", func(t *testing.T) {
		uc := &mockUseCase{output: classify.ClassifyOutput{
			Result:  classify.Result{Topic: topics.TopicNone, Confidence: 0.05},
			Links:   []topics.Link{},
			Summary: "This query doesn't appear to be related to Talent Management.",
		}}
		r := newTestRouter(uc)

		w := postClassify(t, r, `{"query": "What's the weather today?"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte(`"links":[]`)) {
			t.Errorf("expected empty links array, got %s", w.Body.String())
		}
	})

	t.Run("Empty Query Is 400", func(t *testing.T) {
		uc := &mockUseCase{}
		r := newTestRouter(uc)

		w := postClassify(t, r, `{"query": ""}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if uc.calls != 0 {
			t.Errorf("use case must not run for an empty query, got %d calls", uc.calls)
		}
	})

	t.Run("Whitespace Query Is 400", func(t *testing.T) {
		uc := &mockUseCase{}
		r := newTestRouter(uc)

		w := postClassify(t, r, `{"query": "   "}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if uc.calls != 0 {
			t.Errorf("use case must not run for a whitespace query, got %d calls", uc.calls)
		}
	})

	t.Run("Malformed Body Is 400", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{})

		w := postClassify(t, r, `{"query": `)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Missing Query Field Is 400", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{})

		w := postClassify(t, r, `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Empty Query From UseCase Is 400", func(t *testing.T) {
		// Defense in depth: the use case trims too.
		uc := &mockUseCase{err: classify.ErrEmptyQuery}
		r := newTestRouter(uc)

		w := postClassify(t, r, `{"query": "x"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
