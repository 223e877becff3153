package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/persona"
	"portfolio-backend/internal/sanitize"
	"portfolio-backend/internal/services"
)

// stubCompleter records calls and returns a canned reply or error.
type stubCompleter struct {
	calls int
	reply string
	err   error
}

func (s *stubCompleter) Complete(ctx context.Context, apiKey, systemPrompt, userMessage string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func newTestHandler(stub *stubCompleter, apiKey string) *ChatHandler {
	return NewChatHandler(persona.NewComposer("", ""), stub, apiKey)
}

func doChat(t *testing.T, h *ChatHandler, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.Ask(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	return resp
}

func TestAsk_InvalidPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing message", `{}`},
		{"empty message", `{"message": ""}`},
		{"whitespace message", `{"message": "   "}`},
		{"non-string message", `{"message": 42}`},
		{"not json", `not json at all`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubCompleter{reply: "should not matter"}
			rr := doChat(t, newTestHandler(stub, "key"), []byte(tc.body))

			if rr.Code != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d", rr.Code)
			}
			resp := decodeError(t, rr)
			if !strings.Contains(resp.Error, "'message' is required") {
				t.Errorf("Expected message-required error, got %q", resp.Error)
			}
			if resp.Kind != models.ErrKindValidation {
				t.Errorf("Expected validation kind, got %q", resp.Kind)
			}
			if stub.calls != 0 {
				t.Errorf("Upstream called %d times, want 0", stub.calls)
			}
		})
	}
}

func TestAsk_MissingAPIKey(t *testing.T) {
	stub := &stubCompleter{reply: "should not matter"}
	h := newTestHandler(stub, "")

	// Key precondition fires before validation, for any payload.
	for _, body := range []string{`{"message": "hi"}`, `{}`} {
		rr := doChat(t, h, []byte(body))

		if rr.Code != http.StatusInternalServerError {
			t.Errorf("Expected 500, got %d", rr.Code)
		}
		resp := decodeError(t, rr)
		if !strings.Contains(resp.Error, "OPENROUTER_API_KEY") {
			t.Errorf("Expected credential error, got %q", resp.Error)
		}
		if resp.Kind != models.ErrKindConfiguration {
			t.Errorf("Expected configuration kind, got %q", resp.Kind)
		}
	}

	if stub.calls != 0 {
		t.Errorf("Upstream called %d times, want 0", stub.calls)
	}
}

func TestAsk_SuccessPassthrough(t *testing.T) {
	stub := &stubCompleter{reply: "I built the AI Caller System at Revino using FAISS and Vertex AI."}
	rr := doChat(t, newTestHandler(stub, "key"), []byte(`{"message": "What did you build at Revino?"}`))

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}

	var resp models.ChatResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Reply != stub.reply {
		t.Errorf("Expected verbatim passthrough, got %q", resp.Reply)
	}
	if stub.calls != 1 {
		t.Errorf("Upstream called %d times, want 1", stub.calls)
	}
}

func TestAsk_ScrubsScoreLeak(t *testing.T) {
	stub := &stubCompleter{reply: "My CGPA is 9.31/10."}
	rr := doChat(t, newTestHandler(stub, "key"), []byte(`{"message": "What is your CGPA?"}`))

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}

	var resp models.ChatResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Reply != sanitize.ScoreDecline {
		t.Errorf("Expected decline sentence, got %q", resp.Reply)
	}
}

func TestAsk_StripsMarkdown(t *testing.T) {
	stub := &stubCompleter{reply: "I **built** a `RAG` pipeline"}
	rr := doChat(t, newTestHandler(stub, "key"), []byte(`{"message": "Tell me about RAG"}`))

	var resp models.ChatResponse
	json.NewDecoder(rr.Body).Decode(&resp)
	if resp.Reply != "I built a RAG pipeline" {
		t.Errorf("Expected markdown stripped, got %q", resp.Reply)
	}
}

func TestAsk_UpstreamErrorMirrored(t *testing.T) {
	stub := &stubCompleter{err: &services.UpstreamError{
		StatusCode: http.StatusTooManyRequests,
		Body:       "rate limited",
	}}
	rr := doChat(t, newTestHandler(stub, "key"), []byte(`{"message": "hi"}`))

	if rr.Code != http.StatusTooManyRequests {
		t.Errorf("Expected mirrored 429, got %d", rr.Code)
	}
	resp := decodeError(t, rr)
	if !strings.Contains(resp.Error, "rate limited") {
		t.Errorf("Expected upstream body in error, got %q", resp.Error)
	}
	if !strings.Contains(resp.Error, "429") {
		t.Errorf("Expected status in error text, got %q", resp.Error)
	}
	if resp.Kind != models.ErrKindUpstreamRateLimit {
		t.Errorf("Expected rate-limit kind, got %q", resp.Kind)
	}
}

func TestAsk_UpstreamAuthErrorMirrored(t *testing.T) {
	stub := &stubCompleter{err: &services.UpstreamError{
		StatusCode: http.StatusUnauthorized,
		Body:       "invalid key",
	}}
	rr := doChat(t, newTestHandler(stub, "key"), []byte(`{"message": "hi"}`))

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("Expected mirrored 401, got %d", rr.Code)
	}
	if resp := decodeError(t, rr); resp.Kind != models.ErrKindUpstreamOther {
		t.Errorf("Expected upstream_other kind, got %q", resp.Kind)
	}
}

func TestAsk_TransportErrorDoesNotLeak(t *testing.T) {
	stub := &stubCompleter{err: errors.New("dial tcp 10.0.0.1:443: connection refused")}
	rr := doChat(t, newTestHandler(stub, "key"), []byte(`{"message": "hi"}`))

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("Expected 500, got %d", rr.Code)
	}
	resp := decodeError(t, rr)
	if resp.Error != "Something went wrong." {
		t.Errorf("Expected generic message, got %q", resp.Error)
	}
	if strings.Contains(resp.Error, "connection refused") {
		t.Error("Internal error detail leaked to the client")
	}
	if resp.Kind != models.ErrKindTransport {
		t.Errorf("Expected transport kind, got %q", resp.Kind)
	}
}
