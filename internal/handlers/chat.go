package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/persona"
	"portfolio-backend/internal/sanitize"
	"portfolio-backend/internal/services"
)

// chatCompleter is the slice of the OpenRouter service the handler needs.
type chatCompleter interface {
	Complete(ctx context.Context, apiKey, systemPrompt, userMessage string) (string, error)
}

type ChatHandler struct {
	composer  *persona.Composer
	completer chatCompleter
	apiKey    string
}

func NewChatHandler(composer *persona.Composer, completer chatCompleter, apiKey string) *ChatHandler {
	return &ChatHandler{
		composer:  composer,
		completer: completer,
		apiKey:    apiKey,
	}
}

func (h *ChatHandler) Ask(w http.ResponseWriter, r *http.Request) {
	// Credential precondition comes before payload validation so a
	// misconfigured server fails the same way for every request.
	if h.apiKey == "" {
		writeJSON(w, http.StatusInternalServerError,
			errorResp(models.ErrKindConfiguration, "Server is missing OPENROUTER_API_KEY."))
		return
	}

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusBadRequest,
			errorResp(models.ErrKindValidation, "Invalid payload. 'message' is required."))
		return
	}

	raw, err := h.completer.Complete(r.Context(), h.apiKey, h.composer.SystemPrompt(), req.Message)
	if err != nil {
		h.writeCompletionError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.ChatResponse{Reply: sanitize.Clean(raw)})
}

// writeCompletionError maps upstream failures to the wire error shape.
// Non-2xx replies mirror the upstream status and surface its body text
// for diagnosis; everything else (network, timeout, decode) becomes a
// generic 500 so internal detail never reaches the client.
func (h *ChatHandler) writeCompletionError(w http.ResponseWriter, r *http.Request, err error) {
	if upErr, ok := err.(*services.UpstreamError); ok {
		kind := models.ErrKindUpstreamOther
		if upErr.StatusCode == http.StatusTooManyRequests {
			kind = models.ErrKindUpstreamRateLimit
		}
		writeJSON(w, upErr.StatusCode, models.ErrorResponse{
			Error: fmt.Sprintf("OpenRouter request failed (%d): %s", upErr.StatusCode, upErr.Body),
			Kind:  kind,
		})
		return
	}

	log.Printf("chat: completion failed: %v", err)
	writeJSON(w, http.StatusInternalServerError,
		errorResp(models.ErrKindTransport, "Something went wrong."))
}

// Shared helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(kind, message string) models.ErrorResponse {
	return models.ErrorResponse{Error: message, Kind: kind}
}
