// Package chatclient is the Go counterpart of the site's chat widget: it
// posts messages to the proxy and converts any failure into one of the
// widget's canned human-readable fallbacks.
package chatclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"portfolio-backend/internal/models"
)

const defaultReply = "I am here and ready to help. Try asking about projects, research, or experience."

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// Send posts one message to the proxy and returns the reply. The error
// carries the proxy's error text for Classify.
func (c *Client) Send(ctx context.Context, message string) (string, error) {
	body, err := json.Marshal(models.ChatRequest{Message: message})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp models.ErrorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errResp); decodeErr == nil && errResp.Error != "" {
			return "", fmt.Errorf("%s", errResp.Error)
		}
		return "", fmt.Errorf("Request failed (%d)", resp.StatusCode)
	}

	var chatResp models.ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", err
	}

	if chatResp.Reply == "" {
		return defaultReply, nil
	}
	return chatResp.Reply, nil
}

// Ask is the widget behavior end to end: on any failure the user sees a
// classified canned fallback, never the raw error.
func (c *Client) Ask(ctx context.Context, message string) string {
	reply, err := c.Send(ctx, message)
	if err != nil {
		return Fallback(Classify(err.Error()))
	}
	return reply
}
