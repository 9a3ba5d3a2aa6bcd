package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"

	apierrors "github.com/ethicamind/ethicamind-cli/internal/errors"
	"github.com/ethicamind/ethicamind-cli/internal/models"
)

// Response type tags emitted by the backend.
const (
	responseTypeChat   = "chat"
	responseTypeCrisis = "CRISIS_TRIAGE"
)

// maxErrorBody caps how much of an error response body is surfaced.
const maxErrorBody = 4096

// chatRequest is the JSON payload for the chat endpoint.
type chatRequest struct {
	Message string `json:"message"`
}

// Send posts a message to the backend and returns the parsed reply.
// A non-2xx status is returned as an APIError carrying the body text; a
// transport failure is returned as a NetworkError. An unrecognized body
// shape is not an error: it comes back as a ReplyUnknown so the caller
// handles it explicitly.
func (c *Client) Send(ctx context.Context, message string) (*models.Reply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, apierrors.ErrEmptyMessage
	}

	payload, err := json.Marshal(chatRequest{Message: message})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	endpoint := c.baseURL + ChatPath

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apierrors.NewNetworkError("send message", endpoint, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, apierrors.NewAPIError(resp.StatusCode, ChatPath, strings.TrimSpace(string(body)))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierrors.NewNetworkError("read response", endpoint, err)
	}

	return parseReply(body), nil
}

// parseReply maps the backend's tagged JSON union onto a Reply. Anything
// that isn't a recognized variant, including invalid JSON, is the
// explicit unknown variant.
func parseReply(body []byte) *models.Reply {
	if !gjson.ValidBytes(body) {
		return &models.Reply{Kind: models.ReplyUnknown}
	}

	switch gjson.GetBytes(body, "type").String() {
	case responseTypeCrisis:
		return &models.Reply{Kind: models.ReplyCrisis}
	case responseTypeChat:
		return &models.Reply{
			Kind:    models.ReplyChat,
			Message: gjson.GetBytes(body, "message").String(),
		}
	default:
		return &models.Reply{Kind: models.ReplyUnknown}
	}
}
