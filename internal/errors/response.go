package errors

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

// maxErrorBody bounds how much of a failed response is retained.
const maxErrorBody = 64 << 10

// FromResponse converts a non-2xx collaborator response into a REQUEST_FAILED
// error. The body is consumed but not closed.
//
// The message is taken from a top-level "message" string, then from a nested
// {"error": {"message": ...}} object, then from a plain {"error": "..."} string.
func FromResponse(resp *http.Response) *AppError {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	body := strings.TrimSpace(string(raw))
	msg := extractMessage(raw)

	appErr := &AppError{
		Code:          ErrRequestFailed.Code,
		Message:       ErrRequestFailed.Message,
		StatusCode:    resp.StatusCode,
		ServerMessage: msg,
		Body:          body,
	}
	if msg != "" {
		appErr.Message = msg
	}
	return appErr
}

func extractMessage(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}
	var payload struct {
		Message string          `json:"message"`
		Error   json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	if len(payload.Error) == 0 {
		return ""
	}
	var nested struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(payload.Error, &nested); err == nil && nested.Message != "" {
		return nested.Message
	}
	var plain string
	if err := json.Unmarshal(payload.Error, &plain); err == nil {
		return plain
	}
	return ""
}
