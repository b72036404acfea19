// internal/common/errors/handler.go
package errors

import (
	"encoding/json"
	"net/http"
	"time"
)

// ErrorHandler normalizes errors and writes them as JSON responses.
type ErrorHandler struct {
	logger Logger
}

type Logger interface {
	Error(msg string, fields map[string]interface{})
}

func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// HandleHTTPError logs the full error server-side and writes only the
// localized message to the client.
func (h *ErrorHandler) HandleHTTPError(w http.ResponseWriter, r *http.Request, err error) {
	stdErr := h.normalizeError(err)

	h.logger.Error("request failed", map[string]interface{}{
		"path":      r.URL.Path,
		"method":    r.Method,
		"code":      stdErr.Code,
		"details":   stdErr.Details,
		"retryable": stdErr.Retryable,
	})

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(HTTPStatus(stdErr.Code))
	_ = json.NewEncoder(w).Encode(map[string]string{"error": stdErr.Message})
}

// normalizeError ensures we always have a StandardError
func (h *ErrorHandler) normalizeError(err error) *StandardError {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr
	}
	return &StandardError{
		Code:      "INTERNAL_ERROR",
		Message:   "일시적인 오류가 발생했습니다.",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// HTTPStatus maps error codes to response status codes.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeAnswersEmpty, ErrCodeAnswerEmpty, ErrCodeInvalidPayload:
		return http.StatusBadRequest
	case ErrCodeInterviewNotFound, ErrCodePlanNotReady:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
