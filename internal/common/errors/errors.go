// Package errors provides standardized error handling for the HTTP API.
package errors

import (
	"fmt"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeAnswersEmpty      ErrorCode = "ANSWERS_EMPTY"
	ErrCodeAnswerEmpty       ErrorCode = "ANSWER_EMPTY"
	ErrCodeInvalidPayload    ErrorCode = "INVALID_PAYLOAD"
	ErrCodeInterviewNotFound ErrorCode = "INTERVIEW_NOT_FOUND"
	ErrCodePlanNotReady      ErrorCode = "PLAN_NOT_READY"

	ErrCodeGenerationFailed ErrorCode = "GENERATION_FAILED"

	ErrCodeDatabaseConnectionFailed ErrorCode = "DATABASE_CONNECTION_FAILED"
	ErrCodeDatabaseQueryFailed      ErrorCode = "DATABASE_QUERY_FAILED"
	ErrCodeDatabaseInsertFailed     ErrorCode = "DATABASE_INSERT_FAILED"

	ErrCodeEmailSendFailed ErrorCode = "EMAIL_SEND_FAILED"
)

// StandardError represents a structured application error. Message is the
// localized user-facing string; Details stays in the logs.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewAnswersEmptyError creates a non-retryable validation error for an
// empty answer map on the generate endpoint.
func NewAnswersEmptyError() *StandardError {
	return &StandardError{
		Code:      ErrCodeAnswersEmpty,
		Message:   "답변이 없습니다.",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewAnswerEmptyError creates a non-retryable validation error for an
// empty single answer in the interview loop.
func NewAnswerEmptyError() *StandardError {
	return &StandardError{
		Code:      ErrCodeAnswerEmpty,
		Message:   "답변을 입력해주세요.",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidPayloadError creates a non-retryable request payload error.
func NewInvalidPayloadError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidPayload,
		Message:   "잘못된 요청입니다.",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInterviewNotFoundError creates a non-retryable lookup error.
func NewInterviewNotFoundError(id string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInterviewNotFound,
		Message:   "데이터를 찾을 수 없습니다.",
		Details:   fmt.Sprintf("interviewId: %s", id),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewPlanNotReadyError signals that a session has no stored document yet.
func NewPlanNotReadyError(id string) *StandardError {
	return &StandardError{
		Code:      ErrCodePlanNotReady,
		Message:   "아직 생성된 사업계획서가 없습니다.",
		Details:   fmt.Sprintf("interviewId: %s", id),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewGenerationFailedError wraps any failure in prompt formatting, the
// external call or serialization. The original error goes to Details only.
func NewGenerationFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeGenerationFailed,
		Message:   "사업계획서 생성 중 오류가 발생했습니다.",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseConnectionFailedError creates a retryable database connection error.
func NewDatabaseConnectionFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseConnectionFailed,
		Message:   "일시적인 오류가 발생했습니다.",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseQueryFailedError creates a retryable query error.
func NewDatabaseQueryFailedError(op string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseQueryFailed,
		Message:   "일시적인 오류가 발생했습니다.",
		Details:   fmt.Sprintf("op: %s, error: %s", op, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseInsertFailedError creates a retryable insert error.
func NewDatabaseInsertFailedError(op string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseInsertFailed,
		Message:   "일시적인 오류가 발생했습니다.",
		Details:   fmt.Sprintf("op: %s, error: %s", op, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewEmailSendFailedError creates a retryable mail delivery error. Plan
// delivery is best-effort, so callers log this instead of surfacing it.
func NewEmailSendFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeEmailSendFailed,
		Message:   "이메일 전송에 실패했습니다.",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}
