package interview

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stderrors "planmate-backend/internal/common/errors"
	"planmate-backend/internal/common/logger"
	"planmate-backend/internal/models"
	"planmate-backend/internal/templates"
)

func newTestFlow(t *testing.T) (*Flow, sqlmock.Sqlmock) {
	t.Helper()
	store, mock := newTestStore(t)
	return NewFlow(store, logger.NewTestLogger(t)), mock
}

func expectFetch(mock sqlmock.Sqlmock, id string, answers string) {
	now := time.Now()
	mock.ExpectQuery(`SELECT .+ FROM interviews`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(interviewColumns()).
			AddRow(id, "in_progress", []byte(answers), nil, nil, "preliminary-startup", now, now))
}

func TestSubmitRejectsEmptyAnswer(t *testing.T) {
	flow, mock := newTestFlow(t)

	_, err := flow.Submit(context.Background(), "abc-123", nil, "   \n\t ")

	require.Error(t, err)
	stdErr, ok := err.(*stderrors.StandardError)
	require.True(t, ok)
	assert.Equal(t, stderrors.ErrCodeAnswerEmpty, stdErr.Code)
	// The session was never touched.
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitAdvancesToNextQuestion(t *testing.T) {
	flow, mock := newTestFlow(t)
	expectFetch(mock, "abc-123", `{"1":"첫 답변"}`)
	mock.ExpectExec(`UPDATE interviews`).
		WithArgs("abc-123", sqlmock.AnyArg(), string(models.StatusInProgress)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	result, err := flow.Submit(context.Background(), "abc-123", nil, "두 번째 답변")

	require.NoError(t, err)
	assert.False(t, result.Complete)
	assert.Equal(t, models.StatusInProgress, result.Status)
	assert.Equal(t, 2, result.AnsweredCount)
	assert.Equal(t, 10, result.TotalCount)
	require.NotNil(t, result.NextQuestion)
	assert.Equal(t, 3, result.NextQuestion.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitLastAnswerCompletesSession(t *testing.T) {
	flow, mock := newTestFlow(t)
	expectFetch(mock, "abc-123",
		`{"1":"a","2":"b","3":"c","4":"d","5":"e","6":"f","7":"g","8":"h","9":"i"}`)
	mock.ExpectExec(`UPDATE interviews`).
		WithArgs("abc-123", sqlmock.AnyArg(), string(models.StatusCompleted)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	result, err := flow.Submit(context.Background(), "abc-123", nil, "마지막 답변")

	require.NoError(t, err)
	assert.True(t, result.Complete)
	assert.Equal(t, models.StatusCompleted, result.Status)
	assert.Nil(t, result.NextQuestion)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitSurvivesPersistenceFailure(t *testing.T) {
	flow, mock := newTestFlow(t)
	expectFetch(mock, "abc-123", `{}`)
	mock.ExpectExec(`UPDATE interviews`).
		WillReturnError(assert.AnError)

	result, err := flow.Submit(context.Background(), "abc-123", nil, "답변")

	// Failed writes are logged, not surfaced.
	require.NoError(t, err)
	assert.Equal(t, 1, result.AnsweredCount)
	require.NotNil(t, result.NextQuestion)
	assert.Equal(t, 2, result.NextQuestion.ID)
}

func TestSubmitExplicitQuestionID(t *testing.T) {
	flow, mock := newTestFlow(t)
	expectFetch(mock, "abc-123", `{"1":"수정 전"}`)
	mock.ExpectExec(`UPDATE interviews`).
		WithArgs("abc-123", sqlmock.AnyArg(), string(models.StatusInProgress)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	questionID := 1
	result, err := flow.Submit(context.Background(), "abc-123", &questionID, "수정 후")

	require.NoError(t, err)
	// Re-answering an earlier question does not advance the position.
	assert.Equal(t, 1, result.AnsweredCount)
	require.NotNil(t, result.NextQuestion)
	assert.Equal(t, 2, result.NextQuestion.ID)
}

func TestSubmitUnknownQuestionID(t *testing.T) {
	flow, mock := newTestFlow(t)
	expectFetch(mock, "abc-123", `{}`)

	questionID := 99
	_, err := flow.Submit(context.Background(), "abc-123", &questionID, "답변")

	require.Error(t, err)
	stdErr, ok := err.(*stderrors.StandardError)
	require.True(t, ok)
	assert.Equal(t, stderrors.ErrCodeInvalidPayload, stdErr.Code)
}

func TestNextQuestionSkipsAnswered(t *testing.T) {
	tmpl := templates.Default()
	record := &models.Interview{Answers: map[int]string{1: "a", 3: "c"}}

	next := NextQuestion(record, tmpl)

	require.NotNil(t, next)
	assert.Equal(t, 2, next.ID)
}
