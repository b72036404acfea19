package interview

import (
	"context"
	"strings"

	"planmate-backend/internal/common/errors"
	"planmate-backend/internal/common/logger"
	"planmate-backend/internal/common/metrics"
	"planmate-backend/internal/models"
	"planmate-backend/internal/templates"
)

// Flow drives a session through its question sequence. The position is
// derived from the persisted answer count on every call, so a session
// can resume from any client at any time.
type Flow struct {
	store  *Store
	logger logger.Logger
}

// NewFlow builds a flow over the given session store.
func NewFlow(store *Store, log logger.Logger) *Flow {
	return &Flow{store: store, logger: log}
}

// SubmitResult describes the session after one answer.
type SubmitResult struct {
	InterviewID   string                 `json:"interview_id"`
	Status        models.InterviewStatus `json:"status"`
	Complete      bool                   `json:"complete"`
	AnsweredCount int                    `json:"answered_count"`
	TotalCount    int                    `json:"total_count"`
	NextQuestion  *templates.Question    `json:"next_question,omitempty"`
}

// Submit records one answer against the session's current question.
// An empty trimmed answer is rejected without touching the session.
// questionID overrides the derived position when given, so a client
// can re-submit a correction for an earlier question.
//
// Persistence failures are logged and counted but do not fail the
// submit; the in-memory result still reflects the recorded answer.
func (f *Flow) Submit(ctx context.Context, interviewID string, questionID *int, answer string) (*SubmitResult, error) {
	trimmed := strings.TrimSpace(answer)
	if trimmed == "" {
		return nil, errors.NewAnswerEmptyError()
	}

	record, err := f.store.GetByID(ctx, interviewID)
	if err != nil {
		return nil, err
	}

	tmpl := templates.Resolve(record.TemplateID)
	targetID, err := f.resolveQuestionID(record, tmpl, questionID)
	if err != nil {
		return nil, err
	}

	record.Answers[targetID] = trimmed

	status := models.StatusInProgress
	if len(record.Answers) >= len(tmpl.Questions) {
		status = models.StatusCompleted
	}

	if err := f.store.SaveAnswers(ctx, interviewID, record.Answers, status); err != nil {
		metrics.SessionSaves.WithLabelValues("failure").Inc()
		f.logger.WithError(err).Warn("answer persisted in memory only", map[string]interface{}{
			"interview_id": interviewID,
			"question_id":  targetID,
		})
	} else {
		metrics.SessionSaves.WithLabelValues("success").Inc()
	}

	result := &SubmitResult{
		InterviewID:   interviewID,
		Status:        status,
		Complete:      status == models.StatusCompleted,
		AnsweredCount: len(record.Answers),
		TotalCount:    len(tmpl.Questions),
	}
	if next := NextQuestion(record, tmpl); next != nil && !result.Complete {
		result.NextQuestion = next
	}
	return result, nil
}

func (f *Flow) resolveQuestionID(record *models.Interview, tmpl templates.Template, questionID *int) (int, error) {
	if questionID != nil {
		for _, q := range tmpl.Questions {
			if q.ID == *questionID {
				return *questionID, nil
			}
		}
		return 0, errors.NewInvalidPayloadError("unknown question id")
	}

	next := NextQuestion(record, tmpl)
	if next == nil {
		return 0, errors.NewInvalidPayloadError("interview already completed")
	}
	return next.ID, nil
}

// NextQuestion returns the first unanswered question, nil when all are
// answered.
func NextQuestion(record *models.Interview, tmpl templates.Template) *templates.Question {
	for i := range tmpl.Questions {
		if _, ok := record.Answers[tmpl.Questions[i].ID]; !ok {
			q := tmpl.Questions[i]
			return &q
		}
	}
	return nil
}
