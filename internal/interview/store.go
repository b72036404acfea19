// Package interview persists guided-interview sessions and drives the
// question flow over them.
package interview

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"

	"planmate-backend/internal/common/errors"
	"planmate-backend/internal/common/logger"
	"planmate-backend/internal/models"
)

// Store is the Postgres-backed interview session repository.
type Store struct {
	db     *sql.DB
	logger logger.Logger
}

// NewStore wraps an open database handle.
func NewStore(db *sql.DB, log logger.Logger) *Store {
	return &Store{db: db, logger: log}
}

// Create inserts a fresh in-progress session with no answers.
func (s *Store) Create(ctx context.Context, templateID string, email *string) (*models.Interview, error) {
	id := uuid.New().String()

	query := `
		INSERT INTO interviews (id, status, answers, template_id, email, created_at, updated_at)
		VALUES ($1, $2, '{}'::jsonb, $3, $4, NOW(), NOW())
		RETURNING id, status, answers, business_plan, email, template_id, created_at, updated_at`

	row := s.db.QueryRowContext(ctx, query, id, models.StatusInProgress, templateID, email)
	record, err := scanInterview(row)
	if err != nil {
		s.logger.WithError(err).Error("failed to create interview", map[string]interface{}{
			"interview_id": id,
		})
		return nil, errors.NewDatabaseInsertFailedError("create interview", err)
	}
	return record, nil
}

// GetByID fetches one session.
func (s *Store) GetByID(ctx context.Context, id string) (*models.Interview, error) {
	query := `
		SELECT id, status, answers, business_plan, email, template_id, created_at, updated_at
		FROM interviews
		WHERE id = $1`

	record, err := scanInterview(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NewInterviewNotFoundError(id)
	}
	if err != nil {
		s.logger.WithError(err).Error("failed to fetch interview", map[string]interface{}{
			"interview_id": id,
		})
		return nil, errors.NewDatabaseQueryFailedError("get interview", err)
	}
	return record, nil
}

// SaveAnswers replaces the answer map and status, refreshing updated_at.
func (s *Store) SaveAnswers(ctx context.Context, id string, answers map[int]string, status models.InterviewStatus) error {
	payload, err := json.Marshal(answers)
	if err != nil {
		return errors.NewDatabaseQueryFailedError("marshal answers", err)
	}

	query := `
		UPDATE interviews
		SET answers = $2, status = $3, updated_at = NOW()
		WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id, payload, status)
	if err != nil {
		s.logger.WithError(err).Error("failed to save answers", map[string]interface{}{
			"interview_id": id,
		})
		return errors.NewDatabaseQueryFailedError("save answers", err)
	}
	return requireRowAffected(result, id)
}

// SetBusinessPlan stores the generated document, refreshing updated_at.
func (s *Store) SetBusinessPlan(ctx context.Context, id, plan string) error {
	query := `
		UPDATE interviews
		SET business_plan = $2, updated_at = NOW()
		WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id, plan)
	if err != nil {
		s.logger.WithError(err).Error("failed to store business plan", map[string]interface{}{
			"interview_id": id,
		})
		return errors.NewDatabaseQueryFailedError("set business plan", err)
	}
	return requireRowAffected(result, id)
}

func requireRowAffected(result sql.Result, id string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return errors.NewDatabaseQueryFailedError("rows affected", err)
	}
	if affected == 0 {
		return errors.NewInterviewNotFoundError(id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanInterview(row rowScanner) (*models.Interview, error) {
	var record models.Interview
	var rawAnswers []byte

	err := row.Scan(
		&record.ID,
		&record.Status,
		&rawAnswers,
		&record.BusinessPlan,
		&record.Email,
		&record.TemplateID,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.Answers = map[int]string{}
	if len(rawAnswers) > 0 {
		if err := json.Unmarshal(rawAnswers, &record.Answers); err != nil {
			return nil, err
		}
	}
	return &record, nil
}
