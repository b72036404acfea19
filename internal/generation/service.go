package generation

import (
	"context"
	"time"

	"planmate-backend/internal/common/errors"
	"planmate-backend/internal/common/logger"
	"planmate-backend/internal/common/metrics"
	"planmate-backend/internal/common/observability"
	"planmate-backend/internal/models"
	"planmate-backend/internal/templates"
)

// Completer produces one document from one prompt.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// SessionStore is the slice of the interview repository the service
// needs for persisting the generated document.
type SessionStore interface {
	GetByID(ctx context.Context, id string) (*models.Interview, error)
	SetBusinessPlan(ctx context.Context, id, plan string) error
}

// PlanSender delivers a finished document to a recipient.
type PlanSender interface {
	SendPlan(ctx context.Context, to, plan string) error
}

// Service runs the one-shot plan generation: format prompt, call the
// model once, then best-effort persist, cache and deliver the result.
// Only the model call can fail the request; every downstream write is
// logged and dropped.
type Service struct {
	completer Completer
	store     SessionStore
	cache     *PlanCache
	sender    PlanSender
	obs       *observability.Observability
	logger    logger.Logger
}

// NewService wires the generation pipeline. store, cache, sender and
// obs may each be nil; the matching step is skipped.
func NewService(completer Completer, store SessionStore, cache *PlanCache, sender PlanSender, obs *observability.Observability, log logger.Logger) *Service {
	return &Service{
		completer: completer,
		store:     store,
		cache:     cache,
		sender:    sender,
		obs:       obs,
		logger:    log,
	}
}

// Request carries one generation call.
type Request struct {
	InterviewID string
	TemplateID  string
	Answers     map[int]string
}

// Generate produces the business plan document for the given answers.
func (s *Service) Generate(ctx context.Context, req Request) (string, error) {
	if len(req.Answers) == 0 {
		return "", errors.NewAnswersEmptyError()
	}

	tmpl := templates.Resolve(req.TemplateID)
	prompt := BuildPrompt(tmpl, req.Answers)

	start := time.Now()
	plan, err := s.completer.Complete(ctx, prompt)
	elapsed := time.Since(start)

	if err != nil {
		s.recordOutcome(ctx, tmpl.ID, "failure", elapsed)
		s.logger.WithError(err).Error("plan generation failed", map[string]interface{}{
			"interview_id": req.InterviewID,
			"template_id":  tmpl.ID,
		})
		return "", errors.NewGenerationFailedError(err)
	}

	s.recordOutcome(ctx, tmpl.ID, "success", elapsed)
	s.logger.Info("plan generated", map[string]interface{}{
		"interview_id": req.InterviewID,
		"template_id":  tmpl.ID,
		"duration_ms":  elapsed.Milliseconds(),
		"plan_bytes":   len(plan),
	})

	if req.InterviewID != "" {
		s.persist(ctx, req.InterviewID, plan)
		s.cachePlan(ctx, req.InterviewID, plan)
		s.deliver(ctx, req.InterviewID, plan)
	}
	return plan, nil
}

func (s *Service) recordOutcome(ctx context.Context, templateID, outcome string, elapsed time.Duration) {
	metrics.PlansGenerated.WithLabelValues(templateID, outcome).Inc()
	if s.obs != nil {
		s.obs.RecordGeneration(ctx, outcome)
		s.obs.RecordGenerationDuration(ctx, elapsed, outcome)
	}
}

func (s *Service) persist(ctx context.Context, interviewID, plan string) {
	if s.store == nil {
		return
	}
	if err := s.store.SetBusinessPlan(ctx, interviewID, plan); err != nil {
		metrics.SessionSaves.WithLabelValues("failure").Inc()
		s.logger.WithError(err).Warn("generated plan not persisted", map[string]interface{}{
			"interview_id": interviewID,
		})
		return
	}
	metrics.SessionSaves.WithLabelValues("success").Inc()
}

func (s *Service) cachePlan(ctx context.Context, interviewID, plan string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Put(ctx, interviewID, plan); err != nil {
		s.logger.WithError(err).Warn("generated plan not cached", map[string]interface{}{
			"interview_id": interviewID,
		})
	}
}

func (s *Service) deliver(ctx context.Context, interviewID, plan string) {
	if s.sender == nil || s.store == nil {
		return
	}
	record, err := s.store.GetByID(ctx, interviewID)
	if err != nil || record.Email == nil || *record.Email == "" {
		return
	}
	if err := s.sender.SendPlan(ctx, *record.Email, plan); err != nil {
		s.logger.WithError(err).Warn("plan email not delivered", map[string]interface{}{
			"interview_id": interviewID,
		})
	}
}
