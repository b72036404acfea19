package server

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"planmate-backend/internal/common/errors"
	"planmate-backend/internal/plandoc"
	"planmate-backend/internal/templates"
)

type createInterviewRequest struct {
	TemplateID string  `json:"templateId"`
	Email      *string `json:"email,omitempty"`
}

// CreateInterview opens a fresh session.
func (h *Handler) CreateInterview(w http.ResponseWriter, r *http.Request) {
	var req createInterviewRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.errHandler.HandleHTTPError(w, r, errors.NewInvalidPayloadError(err.Error()))
			return
		}
	}

	tmpl := templates.Resolve(req.TemplateID)
	record, err := h.store.Create(r.Context(), tmpl.ID, req.Email)
	if err != nil {
		h.errHandler.HandleHTTPError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, record)
}

// GetInterview returns one session record.
func (h *Handler) GetInterview(w http.ResponseWriter, r *http.Request) {
	record, err := h.store.GetByID(r.Context(), chi.URLParam(r, "interviewID"))
	if err != nil {
		h.errHandler.HandleHTTPError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

type submitAnswerRequest struct {
	QuestionID *int   `json:"questionId,omitempty"`
	Answer     string `json:"answer"`
}

// SubmitAnswer records one answer and reports the next position.
func (h *Handler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var req submitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errHandler.HandleHTTPError(w, r, errors.NewInvalidPayloadError(err.Error()))
		return
	}

	result, err := h.flow.Submit(r.Context(), chi.URLParam(r, "interviewID"), req.QuestionID, req.Answer)
	if err != nil {
		h.errHandler.HandleHTTPError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type planResponse struct {
	InterviewID  string          `json:"interview_id"`
	BusinessPlan string          `json:"business_plan"`
	Blocks       []plandoc.Block `json:"blocks"`
}

// GetPlan serves the generated document, consulting the short-lived
// cache first (consumed on read) and falling back to the database.
func (h *Handler) GetPlan(w http.ResponseWriter, r *http.Request) {
	interviewID := chi.URLParam(r, "interviewID")

	plan, err := h.loadPlan(r, interviewID)
	if err != nil {
		h.errHandler.HandleHTTPError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, planResponse{
		InterviewID:  interviewID,
		BusinessPlan: plan,
		Blocks:       plandoc.Parse(plan),
	})
}

// DownloadPlan serves the raw document as a markdown attachment.
func (h *Handler) DownloadPlan(w http.ResponseWriter, r *http.Request) {
	interviewID := chi.URLParam(r, "interviewID")

	record, err := h.store.GetByID(r.Context(), interviewID)
	if err != nil {
		h.errHandler.HandleHTTPError(w, r, err)
		return
	}
	if !record.HasPlan() {
		h.errHandler.HandleHTTPError(w, r, errors.NewPlanNotReadyError(interviewID))
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename*=UTF-8''"+url.PathEscape(plandoc.DownloadFilename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(*record.BusinessPlan))
}

func (h *Handler) loadPlan(r *http.Request, interviewID string) (string, error) {
	if h.planCache != nil {
		plan, found, err := h.planCache.Take(r.Context(), interviewID)
		if err != nil {
			h.logger.WithError(err).Warn("plan cache read failed", map[string]interface{}{
				"interview_id": interviewID,
			})
		} else if found {
			return plan, nil
		}
	}

	record, err := h.store.GetByID(r.Context(), interviewID)
	if err != nil {
		return "", err
	}
	if !record.HasPlan() {
		return "", errors.NewPlanNotReadyError(interviewID)
	}
	return *record.BusinessPlan, nil
}
