package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"planmate-backend/internal/common/errors"
	"planmate-backend/internal/common/validation"
	"planmate-backend/internal/generation"
)

// generatePayloadSchema guards the generate request shape before any
// handling. Answers arrive keyed by question id (JSON object keys are
// strings on the wire).
var generatePayloadSchema = map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"answers"},
	"properties": map[string]interface{}{
		"interviewId": map[string]interface{}{"type": "string"},
		"templateId":  map[string]interface{}{"type": "string"},
		"answers": map[string]interface{}{
			"type":                 "object",
			"additionalProperties": map[string]interface{}{"type": "string"},
		},
	},
}

type generateResponse struct {
	Success      bool   `json:"success"`
	BusinessPlan string `json:"businessPlan"`
}

// Generate runs the one-shot plan generation for an answer map.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.errHandler.HandleHTTPError(w, r, errors.NewInvalidPayloadError(err.Error()))
		return
	}

	result, err := validation.ValidatePayload(payload, generatePayloadSchema)
	if err != nil {
		h.errHandler.HandleHTTPError(w, r, err)
		return
	}
	if !result.Valid {
		h.errHandler.HandleHTTPError(w, r, errors.NewInvalidPayloadError(formatFieldErrors(result.Errors)))
		return
	}

	answers, err := decodeAnswers(payload["answers"])
	if err != nil {
		h.errHandler.HandleHTTPError(w, r, err)
		return
	}

	req := generation.Request{
		InterviewID: stringField(payload, "interviewId"),
		TemplateID:  stringField(payload, "templateId"),
		Answers:     answers,
	}

	plan, err := h.generator.Generate(r.Context(), req)
	if err != nil {
		h.errHandler.HandleHTTPError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, generateResponse{Success: true, BusinessPlan: plan})
}

func decodeAnswers(raw interface{}) (map[int]string, error) {
	answers := map[int]string{}
	obj, ok := raw.(map[string]interface{})
	if !ok {
		if raw == nil {
			return answers, nil
		}
		return nil, errors.NewInvalidPayloadError("answers must be an object")
	}
	for key, value := range obj {
		id, err := strconv.Atoi(key)
		if err != nil {
			return nil, errors.NewInvalidPayloadError("answer keys must be question ids")
		}
		text, ok := value.(string)
		if !ok {
			return nil, errors.NewInvalidPayloadError("answer values must be strings")
		}
		answers[id] = text
	}
	return answers, nil
}

func stringField(payload map[string]interface{}, key string) string {
	if value, ok := payload[key].(string); ok {
		return value
	}
	return ""
}

func formatFieldErrors(fieldErrors []validation.FieldError) string {
	parts := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return strings.Join(parts, "; ")
}
