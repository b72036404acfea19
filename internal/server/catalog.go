package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"planmate-backend/internal/funding"
	"planmate-backend/internal/tax"
	"planmate-backend/internal/templates"
)

// ListTemplates returns the template catalog.
func (h *Handler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"templates": templates.All(),
	})
}

// ListQuestions returns the question set for a template, falling back
// to the default template for unknown ids.
func (h *Handler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	tmpl := templates.Resolve(chi.URLParam(r, "templateID"))
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"template_id": tmpl.ID,
		"questions":   tmpl.Questions,
	})
}

// MatchFunding filters the funding catalog against the profile in the
// query string.
func (h *Handler) MatchFunding(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	profile := funding.Profile{
		Type:     query.Get("type"),
		Stage:    query.Get("stage"),
		Region:   query.Get("region"),
		Category: query.Get("category"),
	}
	if ageStr := query.Get("age"); ageStr != "" {
		if age, err := strconv.Atoi(ageStr); err == nil {
			profile.Age = &age
		}
	}

	programs := funding.Match(profile)
	if programs == nil {
		programs = []funding.Program{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"programs": programs,
		"count":    len(programs),
	})
}

// UpcomingTaxEvents resolves tax deadlines for the comma-separated
// taxpayer types in the query string.
func (h *Handler) UpcomingTaxEvents(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var types []string
	for _, t := range strings.Split(query.Get("types"), ",") {
		if trimmed := strings.TrimSpace(t); trimmed != "" {
			types = append(types, trimmed)
		}
	}

	daysAhead := tax.DefaultDaysAhead
	if raw := query.Get("daysAhead"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			daysAhead = parsed
		}
	}

	events := tax.Upcoming(tax.Profile{Types: types}, daysAhead, h.now())
	if events == nil {
		events = []tax.Event{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"events":  events,
		"monthly": tax.MonthlyEvents(),
		"count":   len(events),
	})
}
