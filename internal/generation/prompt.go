package generation

import (
	"fmt"
	"strings"

	"planmate-backend/internal/templates"
)

// unansweredPlaceholder stands in for questions the user skipped.
const unansweredPlaceholder = "(미응답)"

// BuildPrompt formats the answer map into the template's prompt
// skeleton. Every question gets a section in template order; missing
// answers carry a placeholder so the document keeps its shape.
func BuildPrompt(tmpl templates.Template, answers map[int]string) string {
	sections := make([]string, 0, len(tmpl.Questions))
	for _, q := range tmpl.Questions {
		answer, ok := answers[q.ID]
		if !ok || strings.TrimSpace(answer) == "" {
			answer = unansweredPlaceholder
		}
		sections = append(sections, fmt.Sprintf("### %d. %s\n%s", q.ID, q.Label, answer))
	}
	formatted := strings.Join(sections, "\n\n")
	return strings.Replace(tmpl.PromptTemplate, templates.AnswersMarker, formatted, 1)
}
