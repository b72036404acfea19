package generation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planmate-backend/internal/templates"
)

func TestBuildPromptFormatsAnswersInOrder(t *testing.T) {
	tmpl := templates.Default()
	answers := map[int]string{
		1: "프리랜서 세금 신고가 어렵다",
		2: "직접 겪어봤다",
	}

	prompt := BuildPrompt(tmpl, answers)

	assert.Contains(t, prompt, "### 1. 해결하고 싶은 문제\n프리랜서 세금 신고가 어렵다")
	assert.Contains(t, prompt, "### 2. 문제에 관심을 갖게 된 이유\n직접 겪어봤다")
	assert.NotContains(t, prompt, templates.AnswersMarker)

	// Question order is template order.
	first := strings.Index(prompt, "### 1.")
	second := strings.Index(prompt, "### 2.")
	last := strings.Index(prompt, "### 10.")
	require.True(t, first >= 0 && second >= 0 && last >= 0)
	assert.Less(t, first, second)
	assert.Less(t, second, last)
}

func TestBuildPromptMarksUnanswered(t *testing.T) {
	tmpl := templates.Default()

	prompt := BuildPrompt(tmpl, map[int]string{1: "답변"})

	assert.Contains(t, prompt, "### 2. 문제에 관심을 갖게 된 이유\n(미응답)")
	assert.Contains(t, prompt, "### 10. 1년 후 목표\n(미응답)")
}

func TestBuildPromptTreatsBlankAnswerAsUnanswered(t *testing.T) {
	tmpl := templates.Default()

	prompt := BuildPrompt(tmpl, map[int]string{1: "   "})

	assert.Contains(t, prompt, "### 1. 해결하고 싶은 문제\n(미응답)")
}

func TestBuildPromptKeepsSkeleton(t *testing.T) {
	tmpl := templates.Default()

	prompt := BuildPrompt(tmpl, map[int]string{1: "답변"})

	assert.True(t, strings.HasPrefix(prompt, "당신은 스타트업 사업계획서 전문 컨설턴트입니다."))
	assert.Contains(t, prompt, "## 작성 요청")
	assert.True(t, strings.HasSuffix(prompt, "사업계획서를 작성해주세요."))
}
