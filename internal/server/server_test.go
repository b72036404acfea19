package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planmate-backend/internal/common/logger"
	"planmate-backend/internal/generation"
	"planmate-backend/internal/interview"
	"planmate-backend/internal/models"
)

type stubCompleter struct {
	plan string
	err  error
}

func (s *stubCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	return s.plan, s.err
}

type testEnv struct {
	router *chi.Mux
	mock   sqlmock.Sqlmock
	redis  *miniredis.Miniredis
}

func newTestEnv(t *testing.T, completer generation.Completer) *testEnv {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { redisClient.Close() })

	log := logger.NewTestLogger(t)
	store := interview.NewStore(db, log)
	cache := generation.NewPlanCache(redisClient, time.Minute)
	svc := generation.NewService(completer, store, cache, nil, nil, log)

	handler := NewHandler(Deps{
		Store:     store,
		Flow:      interview.NewFlow(store, log),
		Generator: svc,
		PlanCache: cache,
		Logger:    log,
		Now: func() time.Time {
			return time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
		},
	})
	return &testEnv{router: NewRouter(handler, nil), mock: mock, redis: mr}
}

func (e *testEnv) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload
}

func interviewRow(id, answers string, plan *string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{"id", "status", "answers", "business_plan", "email", "template_id", "created_at", "updated_at"}).
		AddRow(id, "in_progress", []byte(answers), plan, nil, "preliminary-startup", now, now)
}

func TestGenerateEndpoint(t *testing.T) {
	env := newTestEnv(t, &stubCompleter{plan: "# 사업계획서\n\n## 1. 개요"})

	rec := env.do(http.MethodPost, "/api/generate", `{"answers":{"1":"문제","2":"계기"}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.True(t, strings.HasPrefix(body["businessPlan"].(string), "# "))
}

func TestGenerateEndpointEmptyAnswers(t *testing.T) {
	env := newTestEnv(t, &stubCompleter{plan: "unused"})

	rec := env.do(http.MethodPost, "/api/generate", `{"answers":{}}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "답변이 없습니다.", body["error"])
}

func TestGenerateEndpointInvalidPayload(t *testing.T) {
	env := newTestEnv(t, &stubCompleter{plan: "unused"})

	for _, body := range []string{
		`{"answers":"not an object"}`,
		`{"answers":{"1":42}}`,
		`{}`,
		`not json`,
	} {
		rec := env.do(http.MethodPost, "/api/generate", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body=%s", body)
	}
}

func TestGenerateEndpointModelFailure(t *testing.T) {
	env := newTestEnv(t, &stubCompleter{err: assert.AnError})

	rec := env.do(http.MethodPost, "/api/generate", `{"answers":{"1":"문제"}}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "사업계획서 생성 중 오류가 발생했습니다.", body["error"])
}

func TestGenerateEndpointPersistsForSession(t *testing.T) {
	env := newTestEnv(t, &stubCompleter{plan: "# 계획서"})
	env.mock.ExpectExec(`UPDATE interviews`).
		WithArgs("abc-123", "# 계획서").
		WillReturnResult(sqlmock.NewResult(0, 1))

	rec := env.do(http.MethodPost, "/api/generate", `{"interviewId":"abc-123","answers":{"1":"답"}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, env.mock.ExpectationsWereMet())
	// Plan also lands in the cache for the result view.
	cached, err := env.redis.Get("plan:abc-123")
	require.NoError(t, err)
	assert.Equal(t, "# 계획서", cached)
}

func TestCreateInterviewEndpoint(t *testing.T) {
	env := newTestEnv(t, &stubCompleter{})
	env.mock.ExpectQuery(`INSERT INTO interviews`).
		WillReturnRows(interviewRow("new-id", `{}`, nil))

	rec := env.do(http.MethodPost, "/api/interviews", `{"templateId":"youth-academy"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "new-id", body["id"])
	assert.Equal(t, string(models.StatusInProgress), body["status"])
}

func TestSubmitAnswerEndpoint(t *testing.T) {
	env := newTestEnv(t, &stubCompleter{})
	env.mock.ExpectQuery(`SELECT .+ FROM interviews`).
		WithArgs("abc-123").
		WillReturnRows(interviewRow("abc-123", `{}`, nil))
	env.mock.ExpectExec(`UPDATE interviews`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rec := env.do(http.MethodPost, "/api/interviews/abc-123/answers", `{"answer":"첫 번째 답변"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["complete"])
	next := body["next_question"].(map[string]interface{})
	assert.Equal(t, float64(2), next["id"])
}

func TestSubmitEmptyAnswerEndpoint(t *testing.T) {
	env := newTestEnv(t, &stubCompleter{})

	rec := env.do(http.MethodPost, "/api/interviews/abc-123/answers", `{"answer":"   "}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "답변을 입력해주세요.", body["error"])
}

func TestGetPlanFromCache(t *testing.T) {
	env := newTestEnv(t, &stubCompleter{})
	require.NoError(t, env.redis.Set("plan:abc-123", "# 제목\n\n본문"))

	rec := env.do(http.MethodGet, "/api/interviews/abc-123/plan", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "# 제목\n\n본문", body["business_plan"])
	blocks := body["blocks"].([]interface{})
	first := blocks[0].(map[string]interface{})
	assert.Equal(t, "heading1", first["type"])
	assert.Equal(t, "제목", first["content"])
	// Cache entry is consumed on read.
	assert.False(t, env.redis.Exists("plan:abc-123"))
}

func TestGetPlanFallsBackToDatabase(t *testing.T) {
	env := newTestEnv(t, &stubCompleter{})
	plan := "# 저장된 계획서"
	env.mock.ExpectQuery(`SELECT .+ FROM interviews`).
		WithArgs("abc-123").
		WillReturnRows(interviewRow("abc-123", `{}`, &plan))

	rec := env.do(http.MethodGet, "/api/interviews/abc-123/plan", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, plan, body["business_plan"])
}

func TestGetPlanNotReady(t *testing.T) {
	env := newTestEnv(t, &stubCompleter{})
	env.mock.ExpectQuery(`SELECT .+ FROM interviews`).
		WithArgs("abc-123").
		WillReturnRows(interviewRow("abc-123", `{}`, nil))

	rec := env.do(http.MethodGet, "/api/interviews/abc-123/plan", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "아직 생성된 사업계획서가 없습니다.", body["error"])
}

func TestDownloadPlan(t *testing.T) {
	env := newTestEnv(t, &stubCompleter{})
	plan := "# 사업계획서"
	env.mock.ExpectQuery(`SELECT .+ FROM interviews`).
		WithArgs("abc-123").
		WillReturnRows(interviewRow("abc-123", `{}`, &plan))

	rec := env.do(http.MethodGet, "/api/interviews/abc-123/plan/download", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/markdown; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	assert.Equal(t, plan, rec.Body.String())
}

func TestListTemplatesEndpoint(t *testing.T) {
	env := newTestEnv(t, &stubCompleter{})

	rec := env.do(http.MethodGet, "/api/templates", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Len(t, body["templates"], 3)
}

func TestListQuestionsFallsBackToDefault(t *testing.T) {
	env := newTestEnv(t, &stubCompleter{})

	rec := env.do(http.MethodGet, "/api/templates/unknown/questions", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "preliminary-startup", body["template_id"])
	assert.Len(t, body["questions"], 10)
}

func TestMatchFundingEndpoint(t *testing.T) {
	env := newTestEnv(t, &stubCompleter{})

	rec := env.do(http.MethodGet, "/api/funding/match?type=예비창업자&stage=아이디어&region=서울", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(4), body["count"])
	programs := body["programs"].([]interface{})
	first := programs[0].(map[string]interface{})
	assert.Equal(t, "seoul-youth", first["id"])
}

func TestUpcomingTaxEventsEndpoint(t *testing.T) {
	env := newTestEnv(t, &stubCompleter{})

	rec := env.do(http.MethodGet, "/api/tax/upcoming?types=프리랜서&daysAhead=30", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	events := body["events"].([]interface{})
	require.NotEmpty(t, events)
	first := events[0].(map[string]interface{})
	// Fixed test clock: 2025-05-01, so 종합소득세 lands on 05-31.
	assert.Equal(t, "income-tax", first["id"])
	assert.Equal(t, "2025-05-31", first["due_date"])

	// The monthly-recurring rules ride along regardless of the window.
	monthly := body["monthly"].([]interface{})
	require.Len(t, monthly, 2)
	withholding := monthly[0].(map[string]interface{})
	assert.Equal(t, "withholding", withholding["id"])
	assert.Equal(t, "10", withholding["due_date"])
}

func TestRouterConfiguredCORSOrigins(t *testing.T) {
	handler := NewHandler(Deps{Logger: logger.NewTestLogger(t)})
	router := NewRouter(handler, []string{"https://planmate.kr"})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://planmate.kr")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "https://planmate.kr", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://other.example")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestHealthEndpoint(t *testing.T) {
	env := newTestEnv(t, &stubCompleter{})

	rec := env.do(http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "ok", body["status"])
}
