package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"edugenie/internal/domain"
	"edugenie/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudyHandler_SubmitResult(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var got *domain.QuizResult
		mockSvc := &MockStudyService{SubmitQuizResultFunc: func(ctx context.Context, result *domain.QuizResult) error {
			got = result
			return nil
		}}
		app := newApp(nil, mockSvc)

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/submit-result",
			map[string]any{"user_id": "user-1", "topic": "Rome", "score": 4, "total_questions": 5}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, map[string]string{"status": "success", "message": "Result saved."}, decode[map[string]string](t, resp))

		require.NotNil(t, got)
		assert.Equal(t, &domain.QuizResult{UserID: "user-1", Topic: "Rome", Score: 4, TotalQuestions: 5}, got)
	})

	t.Run("missing field", func(t *testing.T) {
		app := newApp(nil, &MockStudyService{})

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/submit-result",
			map[string]any{"user_id": "user-1", "topic": "Rome", "score": 4}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		body := decode[map[string][]map[string]string](t, resp)
		require.Len(t, body["detail"], 1)
		assert.Equal(t, "total_questions", body["detail"][0]["field"])
	})

	t.Run("wrong type", func(t *testing.T) {
		app := newApp(nil, &MockStudyService{})

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/submit-result",
			`{"user_id":"user-1","topic":"Rome","score":"four","total_questions":5}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("malformed json", func(t *testing.T) {
		app := newApp(nil, &MockStudyService{})

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/submit-result", `{"user_id":`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, "Invalid request body.", decode[map[string]any](t, resp)["detail"])
	})

	t.Run("store failure", func(t *testing.T) {
		mockSvc := &MockStudyService{SubmitQuizResultFunc: func(ctx context.Context, result *domain.QuizResult) error {
			return domain.NewStoreWriteError("Failed to save quiz result.", errors.New("connection refused"))
		}}
		app := newApp(nil, mockSvc)

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/submit-result",
			map[string]any{"user_id": "u", "topic": "t", "score": 1, "total_questions": 1}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "Failed to save quiz result.", decode[map[string]any](t, resp)["detail"])
	})
}

func TestStudyHandler_SubmitFlashcardSession(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var got *domain.FlashcardSession
		mockSvc := &MockStudyService{SubmitFlashcardSessionFunc: func(ctx context.Context, session *domain.FlashcardSession) error {
			got = session
			return nil
		}}
		app := newApp(nil, mockSvc)

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/submit-flashcard-session",
			map[string]any{"user_id": "user-1", "source_name": "biology.pdf", "card_count": 12}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, map[string]string{"status": "success", "message": "Flashcard session saved."}, decode[map[string]string](t, resp))
		assert.Equal(t, &domain.FlashcardSession{UserID: "user-1", SourceName: "biology.pdf", CardCount: 12}, got)
	})

	t.Run("missing fields", func(t *testing.T) {
		app := newApp(nil, &MockStudyService{})

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/submit-flashcard-session", `{}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Len(t, decode[map[string][]map[string]string](t, resp)["detail"], 3)
	})
}

func TestStudyHandler_Dashboard(t *testing.T) {
	t.Run("returns submitted results", func(t *testing.T) {
		repo := &memoryStudyRepository{}
		app := newApp(nil, service.NewStudyService(repo))

		submissions := []map[string]any{
			{"user_id": "user-42", "topic": "Rome", "score": 4, "total_questions": 5},
			{"user_id": "user-42", "topic": "Greece", "score": 2, "total_questions": 5},
			{"user_id": "someone-else", "topic": "Egypt", "score": 5, "total_questions": 5},
		}
		for _, s := range submissions {
			resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/submit-result", s))
			require.NoError(t, err)
			require.Equal(t, http.StatusOK, resp.StatusCode)
		}

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/dashboard/user-42", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decode[[]map[string]any](t, resp)
		require.Len(t, body, 2)
		assert.Equal(t, map[string]any{"user_id": "user-42", "topic": "Rome", "score": float64(4), "total_questions": float64(5)}, body[0])
		assert.Equal(t, map[string]any{"user_id": "user-42", "topic": "Greece", "score": float64(2), "total_questions": float64(5)}, body[1])
	})

	t.Run("unknown user gets an empty array", func(t *testing.T) {
		app := newApp(nil, service.NewStudyService(&memoryStudyRepository{}))

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/dashboard/nobody", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Empty(t, decode[[]map[string]any](t, resp))
	})

	t.Run("escaped user id", func(t *testing.T) {
		var gotID string
		mockSvc := &MockStudyService{GetDashboardFunc: func(ctx context.Context, userID string) ([]*domain.QuizResult, error) {
			gotID = userID
			return nil, nil
		}}
		app := newApp(nil, mockSvc)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/dashboard/jane%20doe", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "jane doe", gotID)
	})

	t.Run("store failure", func(t *testing.T) {
		mockSvc := &MockStudyService{GetDashboardFunc: func(ctx context.Context, userID string) ([]*domain.QuizResult, error) {
			return nil, domain.NewStoreReadError("Failed to load dashboard.", errors.New("timeout"))
		}}
		app := newApp(nil, mockSvc)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/dashboard/user-1", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "Failed to load dashboard.", decode[map[string]any](t, resp)["detail"])
	})
}

func TestHealthHandler_Ping(t *testing.T) {
	app := newApp(nil, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]string{"message": "Pong! The EduGenie backend is running."}, decode[map[string]string](t, resp))
}
