package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"edugenie/internal/domain"
	"edugenie/internal/handler"
	"edugenie/internal/middleware"
	"edugenie/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

// --- Manual Mocks ---

// MockGenerationService
type MockGenerationService struct {
	GenerateFunc func(ctx context.Context, req *domain.GenerationRequest) (domain.GenerationResult, error)
}

func (m *MockGenerationService) Generate(ctx context.Context, req *domain.GenerationRequest) (domain.GenerationResult, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, req)
	}
	panic("MockGenerationService.GenerateFunc not implemented")
}

// MockStudyService
type MockStudyService struct {
	SubmitQuizResultFunc       func(ctx context.Context, result *domain.QuizResult) error
	SubmitFlashcardSessionFunc func(ctx context.Context, session *domain.FlashcardSession) error
	GetDashboardFunc           func(ctx context.Context, userID string) ([]*domain.QuizResult, error)
}

func (m *MockStudyService) SubmitQuizResult(ctx context.Context, result *domain.QuizResult) error {
	if m.SubmitQuizResultFunc != nil {
		return m.SubmitQuizResultFunc(ctx, result)
	}
	panic("MockStudyService.SubmitQuizResultFunc not implemented")
}

func (m *MockStudyService) SubmitFlashcardSession(ctx context.Context, session *domain.FlashcardSession) error {
	if m.SubmitFlashcardSessionFunc != nil {
		return m.SubmitFlashcardSessionFunc(ctx, session)
	}
	panic("MockStudyService.SubmitFlashcardSessionFunc not implemented")
}

func (m *MockStudyService) GetDashboard(ctx context.Context, userID string) ([]*domain.QuizResult, error) {
	if m.GetDashboardFunc != nil {
		return m.GetDashboardFunc(ctx, userID)
	}
	panic("MockStudyService.GetDashboardFunc not implemented")
}

// stubGenerator replies with a fixed string or error.
type stubGenerator struct {
	reply string
	err   error
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return s.reply, s.err
}

// memoryStudyRepository keeps rows in insertion order.
type memoryStudyRepository struct {
	mu       sync.Mutex
	results  []*domain.QuizResult
	sessions []*domain.FlashcardSession
}

func (r *memoryStudyRepository) SaveQuizResult(ctx context.Context, result *domain.QuizResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *result
	r.results = append(r.results, &copied)
	return nil
}

func (r *memoryStudyRepository) SaveFlashcardSession(ctx context.Context, session *domain.FlashcardSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *session
	r.sessions = append(r.sessions, &copied)
	return nil
}

func (r *memoryStudyRepository) ListResultsForUser(ctx context.Context, userID string, limit int) ([]*domain.QuizResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.QuizResult
	for _, res := range r.results {
		if res.UserID == userID && len(out) < limit {
			out = append(out, res)
		}
	}
	return out, nil
}

// --- Helpers ---

func newApp(gen service.GenerationService, study service.StudyService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	api := app.Group("/api")
	api.Get("/ping", handler.NewHealthHandler("EduGenie").Ping)
	if gen != nil {
		api.Post("/generate-quiz", handler.NewGenerationHandler(gen).GenerateContent)
	}
	if study != nil {
		h := handler.NewStudyHandler(study)
		api.Post("/submit-result", h.SubmitResult)
		api.Post("/submit-flashcard-session", h.SubmitFlashcardSession)
		api.Get("/dashboard/:user_id", h.GetDashboard)
	}
	return app
}

type upload struct {
	filename string
	data     []byte
}

func multipartRequest(t *testing.T, fields map[string]string, file *upload) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if file != nil {
		part, err := w.CreateFormFile("file", file.filename)
		require.NoError(t, err)
		_, err = part.Write(file.data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/generate-quiz", &body)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
	return req
}

func jsonRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()
	var raw []byte
	switch b := body.(type) {
	case string:
		raw = []byte(b)
	default:
		var err error
		raw, err = json.Marshal(b)
		require.NoError(t, err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out T
	require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	return out
}
