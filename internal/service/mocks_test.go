package service

import (
	"context"
	"time"

	"edugenie/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockContentGenerator ---
type MockContentGenerator struct {
	mock.Mock
}

func (m *MockContentGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// --- MockStudyRepository ---
type MockStudyRepository struct {
	mock.Mock
}

func (m *MockStudyRepository) SaveQuizResult(ctx context.Context, result *domain.QuizResult) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}

func (m *MockStudyRepository) SaveFlashcardSession(ctx context.Context, session *domain.FlashcardSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockStudyRepository) ListResultsForUser(ctx context.Context, userID string, limit int) ([]*domain.QuizResult, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.QuizResult), args.Error(1)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}
