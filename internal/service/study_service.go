package service

import (
	"context"

	"edugenie/internal/domain"
	"edugenie/internal/logger"

	"go.uber.org/zap"
)

// StudyService records finished quizzes and flashcard runs and serves the dashboard.
type StudyService interface {
	SubmitQuizResult(ctx context.Context, result *domain.QuizResult) error
	SubmitFlashcardSession(ctx context.Context, session *domain.FlashcardSession) error
	GetDashboard(ctx context.Context, userID string) ([]*domain.QuizResult, error)
}

type studyServiceImpl struct {
	repo domain.StudyRepository
}

// NewStudyService creates a StudyService on top of repo.
func NewStudyService(repo domain.StudyRepository) StudyService {
	return &studyServiceImpl{repo: repo}
}

func (s *studyServiceImpl) SubmitQuizResult(ctx context.Context, result *domain.QuizResult) error {
	if err := s.repo.SaveQuizResult(ctx, result); err != nil {
		logger.Get().Error("Failed to save quiz result", zap.String("user_id", result.UserID), zap.Error(err))
		return domain.NewStoreWriteError("Failed to save quiz result.", err)
	}
	logger.Get().Info("Saved quiz result",
		zap.String("id", result.ID),
		zap.String("user_id", result.UserID),
		zap.Int("score", result.Score),
		zap.Int("total_questions", result.TotalQuestions))
	return nil
}

func (s *studyServiceImpl) SubmitFlashcardSession(ctx context.Context, session *domain.FlashcardSession) error {
	if err := s.repo.SaveFlashcardSession(ctx, session); err != nil {
		logger.Get().Error("Failed to save flashcard session", zap.String("user_id", session.UserID), zap.Error(err))
		return domain.NewStoreWriteError("Failed to save flashcard session.", err)
	}
	logger.Get().Info("Saved flashcard session",
		zap.String("id", session.ID),
		zap.String("user_id", session.UserID),
		zap.Int("card_count", session.CardCount))
	return nil
}

// GetDashboard returns up to domain.MaxDashboardResults results for userID.
func (s *studyServiceImpl) GetDashboard(ctx context.Context, userID string) ([]*domain.QuizResult, error) {
	results, err := s.repo.ListResultsForUser(ctx, userID, domain.MaxDashboardResults)
	if err != nil {
		logger.Get().Error("Failed to load dashboard", zap.String("user_id", userID), zap.Error(err))
		return nil, domain.NewStoreReadError("Failed to load dashboard.", err)
	}
	if results == nil {
		results = []*domain.QuizResult{}
	}
	return results, nil
}
