package domain

import (
	"context"
	"time"
)

// MaxDashboardResults caps the number of quiz results returned for one user.
const MaxDashboardResults = 100

// QuizResult is a finished quiz as submitted by the client. Stored once, never updated.
type QuizResult struct {
	ID             string
	UserID         string
	Topic          string
	Score          int
	TotalQuestions int
	CreatedAt      time.Time
}

// FlashcardSession summarizes a completed flashcard run. Stored once, never updated.
type FlashcardSession struct {
	ID         string
	UserID     string
	SourceName string
	CardCount  int
	CreatedAt  time.Time
}

// StudyRepository is the store gateway for quiz results and flashcard sessions.
// Duplicate submissions are distinct records.
type StudyRepository interface {
	SaveQuizResult(ctx context.Context, result *QuizResult) error
	SaveFlashcardSession(ctx context.Context, session *FlashcardSession) error
	// ListResultsForUser returns at most limit results in store order.
	ListResultsForUser(ctx context.Context, userID string, limit int) ([]*QuizResult, error)
}
