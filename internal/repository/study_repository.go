package repository

import (
	"context"
	"fmt"
	"time"

	"edugenie/internal/domain"
	"edugenie/internal/repository/models"
	"edugenie/internal/util"

	"github.com/jmoiron/sqlx"
)

// sqlxStudyRepository implements domain.StudyRepository on PostgreSQL using sqlx.
type sqlxStudyRepository struct {
	db *sqlx.DB
}

// NewSQLXStudyRepository creates a new instance of sqlxStudyRepository.
func NewSQLXStudyRepository(db *sqlx.DB) domain.StudyRepository {
	return &sqlxStudyRepository{db: db}
}

func toDomainQuizResult(m *models.QuizResult) *domain.QuizResult {
	if m == nil {
		return nil
	}
	return &domain.QuizResult{
		ID:             m.ID,
		UserID:         m.UserID,
		Topic:          m.Topic,
		Score:          m.Score,
		TotalQuestions: m.TotalQuestions,
		CreatedAt:      m.CreatedAt,
	}
}

func fromDomainQuizResult(d *domain.QuizResult) *models.QuizResult {
	if d == nil {
		return nil
	}
	return &models.QuizResult{
		ID:             d.ID,
		UserID:         d.UserID,
		Topic:          d.Topic,
		Score:          d.Score,
		TotalQuestions: d.TotalQuestions,
		CreatedAt:      d.CreatedAt,
	}
}

func fromDomainFlashcardSession(d *domain.FlashcardSession) *models.FlashcardSession {
	if d == nil {
		return nil
	}
	return &models.FlashcardSession{
		ID:         d.ID,
		UserID:     d.UserID,
		SourceName: d.SourceName,
		CardCount:  d.CardCount,
		CreatedAt:  d.CreatedAt,
	}
}

// SaveQuizResult inserts a new row. The ID and CreatedAt are assigned when unset and
// written back to result.
func (r *sqlxStudyRepository) SaveQuizResult(ctx context.Context, result *domain.QuizResult) error {
	if result == nil {
		return fmt.Errorf("quiz result is nil")
	}
	if result.ID == "" {
		result.ID = util.NewULID()
	}
	if result.CreatedAt.IsZero() {
		result.CreatedAt = time.Now().UTC()
	}
	m := fromDomainQuizResult(result)

	query := `INSERT INTO quiz_results (id, user_id, topic, score, total_questions, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := r.db.ExecContext(ctx, query, m.ID, m.UserID, m.Topic, m.Score, m.TotalQuestions, m.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert quiz result: %w", err)
	}
	return nil
}

// SaveFlashcardSession inserts a new row. The ID and CreatedAt are assigned when unset.
func (r *sqlxStudyRepository) SaveFlashcardSession(ctx context.Context, session *domain.FlashcardSession) error {
	if session == nil {
		return fmt.Errorf("flashcard session is nil")
	}
	if session.ID == "" {
		session.ID = util.NewULID()
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now().UTC()
	}
	m := fromDomainFlashcardSession(session)

	query := `INSERT INTO flashcard_sessions (id, user_id, source_name, card_count, created_at)
	          VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.db.ExecContext(ctx, query, m.ID, m.UserID, m.SourceName, m.CardCount, m.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert flashcard session: %w", err)
	}
	return nil
}

// ListResultsForUser returns the user's results in insertion order, at most limit rows.
// A user with no results gets an empty, non-nil slice.
func (r *sqlxStudyRepository) ListResultsForUser(ctx context.Context, userID string, limit int) ([]*domain.QuizResult, error) {
	if limit <= 0 || limit > domain.MaxDashboardResults {
		limit = domain.MaxDashboardResults
	}

	var rows []models.QuizResult
	query := `SELECT id, user_id, topic, score, total_questions, created_at
	          FROM quiz_results
	          WHERE user_id = $1
	          ORDER BY created_at, id
	          LIMIT $2`
	if err := r.db.SelectContext(ctx, &rows, query, userID, limit); err != nil {
		return nil, fmt.Errorf("failed to list quiz results for user %s: %w", userID, err)
	}

	results := make([]*domain.QuizResult, 0, len(rows))
	for i := range rows {
		results = append(results, toDomainQuizResult(&rows[i]))
	}
	return results, nil
}
