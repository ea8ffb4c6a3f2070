package models

import "time"

// QuizResult is a row of quiz_results.
type QuizResult struct {
	ID             string    `db:"id"` // ULID
	UserID         string    `db:"user_id"`
	Topic          string    `db:"topic"`
	Score          int       `db:"score"`
	TotalQuestions int       `db:"total_questions"`
	CreatedAt      time.Time `db:"created_at"`
}

// FlashcardSession is a row of flashcard_sessions.
type FlashcardSession struct {
	ID         string    `db:"id"` // ULID
	UserID     string    `db:"user_id"`
	SourceName string    `db:"source_name"`
	CardCount  int       `db:"card_count"`
	CreatedAt  time.Time `db:"created_at"`
}
