package dto

// QuizResultRequest is the body of POST /api/submit-result.
// @Description A finished quiz
type QuizResultRequest struct {
	UserID         *string `json:"user_id" example:"user-123"`
	Topic          *string `json:"topic" example:"Photosynthesis"`
	Score          *int    `json:"score" example:"4"`
	TotalQuestions *int    `json:"total_questions" example:"5"`
}

// FlashcardSessionRequest is the body of POST /api/submit-flashcard-session.
// @Description A completed flashcard run
type FlashcardSessionRequest struct {
	UserID     *string `json:"user_id" example:"user-123"`
	SourceName *string `json:"source_name" example:"biology.pdf"`
	CardCount  *int    `json:"card_count" example:"10"`
}

// QuizResultResponse is one entry of the dashboard.
type QuizResultResponse struct {
	UserID         string `json:"user_id"`
	Topic          string `json:"topic"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"total_questions"`
}
