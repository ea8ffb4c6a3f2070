package dto

import "edugenie/internal/domain"

// PingResponse is returned by the health check.
type PingResponse struct {
	Message string `json:"message" example:"Pong! The EduGenie backend is running."`
}

// StatusResponse acknowledges a stored submission.
type StatusResponse struct {
	Status  string `json:"status" example:"success"`
	Message string `json:"message" example:"Result saved."`
}

// GenerationResponse documents the generate-quiz payload. The model's object is returned
// as-is with source_name and mode added, so only those keys are fixed.
// @Description Quiz questions or flashcards produced by the model
type GenerationResponse struct {
	SourceName string                `json:"source_name" example:"Photosynthesis"`
	Mode       string                `json:"mode" example:"quiz"`
	Questions  []domain.QuizQuestion `json:"questions,omitempty"`
	Flashcards []domain.Flashcard    `json:"flashcards,omitempty"`
}
