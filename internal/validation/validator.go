package validation

import (
	"strconv"
	"strings"

	"edugenie/internal/domain"
	"edugenie/internal/dto"
)

// Validator checks request presence and type constraints. Content is not validated.
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateQuizResultRequest requires every field of a quiz result.
func (v *Validator) ValidateQuizResultRequest(req *dto.QuizResultRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if req.UserID == nil {
		errors = append(errors, domain.NewMissingFieldError("user_id"))
	}
	if req.Topic == nil {
		errors = append(errors, domain.NewMissingFieldError("topic"))
	}
	if req.Score == nil {
		errors = append(errors, domain.NewMissingFieldError("score"))
	}
	if req.TotalQuestions == nil {
		errors = append(errors, domain.NewMissingFieldError("total_questions"))
	}
	return errors
}

// ValidateFlashcardSessionRequest requires every field of a flashcard session.
func (v *Validator) ValidateFlashcardSessionRequest(req *dto.FlashcardSessionRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if req.UserID == nil {
		errors = append(errors, domain.NewMissingFieldError("user_id"))
	}
	if req.SourceName == nil {
		errors = append(errors, domain.NewMissingFieldError("source_name"))
	}
	if req.CardCount == nil {
		errors = append(errors, domain.NewMissingFieldError("card_count"))
	}
	return errors
}

// ParseNumQuestions reads the num_questions form value. An absent value means
// domain.DefaultNumQuestions; anything else must be a positive integer.
func (v *Validator) ParseNumQuestions(raw string) (int, domain.ValidationErrors) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return domain.DefaultNumQuestions, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.ValidationErrors{domain.NewInvalidFormatError("num_questions", "value is not a valid integer")}
	}
	if n <= 0 {
		return 0, domain.ValidationErrors{domain.NewInvalidFormatError("num_questions", "value must be greater than 0")}
	}
	return n, nil
}
