package handler

import (
	"encoding/json"
	"net/url"

	"edugenie/internal/domain"
	"edugenie/internal/dto"
	"edugenie/internal/logger"
	"edugenie/internal/service"
	"edugenie/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// StudyHandler handles quiz result and flashcard session submissions and the dashboard.
type StudyHandler struct {
	service   service.StudyService
	validator *validation.Validator
}

// NewStudyHandler creates a new StudyHandler instance
func NewStudyHandler(service service.StudyService) *StudyHandler {
	return &StudyHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// decodeBody reads a JSON body regardless of the declared content type.
func decodeBody(c *fiber.Ctx, out any) error {
	if err := json.Unmarshal(c.Body(), out); err != nil {
		logger.Get().Warn("Failed to parse request body", zap.String("path", c.Path()), zap.Error(err))
		return domain.NewError(domain.CodeInvalidInput, "Invalid request body.", err)
	}
	return nil
}

// SubmitResult godoc
// @Summary Save a quiz result
// @Description Stores a finished quiz. Duplicate submissions are stored as separate records.
// @Tags study
// @Accept json
// @Produce json
// @Param result body dto.QuizResultRequest true "Quiz result"
// @Success 200 {object} dto.StatusResponse
// @Failure 422 {object} dto.ValidationErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /submit-result [post]
func (h *StudyHandler) SubmitResult(c *fiber.Ctx) error {
	var req dto.QuizResultRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}
	if verrs := h.validator.ValidateQuizResultRequest(&req); len(verrs) > 0 {
		return verrs
	}

	result := &domain.QuizResult{
		UserID:         *req.UserID,
		Topic:          *req.Topic,
		Score:          *req.Score,
		TotalQuestions: *req.TotalQuestions,
	}
	if err := h.service.SubmitQuizResult(c.UserContext(), result); err != nil {
		return err
	}
	return c.JSON(dto.StatusResponse{Status: "success", Message: "Result saved."})
}

// SubmitFlashcardSession godoc
// @Summary Save a flashcard session
// @Description Stores a summary of a completed flashcard run.
// @Tags study
// @Accept json
// @Produce json
// @Param session body dto.FlashcardSessionRequest true "Flashcard session"
// @Success 200 {object} dto.StatusResponse
// @Failure 422 {object} dto.ValidationErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /submit-flashcard-session [post]
func (h *StudyHandler) SubmitFlashcardSession(c *fiber.Ctx) error {
	var req dto.FlashcardSessionRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}
	if verrs := h.validator.ValidateFlashcardSessionRequest(&req); len(verrs) > 0 {
		return verrs
	}

	session := &domain.FlashcardSession{
		UserID:     *req.UserID,
		SourceName: *req.SourceName,
		CardCount:  *req.CardCount,
	}
	if err := h.service.SubmitFlashcardSession(c.UserContext(), session); err != nil {
		return err
	}
	return c.JSON(dto.StatusResponse{Status: "success", Message: "Flashcard session saved."})
}

// GetDashboard godoc
// @Summary List a user's quiz results
// @Description Returns up to 100 stored quiz results for the user, oldest first.
// @Tags study
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {array} dto.QuizResultResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard/{user_id} [get]
func (h *StudyHandler) GetDashboard(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	if unescaped, err := url.PathUnescape(userID); err == nil {
		userID = unescaped
	}

	results, err := h.service.GetDashboard(c.UserContext(), userID)
	if err != nil {
		return err
	}

	resp := make([]dto.QuizResultResponse, 0, len(results))
	for _, r := range results {
		resp = append(resp, dto.QuizResultResponse{
			UserID:         r.UserID,
			Topic:          r.Topic,
			Score:          r.Score,
			TotalQuestions: r.TotalQuestions,
		})
	}
	return c.JSON(resp)
}
