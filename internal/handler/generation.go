package handler

import (
	"io"
	"mime/multipart"

	"edugenie/internal/domain"
	"edugenie/internal/logger"
	"edugenie/internal/service"
	"edugenie/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GenerationHandler serves the content generation endpoint.
type GenerationHandler struct {
	service   service.GenerationService
	validator *validation.Validator
}

// NewGenerationHandler creates a new GenerationHandler instance
func NewGenerationHandler(service service.GenerationService) *GenerationHandler {
	return &GenerationHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// GenerateContent godoc
// @Summary Generate a quiz or flashcards
// @Description Builds quiz questions or flashcards from a topic or an uploaded PDF, DOCX or PPTX. An uploaded file takes precedence over the topic.
// @Tags generation
// @Accept multipart/form-data
// @Produce json
// @Param mode formData string false "quiz or flashcard" default(quiz)
// @Param num_questions formData int false "Number of questions or flashcards" default(5)
// @Param difficulty formData string false "Target level, quiz mode only"
// @Param topic formData string false "Topic to generate from"
// @Param file formData file false "Document to generate from"
// @Success 200 {object} dto.GenerationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ValidationErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /generate-quiz [post]
func (h *GenerationHandler) GenerateContent(c *fiber.Ctx) error {
	numQuestions, verrs := h.validator.ParseNumQuestions(c.FormValue("num_questions"))
	if len(verrs) > 0 {
		return verrs
	}

	req := &domain.GenerationRequest{
		Mode:         domain.ParseMode(c.FormValue("mode")),
		NumQuestions: numQuestions,
		Difficulty:   c.FormValue("difficulty"),
		Topic:        c.FormValue("topic"),
	}

	// A missing file part is not an error; FormFile fails for any request without one.
	if fh, err := c.FormFile("file"); err == nil && fh.Filename != "" {
		file, err := readUpload(fh)
		if err != nil {
			logger.Get().Error("Failed to read uploaded file", zap.String("filename", fh.Filename), zap.Error(err))
			return domain.NewInternalError("Failed to read uploaded file.", err)
		}
		req.File = file
	}

	result, err := h.service.Generate(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

func readUpload(fh *multipart.FileHeader) (*domain.UploadedFile, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &domain.UploadedFile{Filename: fh.Filename, Data: data}, nil
}
