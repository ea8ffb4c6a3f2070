package handler

import (
	"fmt"

	"edugenie/internal/dto"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler answers liveness checks.
type HealthHandler struct {
	appName string
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(appName string) *HealthHandler {
	return &HealthHandler{appName: appName}
}

// Ping godoc
// @Summary Health check
// @Description Reports that the backend is running
// @Tags health
// @Produce json
// @Success 200 {object} dto.PingResponse
// @Router /ping [get]
func (h *HealthHandler) Ping(c *fiber.Ctx) error {
	return c.JSON(dto.PingResponse{
		Message: fmt.Sprintf("Pong! The %s backend is running.", h.appName),
	})
}
