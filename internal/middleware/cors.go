package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CORS allows credentialed requests from one origin with any method and header.
// AllowHeaders stays empty so preflights echo Access-Control-Request-Headers; a literal
// "*" is not a wildcard for credentialed requests.
func CORS(allowOrigin string) fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:     allowOrigin,
		AllowCredentials: true,
		AllowMethods: strings.Join([]string{
			fiber.MethodGet,
			fiber.MethodPost,
			fiber.MethodPut,
			fiber.MethodPatch,
			fiber.MethodDelete,
			fiber.MethodHead,
			fiber.MethodOptions,
		}, ","),
	})
}
