package middleware

import (
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/config"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/dto"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

// LoginPath is where page clients send users without a usable session.
const LoginPath = "/login"

func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Unauthorized",
			})
		},
	})
}

// JWTProtectedPage is JWTProtected for page-load endpoints: the 401 body
// carries a redirect to the login page.
func JWTProtectedPage(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.RedirectResponse{
				Error:    true,
				Message:  "Unauthorized",
				Redirect: LoginPath,
			})
		},
	})
}
