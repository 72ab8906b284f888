package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/org-directory/internal/pkg/errors"
	"github.com/org-directory/internal/pkg/utils"
)

const bearerPrefix = "Bearer "

// BearerAuth - middleware статической bearer-авторизации
func BearerAuth(token string) fiber.Handler {
	expected := []byte(token)

	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, bearerPrefix) {
			return utils.SendError(c, errors.ErrUnauthorized)
		}

		provided := []byte(strings.TrimPrefix(header, bearerPrefix))
		if subtle.ConstantTimeCompare(provided, expected) != 1 {
			return utils.SendError(c, errors.ErrUnauthorized)
		}

		return c.Next()
	}
}
