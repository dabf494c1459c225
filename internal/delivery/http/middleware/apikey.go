package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"golang.org/x/crypto/bcrypt"
)

// APIKeyMiddleware protects the internal sync-completed callback. The
// configured value is a bcrypt hash so the plaintext key never lives in the
// server environment.
type APIKeyMiddleware struct {
	keyHash []byte
}

func NewAPIKeyMiddleware(keyHash string) *APIKeyMiddleware {
	return &APIKeyMiddleware{keyHash: []byte(strings.TrimSpace(keyHash))}
}

func (m *APIKeyMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		if len(m.keyHash) == 0 {
			return NewAppError(fiber.StatusForbidden, "Callback disabled", nil, nil)
		}

		key := strings.TrimSpace(c.Get("X-API-Key"))
		if key == "" {
			return NewAppError(fiber.StatusUnauthorized, "Missing API key", nil, nil)
		}

		if err := bcrypt.CompareHashAndPassword(m.keyHash, []byte(key)); err != nil {
			return NewAppError(fiber.StatusUnauthorized, "Invalid API key", nil, nil)
		}

		return c.Next()
	}
}
