package serverutils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// SignatureMiddleware validates the X-Hub-Signature-256 header Meta attaches
// to webhook deliveries: sha256 HMAC of the raw body keyed by the app secret.
// With an empty secret the check is disabled.
func SignatureMiddleware(appSecret string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if appSecret == "" {
			return ctx.Next()
		}

		header := ctx.Get("X-Hub-Signature-256")
		if !strings.HasPrefix(header, "sha256=") {
			return ctx.Status(fiber.StatusForbidden).JSON(ErrorResponse(403, "Missing signature"))
		}

		mac := hmac.New(sha256.New, []byte(appSecret))
		mac.Write(ctx.Body())
		expected := hex.EncodeToString(mac.Sum(nil))

		if !hmac.Equal([]byte(expected), []byte(strings.TrimPrefix(header, "sha256="))) {
			return ctx.Status(fiber.StatusForbidden).JSON(ErrorResponse(403, "Invalid signature"))
		}
		return ctx.Next()
	}
}
