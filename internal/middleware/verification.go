package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Verification rejects any request whose x-verification-code header does not
// equal the configured secret. An empty secret rejects everything rather than
// opening the API up.
func Verification(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			code := c.Request().Header.Get(HeaderVerificationCode)
			if secret == "" || code != secret {
				return c.JSON(http.StatusUnauthorized, map[string]any{
					"status":  false,
					"message": "unauthorized",
				})
			}
			return next(c)
		}
	}
}
