package middleware

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
)

// Logging emits one key=value line per request after the handler chain
// finishes. Handler errors are committed to the response first so the logged
// status reflects what the caller saw, then returned unchanged.
func Logging() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			log.Printf("request_id=%s method=%s path=%s status=%d duration=%s",
				RequestIDFromContext(c), req.Method, req.URL.Path, c.Response().Status, time.Since(start))

			return err
		}
	}
}
