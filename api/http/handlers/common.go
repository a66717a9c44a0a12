package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jobpilot/ats/api/http/presenter"
)

// callerID extracts the authenticated user id set by the JWT middleware.
func callerID(c *fiber.Ctx) (uuid.UUID, error) {
	userIDStr, _ := c.Locals("userId").(string)
	return uuid.Parse(userIDStr)
}

// unauthorized is the fallback when the middleware locals are missing or
// malformed; in practice the middleware rejects such requests first.
func unauthorized(c *fiber.Ctx) error {
	return presenter.Error(c, http.StatusUnauthorized, "could not identify caller")
}

// internalError logs the failure with context and returns a generic 500.
// Upstream and database errors never leak detail to the caller.
func internalError(c *fiber.Ctx, op string, err error) error {
	log.Printf("%s %s: %s: %v", c.Method(), c.Path(), op, err)
	return presenter.Error(c, http.StatusInternalServerError, "internal error")
}

// dateLayouts accepted for deadline and date-range inputs.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func parseLimitOffset(c *fiber.Ctx, defLimit int) (limit, offset int) {
	limit = defLimit
	offset = 0
	if v := strings.TrimSpace(c.Query("limit")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}
	if v := strings.TrimSpace(c.Query("offset")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}
