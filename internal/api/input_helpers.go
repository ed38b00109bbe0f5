package api

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gearbox-app/gearbox/internal/services"
	"github.com/gofiber/fiber/v2"
)

// errInvalidID reads as a 404: a malformed ID names nothing.
var errInvalidID = fmt.Errorf("%w: invalid id", services.ErrNotFound)

// parseDateField accepts the two shapes clients actually send for dates:
// plain YYYY-MM-DD and full RFC 3339.
func (handler *Handler) parseDateField(raw string) (time.Time, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, false
	}
	if parsed, err := time.ParseInLocation("2006-01-02", value, handler.location); err == nil {
		return parsed, true
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed.In(handler.location), true
	}
	return time.Time{}, false
}

func parseIDParam(c *fiber.Ctx, name string) (uint, bool) {
	raw := strings.TrimSpace(c.Params(name))
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || value == 0 {
		return 0, false
	}
	return uint(value), true
}
