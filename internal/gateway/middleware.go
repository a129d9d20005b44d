package gateway

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const HeaderCorrelationID = "X-Correlation-Id"

const correlationIDKey = "correlationId"

// CorrelationID tags every request with an id that is echoed to the client
// and propagated to the upstream services.
func CorrelationID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cid := c.Get(HeaderCorrelationID)
		if cid == "" {
			cid = uuid.NewString()
		}
		c.Locals(correlationIDKey, cid)
		c.Set(HeaderCorrelationID, cid)
		return c.Next()
	}
}

func CorrelationIDFromCtx(c *fiber.Ctx) string {
	if v, ok := c.Locals(correlationIDKey).(string); ok {
		return v
	}
	return ""
}
