package context

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// RequestIDKey matches the key pkg/log reads when decorating entries.
const RequestIDKey = "request_id"

const headerRequestID = "X-Request-ID"

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

func GetRequestID(ctx context.Context) string {
	if ctx == nil {
		return "unknown"
	}
	requestID, ok := ctx.Value(RequestIDKey).(string)
	if !ok || requestID == "" {
		return "unknown"
	}
	return requestID
}

// FromFiberCtx detaches the request ID from the fiber context into a plain
// context.Context, so services and repositories never touch fiber types.
func FromFiberCtx(c *fiber.Ctx) context.Context {
	requestID, ok := c.Locals(headerRequestID).(string)
	if !ok || requestID == "" {
		requestID = c.Get(headerRequestID)
	}
	if requestID == "" {
		requestID = "unknown"
	}

	return WithRequestID(context.Background(), requestID)
}
