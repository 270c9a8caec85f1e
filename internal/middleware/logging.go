package middleware

import (
	"ResponderBot/pkg/log"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
)

func LoggerConfig() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		requestID, ok := c.Locals("X-Request-ID").(string)
		if !ok || requestID == "" {
			requestID = "unknown"
		}

		c.Locals("request_id", requestID)

		err := c.Next()

		latency := time.Since(start)
		status := c.Response().StatusCode()

		if err != nil && status == fiber.StatusInternalServerError {
			return err
		}

		logFields := log.Fields{
			"request_id":    requestID,
			"method":        c.Method(),
			"path":          c.Path(),
			"status":        status,
			"latency_ms":    latency.Milliseconds(),
			"ip":            c.IP(),
			"response_size": len(c.Response().Body()),
		}

		if len(c.Request().Body()) > 0 {
			logFields["request_body"] = summarizeRequestBody(c.Request().Body())
		}

		if status >= 500 {
			log.Error(logFields, "Server error")
		} else if status >= 400 {
			log.Warn(logFields, "Client error")
		} else {
			log.Info(logFields, "Success")
		}

		return err
	}
}

// summarizeRequestBody keeps admin save payloads out of the log: the
// full intent library can be megabytes, so only its top-level shape is
// recorded.
func summarizeRequestBody(body []byte) string {
	var jsonBody map[string]json.RawMessage
	if err := json.Unmarshal(body, &jsonBody); err != nil {
		return "[non-JSON body]"
	}

	keys := make([]string, 0, len(jsonBody))
	for k := range jsonBody {
		keys = append(keys, k)
	}

	summary, err := json.Marshal(keys)
	if err != nil {
		return "[summary-failed]"
	}

	return string(summary)
}
