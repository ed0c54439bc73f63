package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	httpx "github.com/go-quizhub/quizhub/pkg/http"
)

// AccessLogMiddleware 访问日志
func AccessLogMiddleware(httpConfig *httpx.Http) fiber.Handler {
	// tips: 这里的路径是不需要记录日志的路径
	excludedPaths := map[string]struct{}{
		"/health": {},
	}

	if httpConfig != nil && !httpConfig.AccessLog {
		return func(c *fiber.Ctx) error {
			return c.Next()
		}
	}

	return logger.New(logger.Config{
		TimeFormat: time.RFC3339Nano,
		TimeZone:   "Local",
		Format:     "ip:[${ip}] method:[${method}] path:[${path}] latency:[${latency}] status:[${status}] error:[${error}]\n",
		Next: func(c *fiber.Ctx) bool {
			_, skip := excludedPaths[c.Path()]
			return skip
		},
	})
}
