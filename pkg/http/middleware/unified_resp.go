package middleware

import (
	"github.com/gofiber/fiber/v2"

	httpx "github.com/go-quizhub/quizhub/pkg/http"
)

// Locals keys for the unified response middleware.
const (
	// DETAIL 用于设置响应数据，例如查询，分页等，需要返回数据
	DETAIL = "detail"
	// OPERATION 用于设置响应数据，例如新增，修改，删除等，只返回操作结果
	OPERATION = "operation"
)

// UnifiedResponseMiddleware 统一响应拦截器
// c.Locals(DETAIL, value) 用于设置响应数据
func UnifiedResponseMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		if err != nil {
			return err
		}

		// 业务逻辑错误
		if c.Response().StatusCode() != fiber.StatusOK {
			return httpx.WithRepErrMsg(c, httpx.Failed.Code, httpx.Failed.Msg, c.Path())
		}

		// handler 已经写过响应体（错误分支），不再包装
		if len(c.Response().Body()) > 0 {
			return nil
		}

		if detail := c.Locals(DETAIL); detail != nil {
			return httpx.WithRepJSON(c, detail)
		}

		// 业务逻辑正确, 无响应数据, 只返回结果
		if c.Locals(OPERATION) != nil {
			return httpx.WithRepNotDetail(c)
		}

		return nil
	}
}
