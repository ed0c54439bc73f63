package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	goJwt "github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"

	httpx "github.com/go-quizhub/quizhub/pkg/http"
	"github.com/go-quizhub/quizhub/pkg/http/auth/jwt"
	"github.com/go-quizhub/quizhub/pkg/log"
)

// CLAIMS locals key holding the parsed auth claims.
const CLAIMS = "claims"

// AuthorizationMiddleware 认证中间件
// secretKey: 用于验证 JWT 的密钥
// client: Redis 客户端，校验令牌是否仍在会话中
// This function is used as the middleware of fiber.
func AuthorizationMiddleware(secretKey, tokenKeyPrefix string, client *redis.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		aToken := c.Get("Authorization")
		if aToken == "" {
			return httpx.WithRepErrMsg(c, httpx.TokenBeEmpty.Code, httpx.TokenBeEmpty.Msg, c.Path())
		}

		// 按空格分割
		parts := strings.SplitN(aToken, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return httpx.WithRepErrMsg(c, httpx.TokenBeEmpty.Code, httpx.TokenBeEmpty.Msg, c.Path())
		}

		claims, err := jwt.ParseToken(parts[1], secretKey)
		if err != nil {
			if errors.Is(err, goJwt.ErrTokenExpired) {
				return httpx.WithRepErrMsg(c, httpx.TokenExpired.Code, httpx.TokenExpired.Msg, c.Path())
			}
			log.Errorf("parse token failed: %v", err)
			return httpx.WithRepErrMsg(c, httpx.InvalidToken.Code, httpx.InvalidToken.Msg, c.Path())
		}

		// 检查 Redis 中是否存在 Token
		tokenKey := tokenKeyPrefix + claims.UserId
		exists, err := client.Exists(context.Background(), tokenKey).Result()
		if err != nil {
			log.Errorf("redis check token exists failed: %v", err)
			return httpx.WithRepErrMsg(c, httpx.InternalError.Code, httpx.InternalError.Msg, c.Path())
		}
		if exists == 0 {
			return httpx.WithRepErrMsg(c, httpx.TokenExpired.Code, httpx.TokenExpired.Msg, c.Path())
		}

		c.Locals(CLAIMS, claims)
		return c.Next()
	}
}
