package router

import (
	"time"

	"github.com/go-quizhub/quizhub/internal/engine/logic"
	"github.com/go-quizhub/quizhub/pkg/ctx"
	httpx "github.com/go-quizhub/quizhub/pkg/http"
	"github.com/go-quizhub/quizhub/pkg/http/auth/jwt"
	"github.com/go-quizhub/quizhub/pkg/http/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

/**
 * @file: router.go
 * @description: setup router, internal api router
 */

type Router struct {
	Http *httpx.Http
	Ctx  *ctx.Context

	User         *logic.UserLogic
	Company      *logic.CompanyLogic
	Membership   *logic.MembershipLogic
	Invitation   *logic.InvitationLogic
	Quiz         *logic.QuizLogic
	Submission   *logic.SubmissionLogic
	Score        *logic.ScoreLogic
	Notification *logic.NotificationLogic
}

func NewRouter(
	httpConf *httpx.Http,
	ctx *ctx.Context,
	user *logic.UserLogic,
	company *logic.CompanyLogic,
	membership *logic.MembershipLogic,
	invitation *logic.InvitationLogic,
	quiz *logic.QuizLogic,
	submission *logic.SubmissionLogic,
	score *logic.ScoreLogic,
	notification *logic.NotificationLogic,
) *Router {
	return &Router{
		Http:         httpConf,
		Ctx:          ctx,
		User:         user,
		Company:      company,
		Membership:   membership,
		Invitation:   invitation,
		Quiz:         quiz,
		Submission:   submission,
		Score:        score,
		Notification: notification,
	}
}

func (rt *Router) Router() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "QuizHub",
		ReadTimeout:  time.Duration(rt.Http.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(rt.Http.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(rt.Http.IdleTimeout) * time.Second,
	})

	app.Use(middleware.AccessLogMiddleware(rt.Http))

	// 中间件
	app.Use(
		middleware.ExceptionMiddleware,
		cors.New(),
		middleware.UnifiedResponseMiddleware(),
	)

	// 健康检查
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	auth := middleware.AuthorizationMiddleware(rt.Http.Auth.SecretKey, rt.Http.Auth.RedisKeyPrefix, rt.Ctx.Redis)

	api := app.Group(rt.Http.ContextPath)
	{
		rt.userRouter(api, auth)
		rt.companyRouter(api, auth)
		rt.memberRouter(api, auth)
		rt.invitationRouter(api, auth)
		rt.quizRouter(api, auth)
		rt.notificationRouter(api, auth)
	}

	// 找不到路径时的处理 - 必须在所有路由注册之后
	app.Use(func(c *fiber.Ctx) error {
		return httpx.WithRepErr(c, fiber.StatusNotFound, "request path not found", c.Path())
	})

	return app
}

// currentUserId 取出授权中间件写入的用户ID
func currentUserId(c *fiber.Ctx) string {
	claims, ok := c.Locals(middleware.CLAIMS).(*jwt.AuthClaims)
	if !ok {
		return ""
	}
	return claims.UserId
}

// repErr 按错误种类映射统一响应码
func repErr(c *fiber.Ctx, err error) error {
	resp := httpx.FromErr(err)
	return httpx.WithRepErrMsg(c, resp.Code, err.Error(), c.Path())
}
