package router

import (
	"github.com/go-quizhub/quizhub/internal/engine/model"
	httpx "github.com/go-quizhub/quizhub/pkg/http"
	"github.com/go-quizhub/quizhub/pkg/http/middleware"
	"github.com/gofiber/fiber/v2"
)

/**
 * @file: router_user.go
 * @description: user router
 */

func (rt *Router) userRouter(r fiber.Router, auth fiber.Handler) {
	userGroup := r.Group("/user")
	{
		userGroup.Post("/login", rt.login)
		userGroup.Post("/register", rt.register)

		userGroup.Post("/logout", auth, rt.logout)
		userGroup.Get("/refresh", auth, rt.refresh)
		userGroup.Get("/getUserInfo", auth, rt.getUserInfo)
	}
}

func (rt *Router) login(c *fiber.Ctx) error {
	var login *model.Login
	if err := c.BodyParser(&login); err != nil {
		return httpx.WithRepErrMsg(c, httpx.RequestParameterParsingFailed.Code, httpx.RequestParameterParsingFailed.Msg, c.Path())
	}

	user, err := rt.User.Login(login, rt.Http.Auth)
	if err != nil {
		return repErr(c, err)
	}

	c.Locals(middleware.DETAIL, user)
	return nil
}

func (rt *Router) register(c *fiber.Ctx) error {
	var register *model.Register
	if err := c.BodyParser(&register); err != nil {
		return httpx.WithRepErrMsg(c, httpx.RequestParameterParsingFailed.Code, httpx.RequestParameterParsingFailed.Msg, c.Path())
	}

	if err := rt.User.Register(register); err != nil {
		return repErr(c, err)
	}

	c.Locals(middleware.OPERATION, "")
	return nil
}

func (rt *Router) refresh(c *fiber.Ctx) error {
	userId := c.Query("userId")
	refreshToken := c.Query("refreshToken")
	if userId == "" || refreshToken == "" {
		return httpx.WithRepErrMsg(c, httpx.InValidRefreshToken.Code, httpx.InValidRefreshToken.Msg, c.Path())
	}

	token, err := rt.User.Refresh(userId, refreshToken, &rt.Http.Auth)
	if err != nil {
		return repErr(c, err)
	}

	c.Locals(middleware.DETAIL, token)
	return nil
}

func (rt *Router) logout(c *fiber.Ctx) error {
	if err := rt.User.Logout(rt.Http.Auth.RedisKeyPrefix, currentUserId(c)); err != nil {
		return repErr(c, err)
	}

	c.Locals(middleware.OPERATION, "")
	return nil
}

func (rt *Router) getUserInfo(c *fiber.Ctx) error {
	user, err := rt.User.GetUserById(currentUserId(c))
	if err != nil {
		return repErr(c, err)
	}

	c.Locals(middleware.DETAIL, model.UserInfo{
		UserId:   user.UserId,
		Username: user.Username,
		Nickname: user.Nickname,
		Avatar:   user.Avatar,
		Email:    user.Email,
		Phone:    user.Phone,
	})
	return nil
}
