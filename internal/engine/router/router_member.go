package router

import (
	httpx "github.com/go-quizhub/quizhub/pkg/http"
	"github.com/go-quizhub/quizhub/pkg/http/middleware"
	"github.com/gofiber/fiber/v2"
)

/**
 * @file: router_member.go
 * @description: membership router
 */

func (rt *Router) memberRouter(r fiber.Router, auth fiber.Handler) {
	memberGroup := r.Group("/member")
	{
		memberGroup.Get("/my", auth, rt.myMembership)
		memberGroup.Get("/list/:companyId", auth, rt.listMembers)
		memberGroup.Post("/remove", auth, rt.removeMember)
		memberGroup.Post("/leave/:companyId", auth, rt.leaveCompany)
		memberGroup.Post("/appointAdmin", auth, rt.appointAdmin)
		memberGroup.Post("/removeAdmin", auth, rt.removeAdmin)
	}
}

// memberActionReq covers owner actions that target one member
type memberActionReq struct {
	UserId    string `json:"userId"`
	CompanyId string `json:"companyId"`
}

func (rt *Router) myMembership(c *fiber.Ctx) error {
	membership, err := rt.Membership.GetMembership(currentUserId(c))
	if err != nil {
		return repErr(c, err)
	}

	c.Locals(middleware.DETAIL, membership)
	return nil
}

func (rt *Router) listMembers(c *fiber.Ctx) error {
	companyId := c.Params("companyId")
	if companyId == "" {
		return httpx.WithRepErrMsg(c, httpx.CompanyIdIsEmpty.Code, httpx.CompanyIdIsEmpty.Msg, c.Path())
	}

	members, err := rt.Membership.ListMembers(currentUserId(c), companyId)
	if err != nil {
		return repErr(c, err)
	}

	c.Locals(middleware.DETAIL, members)
	return nil
}

func (rt *Router) removeMember(c *fiber.Ctx) error {
	var req memberActionReq
	if err := c.BodyParser(&req); err != nil {
		return httpx.WithRepErrMsg(c, httpx.RequestParameterParsingFailed.Code, httpx.RequestParameterParsingFailed.Msg, c.Path())
	}
	if req.UserId == "" {
		return httpx.WithRepErrMsg(c, httpx.UserIdIsEmpty.Code, httpx.UserIdIsEmpty.Msg, c.Path())
	}

	if err := rt.Membership.RemoveMember(currentUserId(c), req.UserId, req.CompanyId); err != nil {
		return repErr(c, err)
	}

	c.Locals(middleware.OPERATION, "")
	return nil
}

func (rt *Router) leaveCompany(c *fiber.Ctx) error {
	companyId := c.Params("companyId")
	if err := rt.Membership.LeaveCompany(currentUserId(c), companyId); err != nil {
		return repErr(c, err)
	}

	c.Locals(middleware.OPERATION, "")
	return nil
}

func (rt *Router) appointAdmin(c *fiber.Ctx) error {
	var req memberActionReq
	if err := c.BodyParser(&req); err != nil {
		return httpx.WithRepErrMsg(c, httpx.RequestParameterParsingFailed.Code, httpx.RequestParameterParsingFailed.Msg, c.Path())
	}

	if err := rt.Membership.AppointAdmin(currentUserId(c), req.UserId, req.CompanyId); err != nil {
		return repErr(c, err)
	}

	c.Locals(middleware.OPERATION, "")
	return nil
}

func (rt *Router) removeAdmin(c *fiber.Ctx) error {
	var req memberActionReq
	if err := c.BodyParser(&req); err != nil {
		return httpx.WithRepErrMsg(c, httpx.RequestParameterParsingFailed.Code, httpx.RequestParameterParsingFailed.Msg, c.Path())
	}

	if err := rt.Membership.RemoveAdmin(currentUserId(c), req.UserId, req.CompanyId); err != nil {
		return repErr(c, err)
	}

	c.Locals(middleware.OPERATION, "")
	return nil
}
