package router

import (
	"github.com/go-quizhub/quizhub/internal/engine/model"
	httpx "github.com/go-quizhub/quizhub/pkg/http"
	"github.com/go-quizhub/quizhub/pkg/http/middleware"
	"github.com/gofiber/fiber/v2"
)

/**
 * @file: router_invitation.go
 * @description: invitation router
 */

func (rt *Router) invitationRouter(r fiber.Router, auth fiber.Handler) {
	invitationGroup := r.Group("/invitation")
	{
		invitationGroup.Post("/send", auth, rt.sendInvitation)
		invitationGroup.Post("/requestToJoin", auth, rt.requestToJoin)
		invitationGroup.Post("/:invitationId/accept", auth, rt.acceptInvitation)
		invitationGroup.Post("/:invitationId/decline", auth, rt.declineInvitation)
		invitationGroup.Post("/:invitationId/cancel", auth, rt.cancelInvitation)
		invitationGroup.Get("/my", auth, rt.myInvitations)
		invitationGroup.Get("/company/:companyId", auth, rt.companyInvitations)
	}
}

func (rt *Router) sendInvitation(c *fiber.Ctx) error {
	var req *model.SendInvitationReq
	if err := c.BodyParser(&req); err != nil {
		return httpx.WithRepErrMsg(c, httpx.RequestParameterParsingFailed.Code, httpx.RequestParameterParsingFailed.Msg, c.Path())
	}
	if req.ReceiverId == "" {
		return httpx.WithRepErrMsg(c, httpx.UserIdIsEmpty.Code, httpx.UserIdIsEmpty.Msg, c.Path())
	}

	resp, err := rt.Invitation.SendInvitation(currentUserId(c), req)
	if err != nil {
		return repErr(c, err)
	}

	c.Locals(middleware.DETAIL, resp)
	return nil
}

func (rt *Router) requestToJoin(c *fiber.Ctx) error {
	var req *model.RequestToJoinReq
	if err := c.BodyParser(&req); err != nil {
		return httpx.WithRepErrMsg(c, httpx.RequestParameterParsingFailed.Code, httpx.RequestParameterParsingFailed.Msg, c.Path())
	}
	if req.CompanyId == "" {
		return httpx.WithRepErrMsg(c, httpx.CompanyIdIsEmpty.Code, httpx.CompanyIdIsEmpty.Msg, c.Path())
	}

	resp, err := rt.Invitation.RequestToJoin(currentUserId(c), req)
	if err != nil {
		return repErr(c, err)
	}

	c.Locals(middleware.DETAIL, resp)
	return nil
}

func (rt *Router) acceptInvitation(c *fiber.Ctx) error {
	resp, err := rt.Invitation.Accept(currentUserId(c), c.Params("invitationId"))
	if err != nil {
		return repErr(c, err)
	}

	c.Locals(middleware.DETAIL, resp)
	return nil
}

func (rt *Router) declineInvitation(c *fiber.Ctx) error {
	resp, err := rt.Invitation.Decline(currentUserId(c), c.Params("invitationId"))
	if err != nil {
		return repErr(c, err)
	}

	c.Locals(middleware.DETAIL, resp)
	return nil
}

func (rt *Router) cancelInvitation(c *fiber.Ctx) error {
	if err := rt.Invitation.Cancel(currentUserId(c), c.Params("invitationId")); err != nil {
		return repErr(c, err)
	}

	c.Locals(middleware.OPERATION, "")
	return nil
}

func (rt *Router) myInvitations(c *fiber.Ctx) error {
	invitations, err := rt.Invitation.ListForUser(currentUserId(c))
	if err != nil {
		return repErr(c, err)
	}

	c.Locals(middleware.DETAIL, invitations)
	return nil
}

func (rt *Router) companyInvitations(c *fiber.Ctx) error {
	invitations, err := rt.Invitation.ListForCompany(currentUserId(c), c.Params("companyId"))
	if err != nil {
		return repErr(c, err)
	}

	c.Locals(middleware.DETAIL, invitations)
	return nil
}
