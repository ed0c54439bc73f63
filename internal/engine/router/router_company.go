package router

import (
	"github.com/go-quizhub/quizhub/internal/engine/model"
	httpx "github.com/go-quizhub/quizhub/pkg/http"
	"github.com/go-quizhub/quizhub/pkg/http/middleware"
	"github.com/gofiber/fiber/v2"
)

/**
 * @file: router_company.go
 * @description: company router
 */

func (rt *Router) companyRouter(r fiber.Router, auth fiber.Handler) {
	companyGroup := r.Group("/company")
	{
		companyGroup.Post("/create", auth, rt.createCompany)
		companyGroup.Get("/list", auth, rt.listCompanies)
		companyGroup.Get("/:companyId", auth, rt.getCompany)
		companyGroup.Post("/:companyId/update", auth, rt.updateCompany)
		companyGroup.Post("/:companyId/delete", auth, rt.deleteCompany)
	}
}

func (rt *Router) createCompany(c *fiber.Ctx) error {
	var req *model.CreateCompanyReq
	if err := c.BodyParser(&req); err != nil {
		return httpx.WithRepErrMsg(c, httpx.RequestParameterParsingFailed.Code, httpx.RequestParameterParsingFailed.Msg, c.Path())
	}

	company, err := rt.Company.CreateCompany(currentUserId(c), req)
	if err != nil {
		return repErr(c, err)
	}

	c.Locals(middleware.DETAIL, company)
	return nil
}

func (rt *Router) getCompany(c *fiber.Ctx) error {
	companyId := c.Params("companyId")
	if companyId == "" {
		return httpx.WithRepErrMsg(c, httpx.CompanyIdIsEmpty.Code, httpx.CompanyIdIsEmpty.Msg, c.Path())
	}

	company, err := rt.Company.GetCompany(companyId)
	if err != nil {
		return repErr(c, err)
	}

	c.Locals(middleware.DETAIL, company)
	return nil
}

func (rt *Router) listCompanies(c *fiber.Ctx) error {
	pageNum := c.QueryInt("pageNum", 1)
	pageSize := c.QueryInt("pageSize", 20)

	companies, count, err := rt.Company.ListVisibleCompanies(pageNum, pageSize)
	if err != nil {
		return repErr(c, err)
	}

	c.Locals(middleware.DETAIL, fiber.Map{
		"list":  companies,
		"count": count,
	})
	return nil
}

func (rt *Router) updateCompany(c *fiber.Ctx) error {
	companyId := c.Params("companyId")
	var req *model.UpdateCompanyReq
	if err := c.BodyParser(&req); err != nil {
		return httpx.WithRepErrMsg(c, httpx.RequestParameterParsingFailed.Code, httpx.RequestParameterParsingFailed.Msg, c.Path())
	}

	if err := rt.Company.UpdateCompany(currentUserId(c), companyId, req); err != nil {
		return repErr(c, err)
	}

	c.Locals(middleware.OPERATION, "")
	return nil
}

func (rt *Router) deleteCompany(c *fiber.Ctx) error {
	companyId := c.Params("companyId")
	if err := rt.Company.DeleteCompany(currentUserId(c), companyId); err != nil {
		return repErr(c, err)
	}

	c.Locals(middleware.OPERATION, "")
	return nil
}
