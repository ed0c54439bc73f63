package logic

import (
	"encoding/json"

	"github.com/go-quizhub/quizhub/internal/engine/model"
	"github.com/go-quizhub/quizhub/internal/engine/repo"
	"github.com/go-quizhub/quizhub/pkg/ctx"
	"github.com/go-quizhub/quizhub/pkg/errs"
	"github.com/go-quizhub/quizhub/pkg/id"
	"gorm.io/datatypes"
)

/**
 * @file: logic_company.go
 * @description: company lifecycle logic
 */

type CompanyLogic struct {
	ctx         *ctx.Context
	companyRepo repo.ICompanyRepository
	permission  *PermissionLogic
}

func NewCompanyLogic(ctx *ctx.Context, companyRepo repo.ICompanyRepository, permission *PermissionLogic) *CompanyLogic {
	return &CompanyLogic{
		ctx:         ctx,
		companyRepo: companyRepo,
		permission:  permission,
	}
}

// CreateCompany 创建公司，创建者即为所有者
func (cl *CompanyLogic) CreateCompany(creatorUserId string, req *model.CreateCompanyReq) (*model.Company, error) {
	if req.Name == "" {
		return nil, errs.New(errs.KindValidation, "company name is required")
	}

	isVisible := 1
	if req.IsVisible != nil {
		isVisible = *req.IsVisible
	}

	settings, _ := json.Marshal(model.CompanySettings{
		MaxMembers:        100,
		MaxQuizzes:        50,
		AllowJoinRequests: true,
	})

	company := &model.Company{
		CompanyId:   id.GetUUIDWithoutDashes(),
		Name:        req.Name,
		Description: req.Description,
		OwnerUserId: creatorUserId,
		IsVisible:   isVisible,
		Settings:    datatypes.JSON(settings),
	}
	if err := cl.companyRepo.CreateWithOwner(company); err != nil {
		return nil, err
	}
	return company, nil
}

// GetCompany 查询公司详情
func (cl *CompanyLogic) GetCompany(companyId string) (*model.Company, error) {
	company, err := cl.companyRepo.GetByCompanyId(companyId)
	if err != nil {
		return nil, errs.Wrap(errs.KindNotFound, err, "company not found")
	}
	return company, nil
}

// ListVisibleCompanies 分页列出可见公司（发现页）
func (cl *CompanyLogic) ListVisibleCompanies(pageNum, pageSize int) ([]model.Company, int64, error) {
	return cl.companyRepo.ListVisible(pageNum, pageSize)
}

// UpdateCompany 更新公司信息，仅限所有者
func (cl *CompanyLogic) UpdateCompany(operatorUserId, companyId string, req *model.UpdateCompanyReq) error {
	if err := cl.permission.RequireOwner(operatorUserId, companyId); err != nil {
		return err
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.IsVisible != nil {
		updates["is_visible"] = *req.IsVisible
	}
	if len(updates) == 0 {
		return nil
	}
	return cl.companyRepo.Update(companyId, updates)
}

// DeleteCompany 删除公司，仅限所有者。成员关系与邀请级联清理。
func (cl *CompanyLogic) DeleteCompany(operatorUserId, companyId string) error {
	if err := cl.permission.RequireOwner(operatorUserId, companyId); err != nil {
		return err
	}
	return cl.companyRepo.Delete(companyId)
}
