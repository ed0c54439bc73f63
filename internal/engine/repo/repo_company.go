package repo

import (
	"errors"

	"github.com/go-quizhub/quizhub/internal/engine/model"
	"github.com/go-quizhub/quizhub/pkg/database"
	"gorm.io/gorm"
)

type ICompanyRepository interface {
	CreateWithOwner(company *model.Company) error
	GetByCompanyId(companyId string) (*model.Company, error)
	ListVisible(pageNum, pageSize int) ([]model.Company, int64, error)
	ListAll() ([]model.Company, error)
	Update(companyId string, updates map[string]any) error
	Delete(companyId string) error
}

type CompanyRepo struct {
	db database.IDatabase
}

func NewCompanyRepo(db database.IDatabase) ICompanyRepository {
	return &CompanyRepo{db: db}
}

// CreateWithOwner 创建公司并在同一事务内写入所有者成员关系。
// 每个公司恰好有一条 role=owner 的成员关系（即创建者）。
func (r *CompanyRepo) CreateWithOwner(company *model.Company) error {
	return r.db.Database().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(company).Error; err != nil {
			return err
		}

		var membership model.Membership
		err := tx.Where("user_id = ?", company.OwnerUserId).First(&membership).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			membership = model.Membership{
				UserId:    company.OwnerUserId,
				CompanyId: &company.CompanyId,
				Role:      model.RoleOwner,
			}
			return tx.Create(&membership).Error
		case err != nil:
			return err
		default:
			return tx.Model(&model.Membership{}).
				Where("user_id = ?", company.OwnerUserId).
				Updates(map[string]any{"company_id": company.CompanyId, "role": model.RoleOwner}).Error
		}
	})
}

// GetByCompanyId 查询公司
func (r *CompanyRepo) GetByCompanyId(companyId string) (*model.Company, error) {
	var company model.Company
	err := r.db.Database().Where("company_id = ?", companyId).First(&company).Error
	return &company, err
}

// ListVisible 分页查询可见公司
func (r *CompanyRepo) ListVisible(pageNum, pageSize int) ([]model.Company, int64, error) {
	var (
		companies []model.Company
		count     int64
	)
	if pageNum < 1 {
		pageNum = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	q := r.db.Database().Model(&model.Company{}).Where("is_visible = ?", 1)
	if err := q.Count(&count).Error; err != nil {
		return nil, 0, err
	}
	err := q.Offset((pageNum - 1) * pageSize).Limit(pageSize).Find(&companies).Error
	return companies, count, err
}

// ListAll 查询全部公司（提醒流水线遍历用）
func (r *CompanyRepo) ListAll() ([]model.Company, error) {
	var companies []model.Company
	err := r.db.Database().Find(&companies).Error
	return companies, err
}

// Update 更新公司字段
func (r *CompanyRepo) Update(companyId string, updates map[string]any) error {
	return r.db.Database().Model(&model.Company{}).
		Where("company_id = ?", companyId).
		Updates(updates).Error
}

// Delete 删除公司，成员关系与邀请由外键级联清理
func (r *CompanyRepo) Delete(companyId string) error {
	return r.db.Database().Where("company_id = ?", companyId).
		Delete(&model.Company{}).Error
}
