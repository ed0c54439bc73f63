package model

import "gorm.io/datatypes"

// Company 公司表
type Company struct {
	BaseModel
	CompanyId   string         `gorm:"column:company_id;uniqueIndex" json:"companyId"` // 公司唯一标识
	Name        string         `gorm:"column:name" json:"name"`                       // 公司名称
	Description string         `gorm:"column:description" json:"description"`         // 公司描述
	OwnerUserId string         `gorm:"column:owner_user_id" json:"ownerUserId"`       // 公司所有者用户ID
	IsVisible   int            `gorm:"column:is_visible" json:"isVisible"`            // 是否可见: 0-隐藏, 1-可见
	Settings    datatypes.JSON `gorm:"column:settings;type:json" json:"settings"`     // 公司设置

	// 公司删除时级联清理成员关系与邀请
	Members     []Membership `gorm:"foreignKey:CompanyId;references:CompanyId;constraint:OnDelete:CASCADE" json:"-"`
	Invitations []Invitation `gorm:"foreignKey:CompanyId;references:CompanyId;constraint:OnDelete:CASCADE" json:"-"`
}

func (Company) TableName() string {
	return "t_company"
}

// CompanySettings 公司设置结构
type CompanySettings struct {
	MaxMembers        int  `json:"max_members"`        // 最大成员数
	MaxQuizzes        int  `json:"max_quizzes"`        // 最大测验数
	AllowJoinRequests bool `json:"allow_join_requests"` // 允许用户主动申请加入
}

// CreateCompanyReq request for creating company
type CreateCompanyReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsVisible   *int   `json:"isVisible"`
}

// UpdateCompanyReq request for updating company
type UpdateCompanyReq struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	IsVisible   *int    `json:"isVisible,omitempty"`
}
