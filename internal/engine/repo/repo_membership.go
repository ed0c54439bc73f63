// Copyright 2025 QuizHub Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package repo

import (
	"github.com/go-quizhub/quizhub/internal/engine/model"
	"github.com/go-quizhub/quizhub/pkg/database"
)

type IMembershipRepository interface {
	GetByUserId(userId string) (*model.Membership, error)
	ListByCompany(companyId string) ([]model.Membership, error)
	Detach(userId string) error
	SwitchRole(userId, companyId string, from, to model.Role) (int64, error)
}

type MembershipRepo struct {
	db database.IDatabase
}

func NewMembershipRepo(db database.IDatabase) IMembershipRepository {
	return &MembershipRepo{db: db}
}

// GetByUserId 获取用户当前成员关系（每用户至多一行）
func (r *MembershipRepo) GetByUserId(userId string) (*model.Membership, error) {
	var membership model.Membership
	err := r.db.Database().Where("user_id = ?", userId).First(&membership).Error
	return &membership, err
}

// ListByCompany 列出公司当前成员
func (r *MembershipRepo) ListByCompany(companyId string) ([]model.Membership, error) {
	var members []model.Membership
	err := r.db.Database().
		Where("company_id = ? AND role <> ?", companyId, model.RoleUnemployed).
		Find(&members).Error
	return members, err
}

// Detach 解除公司关系：role 置 unemployed，company_id 置 NULL。行保留不删除。
func (r *MembershipRepo) Detach(userId string) error {
	return r.db.Database().Model(&model.Membership{}).
		Where("user_id = ?", userId).
		Updates(map[string]any{"company_id": nil, "role": model.RoleUnemployed}).Error
}

// SwitchRole 将某公司内 role=from 的用户翻转为 to，返回受影响行数。
// WHERE role = from 的守卫保证并发下的至多一次翻转。
func (r *MembershipRepo) SwitchRole(userId, companyId string, from, to model.Role) (int64, error) {
	result := r.db.Database().Model(&model.Membership{}).
		Where("user_id = ? AND company_id = ? AND role = ?", userId, companyId, from).
		Update("role", to)
	return result.RowsAffected, result.Error
}
