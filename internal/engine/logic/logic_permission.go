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

package logic

import (
	"errors"

	"github.com/go-quizhub/quizhub/internal/engine/model"
	"github.com/go-quizhub/quizhub/internal/engine/repo"
	"github.com/go-quizhub/quizhub/pkg/errs"
	"gorm.io/gorm"
)

// PermissionLogic 权限检查。所有角色比较走特权序而不是存储编码。
type PermissionLogic struct {
	membershipRepo repo.IMembershipRepository
	companyRepo    repo.ICompanyRepository
}

func NewPermissionLogic(membershipRepo repo.IMembershipRepository, companyRepo repo.ICompanyRepository) *PermissionLogic {
	return &PermissionLogic{
		membershipRepo: membershipRepo,
		companyRepo:    companyRepo,
	}
}

// RoleIn 返回用户在指定公司内的角色。
// 无成员关系行、关系不属于该公司均视为 unemployed，不报错。
func (pl *PermissionLogic) RoleIn(userId, companyId string) (model.Role, error) {
	membership, err := pl.membershipRepo.GetByUserId(userId)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.RoleUnemployed, nil
	}
	if err != nil {
		return model.RoleUnemployed, err
	}
	if !membership.InCompany(companyId) {
		return model.RoleUnemployed, nil
	}
	return membership.Role, nil
}

// membershipRole 返回用户当前角色，不限定公司。无成员关系行视为 unemployed。
func (pl *PermissionLogic) membershipRole(userId string) (model.Role, error) {
	membership, err := pl.membershipRepo.GetByUserId(userId)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.RoleUnemployed, nil
	}
	if err != nil {
		return model.RoleUnemployed, err
	}
	return membership.Role, nil
}

// RequireRole 要求用户在公司内至少具有 required 的特权
func (pl *PermissionLogic) RequireRole(userId, companyId string, required model.Role) error {
	role, err := pl.RoleIn(userId, companyId)
	if err != nil {
		return err
	}
	if !role.AtLeast(required) {
		return errs.Newf(errs.KindUnauthorized, "user %s requires %s privilege in company %s", userId, required, companyId)
	}
	return nil
}

// RequireOwner 要求用户是公司所有者
func (pl *PermissionLogic) RequireOwner(userId, companyId string) error {
	return pl.RequireRole(userId, companyId, model.RoleOwner)
}

// RequireMember 要求用户至少是公司普通成员
func (pl *PermissionLogic) RequireMember(userId, companyId string) error {
	return pl.RequireRole(userId, companyId, model.RoleMember)
}

// HasPermission reports whether userId is member-or-higher in companyId.
// 只读判定，查询失败按无权限处理。
func (pl *PermissionLogic) HasPermission(userId, companyId string) bool {
	role, err := pl.RoleIn(userId, companyId)
	if err != nil {
		return false
	}
	return role.IsMemberOrHigher()
}

// IsOwner reports whether userId owns companyId.
func (pl *PermissionLogic) IsOwner(userId, companyId string) (bool, error) {
	role, err := pl.RoleIn(userId, companyId)
	if err != nil {
		return false, err
	}
	return role == model.RoleOwner, nil
}
