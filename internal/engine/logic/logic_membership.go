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
	"github.com/go-quizhub/quizhub/internal/engine/model"
	"github.com/go-quizhub/quizhub/internal/engine/repo"
	"github.com/go-quizhub/quizhub/pkg/ctx"
	"github.com/go-quizhub/quizhub/pkg/errs"
)

/**
 * @file: logic_membership.go
 * @description: member removal, leave, admin appoint / demote
 */

type MembershipLogic struct {
	ctx            *ctx.Context
	membershipRepo repo.IMembershipRepository
	permission     *PermissionLogic
}

func NewMembershipLogic(ctx *ctx.Context, membershipRepo repo.IMembershipRepository, permission *PermissionLogic) *MembershipLogic {
	return &MembershipLogic{
		ctx:            ctx,
		membershipRepo: membershipRepo,
		permission:     permission,
	}
}

// ListMembers 列出公司成员，要求操作者至少是成员
func (ml *MembershipLogic) ListMembers(operatorUserId, companyId string) ([]model.Membership, error) {
	if err := ml.permission.RequireMember(operatorUserId, companyId); err != nil {
		return nil, err
	}
	return ml.membershipRepo.ListByCompany(companyId)
}

// RemoveMember 将成员移出公司，仅限所有者。
// 所有者自身不可被移除，目标必须是该公司的 member 或 admin。
func (ml *MembershipLogic) RemoveMember(operatorUserId, targetUserId, companyId string) error {
	if err := ml.permission.RequireOwner(operatorUserId, companyId); err != nil {
		return err
	}
	if targetUserId == operatorUserId {
		return errs.New(errs.KindInvalidState, "the owner cannot be removed from the company")
	}

	role, err := ml.permission.RoleIn(targetUserId, companyId)
	if err != nil {
		return err
	}
	if !role.IsMemberOrHigher() {
		return errs.New(errs.KindNotFound, "user is not a member of this company")
	}
	if role == model.RoleOwner {
		return errs.New(errs.KindInvalidState, "the owner cannot be removed from the company")
	}

	return ml.membershipRepo.Detach(targetUserId)
}

// LeaveCompany 成员主动退出公司。所有者不可退出，需先删除公司。
func (ml *MembershipLogic) LeaveCompany(userId, companyId string) error {
	role, err := ml.permission.RoleIn(userId, companyId)
	if err != nil {
		return err
	}
	if !role.IsMemberOrHigher() {
		return errs.New(errs.KindNotFound, "user is not a member of this company")
	}
	if role == model.RoleOwner {
		return errs.New(errs.KindInvalidState, "the owner cannot leave the company")
	}

	return ml.membershipRepo.Detach(userId)
}

// AppointAdmin 将普通成员提升为管理员，仅限所有者。
// 目标当前角色必须恰好是 member，否则报 NotFound。
func (ml *MembershipLogic) AppointAdmin(operatorUserId, targetUserId, companyId string) error {
	if err := ml.permission.RequireOwner(operatorUserId, companyId); err != nil {
		return err
	}

	affected, err := ml.membershipRepo.SwitchRole(targetUserId, companyId, model.RoleMember, model.RoleAdmin)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errs.New(errs.KindNotFound, "no plain member found to promote")
	}
	return nil
}

// RemoveAdmin 将管理员降级为普通成员，仅限所有者。
// 目标当前角色必须恰好是 admin，否则报 NotFound。
func (ml *MembershipLogic) RemoveAdmin(operatorUserId, targetUserId, companyId string) error {
	if err := ml.permission.RequireOwner(operatorUserId, companyId); err != nil {
		return err
	}

	affected, err := ml.membershipRepo.SwitchRole(targetUserId, companyId, model.RoleAdmin, model.RoleMember)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errs.New(errs.KindNotFound, "no admin found to demote")
	}
	return nil
}

// GetMembership 查询用户当前成员关系
func (ml *MembershipLogic) GetMembership(userId string) (*model.Membership, error) {
	membership, err := ml.membershipRepo.GetByUserId(userId)
	if err != nil {
		return nil, errs.Wrap(errs.KindNotFound, err, "membership not found")
	}
	return membership, nil
}
