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
	"errors"

	"github.com/go-quizhub/quizhub/internal/engine/model"
	"github.com/go-quizhub/quizhub/pkg/database"
	"gorm.io/gorm"
)

type IInvitationRepository interface {
	Create(invitation *model.Invitation) error
	GetByInvitationId(invitationId string) (*model.Invitation, error)
	ListByReceiver(receiverId string) ([]model.Invitation, error)
	ListByCompany(companyId string) ([]model.Invitation, error)
	HasPendingBetween(senderId, receiverId, companyId string) (bool, error)
	AcceptTx(invitationId, joinerUserId, companyId string) (bool, error)
	Decline(invitationId string) (bool, error)
	DeletePending(invitationId string) (bool, error)
}

type InvitationRepo struct {
	db database.IDatabase
}

func NewInvitationRepo(db database.IDatabase) IInvitationRepository {
	return &InvitationRepo{db: db}
}

// Create 创建邀请
func (r *InvitationRepo) Create(invitation *model.Invitation) error {
	return r.db.Database().Create(invitation).Error
}

// GetByInvitationId 查询邀请
func (r *InvitationRepo) GetByInvitationId(invitationId string) (*model.Invitation, error) {
	var invitation model.Invitation
	err := r.db.Database().Where("invitation_id = ?", invitationId).First(&invitation).Error
	return &invitation, err
}

// ListByReceiver 列出发给某用户的邀请
func (r *InvitationRepo) ListByReceiver(receiverId string) ([]model.Invitation, error) {
	var invitations []model.Invitation
	err := r.db.Database().Where("receiver_id = ?", receiverId).Find(&invitations).Error
	return invitations, err
}

// ListByCompany 列出某公司的邀请
func (r *InvitationRepo) ListByCompany(companyId string) ([]model.Invitation, error) {
	var invitations []model.Invitation
	err := r.db.Database().Where("company_id = ?", companyId).Find(&invitations).Error
	return invitations, err
}

// HasPendingBetween 是否已存在同方向的待处理邀请（防重复申请）
func (r *InvitationRepo) HasPendingBetween(senderId, receiverId, companyId string) (bool, error) {
	var count int64
	err := r.db.Database().Model(&model.Invitation{}).
		Where("sender_id = ? AND receiver_id = ? AND company_id = ? AND status = ?",
			senderId, receiverId, companyId, model.InvitationStatusPending).
		Count(&count).Error
	return count > 0, err
}

// AcceptTx 在单个事务内完成接受：
//  1. UPDATE ... WHERE status = 'pending' 守卫状态翻转，受影响行数为 0 视为已被处理；
//  2. 写入/复用加入方的成员关系行（role=member）。
//
// 两者要么同时持久化要么都不持久化。
func (r *InvitationRepo) AcceptTx(invitationId, joinerUserId, companyId string) (bool, error) {
	accepted := false
	err := r.db.Database().Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Invitation{}).
			Where("invitation_id = ? AND status = ?", invitationId, model.InvitationStatusPending).
			Update("status", model.InvitationStatusAccepted)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}

		var membership model.Membership
		err := tx.Where("user_id = ?", joinerUserId).First(&membership).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			membership = model.Membership{
				UserId:    joinerUserId,
				CompanyId: &companyId,
				Role:      model.RoleMember,
			}
			if err := tx.Create(&membership).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			if err := tx.Model(&model.Membership{}).
				Where("user_id = ?", joinerUserId).
				Updates(map[string]any{"company_id": companyId, "role": model.RoleMember}).Error; err != nil {
				return err
			}
		}

		accepted = true
		return nil
	})
	return accepted, err
}

// Decline 拒绝邀请，同样以 status = 'pending' 守卫
func (r *InvitationRepo) Decline(invitationId string) (bool, error) {
	result := r.db.Database().Model(&model.Invitation{}).
		Where("invitation_id = ? AND status = ?", invitationId, model.InvitationStatusPending).
		Update("status", model.InvitationStatusDeclined)
	return result.RowsAffected > 0, result.Error
}

// DeletePending 取消（物理删除）待处理邀请
func (r *InvitationRepo) DeletePending(invitationId string) (bool, error) {
	result := r.db.Database().
		Where("invitation_id = ? AND status = ?", invitationId, model.InvitationStatusPending).
		Delete(&model.Invitation{})
	return result.RowsAffected > 0, result.Error
}
