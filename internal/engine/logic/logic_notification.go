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
	"github.com/go-quizhub/quizhub/pkg/id"
)

/**
 * @file: logic_notification.go
 * @description: notification outbox logic
 */

type NotificationLogic struct {
	ctx              *ctx.Context
	notificationRepo repo.INotificationRepository
	membershipRepo   repo.IMembershipRepository
}

func NewNotificationLogic(ctx *ctx.Context, notificationRepo repo.INotificationRepository, membershipRepo repo.IMembershipRepository) *NotificationLogic {
	return &NotificationLogic{
		ctx:              ctx,
		notificationRepo: notificationRepo,
		membershipRepo:   membershipRepo,
	}
}

// Send 向单个用户投递通知。通知ID使用 xid，保证按投递时间可排序。
func (nl *NotificationLogic) Send(receiverId, companyId, message string) error {
	notification := &model.Notification{
		NotificationId: id.GetXid(),
		Message:        message,
		ReceiverId:     receiverId,
		CompanyId:      companyId,
		Status:         model.NotificationStatusPending,
	}
	return nl.notificationRepo.Create(notification)
}

// Broadcast 向公司全体当前成员投递同一条通知
func (nl *NotificationLogic) Broadcast(companyId, message string) error {
	members, err := nl.membershipRepo.ListByCompany(companyId)
	if err != nil {
		return err
	}

	notifications := make([]model.Notification, 0, len(members))
	for _, member := range members {
		notifications = append(notifications, model.Notification{
			NotificationId: id.GetXid(),
			Message:        message,
			ReceiverId:     member.UserId,
			CompanyId:      companyId,
			Status:         model.NotificationStatusPending,
		})
	}
	return nl.notificationRepo.CreateBatch(notifications)
}

// List 列出用户的通知，最新在前
func (nl *NotificationLogic) List(userId string) ([]model.Notification, error) {
	return nl.notificationRepo.ListByReceiver(userId)
}

// MarkAsRead 将通知置为已读。
// 仅接收人可操作，重复置已读报 Conflict。
func (nl *NotificationLogic) MarkAsRead(operatorUserId, notificationId string) error {
	notification, err := nl.notificationRepo.GetByNotificationId(notificationId)
	if err != nil {
		return errs.Wrap(errs.KindNotFound, err, "notification not found")
	}
	if notification.ReceiverId != operatorUserId {
		return errs.New(errs.KindUnauthorized, "notification belongs to another user")
	}

	affected, err := nl.notificationRepo.MarkRead(notificationId)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errs.New(errs.KindConflict, "notification is already read")
	}
	return nil
}

// MarkAllAsRead 将用户全部待读通知置为已读，返回翻转数量。
// 没有待读通知不算错误。
func (nl *NotificationLogic) MarkAllAsRead(userId string) (int64, error) {
	return nl.notificationRepo.MarkAllRead(userId)
}
