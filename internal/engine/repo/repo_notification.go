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

type INotificationRepository interface {
	Create(notification *model.Notification) error
	CreateBatch(notifications []model.Notification) error
	GetByNotificationId(notificationId string) (*model.Notification, error)
	ListByReceiver(receiverId string) ([]model.Notification, error)
	MarkRead(notificationId string) (int64, error)
	MarkAllRead(receiverId string) (int64, error)
}

type NotificationRepo struct {
	db database.IDatabase
}

func NewNotificationRepo(db database.IDatabase) INotificationRepository {
	return &NotificationRepo{db: db}
}

// Create 写入单条通知
func (r *NotificationRepo) Create(notification *model.Notification) error {
	return r.db.Database().Create(notification).Error
}

// CreateBatch 批量写入通知（测验广播 fan-out）
func (r *NotificationRepo) CreateBatch(notifications []model.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	return r.db.Database().Create(&notifications).Error
}

// GetByNotificationId 查询通知
func (r *NotificationRepo) GetByNotificationId(notificationId string) (*model.Notification, error) {
	var notification model.Notification
	err := r.db.Database().Where("notification_id = ?", notificationId).First(&notification).Error
	return &notification, err
}

// ListByReceiver 列出用户的通知
func (r *NotificationRepo) ListByReceiver(receiverId string) ([]model.Notification, error) {
	var notifications []model.Notification
	err := r.db.Database().
		Where("receiver_id = ?", receiverId).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

// MarkRead 置已读，status = 'pending' 守卫保证只翻转一次
func (r *NotificationRepo) MarkRead(notificationId string) (int64, error) {
	result := r.db.Database().Model(&model.Notification{}).
		Where("notification_id = ? AND status = ?", notificationId, model.NotificationStatusPending).
		Update("status", model.NotificationStatusRead)
	return result.RowsAffected, result.Error
}

// MarkAllRead 单条 UPDATE 批量置已读
func (r *NotificationRepo) MarkAllRead(receiverId string) (int64, error) {
	result := r.db.Database().Model(&model.Notification{}).
		Where("receiver_id = ? AND status = ?", receiverId, model.NotificationStatusPending).
		Update("status", model.NotificationStatusRead)
	return result.RowsAffected, result.Error
}
