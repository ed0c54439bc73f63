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

package model

import "time"

// Notification 通知发件箱。提醒流水线和测验广播只写这张表，
// 实际推送渠道在发件箱之外消费。
type Notification struct {
	ID             uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	NotificationId string    `gorm:"column:notification_id;uniqueIndex" json:"notificationId"` // 通知唯一标识
	Message        string    `gorm:"column:message" json:"message"`                            // 通知内容
	ReceiverId     string    `gorm:"column:receiver_id;index" json:"receiverId"`               // 接收人用户ID
	CompanyId      string    `gorm:"column:company_id;index" json:"companyId"`                 // 公司ID
	Status         string    `gorm:"column:status;index" json:"status"`                        // pending / read
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (Notification) TableName() string {
	return "t_notification"
}

// NotificationStatus 通知状态，read 为终态
const (
	NotificationStatusPending = "pending"
	NotificationStatusRead    = "read"
)
