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

// Invitation 邀请表。
// 同一张表承载两个方向：所有者邀请用户、用户申请加入（receiver 为公司所有者）。
// 方向只由发起方决定，没有单独的类型字段。
type Invitation struct {
	BaseModel
	InvitationId string `gorm:"column:invitation_id;uniqueIndex" json:"invitationId"` // 邀请唯一标识
	Title        string `gorm:"column:title" json:"title"`                            // 标题
	Description  string `gorm:"column:description" json:"description"`                // 描述
	SenderId     string `gorm:"column:sender_id;index" json:"senderId"`               // 发起方用户ID
	ReceiverId   string `gorm:"column:receiver_id;index" json:"receiverId"`           // 接收方用户ID
	CompanyId    string `gorm:"column:company_id;index" json:"companyId"`             // 公司ID
	Status       string `gorm:"column:status" json:"status"`                          // pending / accepted / declined
}

func (Invitation) TableName() string {
	return "t_invitation"
}

// InvitationStatus 邀请状态。pending 之外的状态均为终态，不允许再变更。
const (
	InvitationStatusPending  = "pending"
	InvitationStatusAccepted = "accepted"
	InvitationStatusDeclined = "declined"
)

// SendInvitationReq request for inviting a user into a company
type SendInvitationReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ReceiverId  string `json:"receiverId"`
	CompanyId   string `json:"companyId"`
}

// RequestToJoinReq request for asking to join a company
type RequestToJoinReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CompanyId   string `json:"companyId"`
}

// InvitationResp derived view returned by the lifecycle operations
type InvitationResp struct {
	InvitationId string `json:"invitationId"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	SenderId     string `json:"senderId"`
	ReceiverId   string `json:"receiverId"`
	CompanyId    string `json:"companyId"`
	Status       string `json:"status"`
}

func (i *Invitation) ToResp() *InvitationResp {
	return &InvitationResp{
		InvitationId: i.InvitationId,
		Title:        i.Title,
		Description:  i.Description,
		SenderId:     i.SenderId,
		ReceiverId:   i.ReceiverId,
		CompanyId:    i.CompanyId,
		Status:       i.Status,
	}
}
