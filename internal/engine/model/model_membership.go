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

// Role 成员角色。存储值是历史编码，Owner=1 的特权最高，
// 数值大小与特权高低无关，比较一律走 PrivilegeRank。
type Role int

const (
	RoleUnemployed Role = 0 // 无公司
	RoleOwner      Role = 1 // 所有者(最高权限)
	RoleAdmin      Role = 2 // 管理员
	RoleMember     Role = 3 // 普通成员
)

var privilegeRank = map[Role]int{
	RoleUnemployed: 0,
	RoleMember:     1,
	RoleAdmin:      2,
	RoleOwner:      3,
}

// PrivilegeRank 返回特权序，Owner > Admin > Member > Unemployed
func (r Role) PrivilegeRank() int {
	return privilegeRank[r]
}

// AtLeast reports whether r has privilege >= other.
func (r Role) AtLeast(other Role) bool {
	return r.PrivilegeRank() >= other.PrivilegeRank()
}

// IsMemberOrHigher reports whether r grants company access.
func (r Role) IsMemberOrHigher() bool {
	return r.AtLeast(RoleMember)
}

func (r Role) String() string {
	switch r {
	case RoleOwner:
		return "owner"
	case RoleAdmin:
		return "admin"
	case RoleMember:
		return "member"
	default:
		return "unemployed"
	}
}

// Membership 成员关系表。
// 每个用户至多一行（user_id 唯一），company_id 为空表示当前无公司。
// 移除/退出不删除行，而是置 role=unemployed、company_id=NULL。
type Membership struct {
	BaseModel
	UserId    string  `gorm:"column:user_id;uniqueIndex" json:"userId"` // 用户ID
	CompanyId *string `gorm:"column:company_id;index" json:"companyId"` // 公司ID，NULL 表示无公司
	Role      Role    `gorm:"column:role" json:"role"`                  // 角色
}

func (Membership) TableName() string {
	return "t_membership"
}

// InCompany reports whether the membership is an active affiliation with companyId.
func (m *Membership) InCompany(companyId string) bool {
	return m.CompanyId != nil && *m.CompanyId == companyId && m.Role.IsMemberOrHigher()
}
