package logic

import (
	"testing"

	"github.com/go-quizhub/quizhub/internal/engine/model"
	"github.com/go-quizhub/quizhub/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMembershipFixture() (*fakeMembershipRepo, *MembershipLogic) {
	memberships := newFakeMembershipRepo()
	companies := newFakeCompanyRepo(memberships)
	permission := NewPermissionLogic(memberships, companies)

	memberships.put("owner", "c1", model.RoleOwner)
	memberships.put("admin", "c1", model.RoleAdmin)
	memberships.put("member", "c1", model.RoleMember)

	return memberships, NewMembershipLogic(nil, memberships, permission)
}

func TestRemoveMember(t *testing.T) {
	memberships, ml := newMembershipFixture()

	require.NoError(t, ml.RemoveMember("owner", "member", "c1"))

	m, err := memberships.GetByUserId("member")
	require.NoError(t, err)
	assert.Equal(t, model.RoleUnemployed, m.Role)
	assert.Nil(t, m.CompanyId)
}

func TestRemoveMemberAuthorization(t *testing.T) {
	_, ml := newMembershipFixture()

	// 管理员无权移除成员
	err := ml.RemoveMember("admin", "member", "c1")
	assert.True(t, errs.IsUnauthorized(err))

	// 所有者不能被移除，也不能移除自己
	err = ml.RemoveMember("owner", "owner", "c1")
	assert.True(t, errs.IsInvalidState(err))

	// 非成员目标
	err = ml.RemoveMember("owner", "ghost", "c1")
	assert.True(t, errs.IsNotFound(err))
}

func TestLeaveCompany(t *testing.T) {
	memberships, ml := newMembershipFixture()

	require.NoError(t, ml.LeaveCompany("member", "c1"))
	m, _ := memberships.GetByUserId("member")
	assert.Equal(t, model.RoleUnemployed, m.Role)

	// 管理员同样可以退出
	require.NoError(t, ml.LeaveCompany("admin", "c1"))

	// 所有者不能退出
	err := ml.LeaveCompany("owner", "c1")
	assert.True(t, errs.IsInvalidState(err))

	// 非成员退出报 NotFound
	err = ml.LeaveCompany("ghost", "c1")
	assert.True(t, errs.IsNotFound(err))
}

func TestAppointAdmin(t *testing.T) {
	memberships, ml := newMembershipFixture()

	require.NoError(t, ml.AppointAdmin("owner", "member", "c1"))
	m, _ := memberships.GetByUserId("member")
	assert.Equal(t, model.RoleAdmin, m.Role)

	// 已是管理员不能再次提升
	err := ml.AppointAdmin("owner", "member", "c1")
	assert.True(t, errs.IsNotFound(err))

	// 所有者不是普通成员
	err = ml.AppointAdmin("owner", "owner", "c1")
	assert.True(t, errs.IsNotFound(err))

	// 仅所有者可提升
	err = ml.AppointAdmin("admin", "member", "c1")
	assert.True(t, errs.IsUnauthorized(err))
}

func TestRemoveAdmin(t *testing.T) {
	memberships, ml := newMembershipFixture()

	require.NoError(t, ml.RemoveAdmin("owner", "admin", "c1"))
	m, _ := memberships.GetByUserId("admin")
	assert.Equal(t, model.RoleMember, m.Role)

	// 普通成员不能被降级
	err := ml.RemoveAdmin("owner", "member", "c1")
	assert.True(t, errs.IsNotFound(err))

	// 降级后可再次提升，角色翻转是对称的
	require.NoError(t, ml.AppointAdmin("owner", "admin", "c1"))
	m, _ = memberships.GetByUserId("admin")
	assert.Equal(t, model.RoleAdmin, m.Role)
}

func TestListMembers(t *testing.T) {
	_, ml := newMembershipFixture()

	members, err := ml.ListMembers("member", "c1")
	require.NoError(t, err)
	assert.Len(t, members, 3)

	// 外部用户无权查看成员列表
	_, err = ml.ListMembers("ghost", "c1")
	assert.True(t, errs.IsUnauthorized(err))
}
