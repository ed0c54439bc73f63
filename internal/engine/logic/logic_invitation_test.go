package logic

import (
	"testing"

	"github.com/go-quizhub/quizhub/internal/engine/model"
	"github.com/go-quizhub/quizhub/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type invitationFixture struct {
	memberships *fakeMembershipRepo
	companies   *fakeCompanyRepo
	invitations *fakeInvitationRepo
	logic       *InvitationLogic
}

func newInvitationFixture() *invitationFixture {
	memberships := newFakeMembershipRepo()
	companies := newFakeCompanyRepo(memberships)
	invitations := newFakeInvitationRepo(memberships)
	permission := NewPermissionLogic(memberships, companies)

	companies.rows["c1"] = &model.Company{CompanyId: "c1", Name: "acme", OwnerUserId: "owner", IsVisible: 1}
	memberships.put("owner", "c1", model.RoleOwner)

	return &invitationFixture{
		memberships: memberships,
		companies:   companies,
		invitations: invitations,
		logic:       NewInvitationLogic(nil, invitations, memberships, companies, permission),
	}
}

func TestSendInvitation(t *testing.T) {
	f := newInvitationFixture()

	resp, err := f.logic.SendInvitation("owner", &model.SendInvitationReq{
		Title:      "join us",
		ReceiverId: "candidate",
		CompanyId:  "c1",
	})
	require.NoError(t, err)
	assert.Equal(t, model.InvitationStatusPending, resp.Status)
	assert.Equal(t, "owner", resp.SenderId)
	assert.Equal(t, "candidate", resp.ReceiverId)

	// 重复邀请被拒
	_, err = f.logic.SendInvitation("owner", &model.SendInvitationReq{
		ReceiverId: "candidate",
		CompanyId:  "c1",
	})
	assert.True(t, errs.IsConflict(err))
}

func TestSendInvitationRequiresOwner(t *testing.T) {
	f := newInvitationFixture()
	f.memberships.put("admin", "c1", model.RoleAdmin)

	_, err := f.logic.SendInvitation("admin", &model.SendInvitationReq{
		ReceiverId: "candidate",
		CompanyId:  "c1",
	})
	assert.True(t, errs.IsUnauthorized(err))
}

func TestSendInvitationToAffiliatedUser(t *testing.T) {
	f := newInvitationFixture()
	f.memberships.put("busy", "c2", model.RoleMember)

	_, err := f.logic.SendInvitation("owner", &model.SendInvitationReq{
		ReceiverId: "busy",
		CompanyId:  "c1",
	})
	assert.True(t, errs.IsConflict(err))
}

func TestRequestToJoinAddressesOwner(t *testing.T) {
	f := newInvitationFixture()

	resp, err := f.logic.RequestToJoin("candidate", &model.RequestToJoinReq{
		Title:     "let me in",
		CompanyId: "c1",
	})
	require.NoError(t, err)
	assert.Equal(t, "candidate", resp.SenderId)
	assert.Equal(t, "owner", resp.ReceiverId)
	assert.Equal(t, model.InvitationStatusPending, resp.Status)

	// 同方向重复申请被拒
	_, err = f.logic.RequestToJoin("candidate", &model.RequestToJoinReq{CompanyId: "c1"})
	assert.True(t, errs.IsConflict(err))
}

func TestAcceptInvitationJoinsReceiver(t *testing.T) {
	f := newInvitationFixture()

	resp, err := f.logic.SendInvitation("owner", &model.SendInvitationReq{
		ReceiverId: "candidate",
		CompanyId:  "c1",
	})
	require.NoError(t, err)

	accepted, err := f.logic.Accept("candidate", resp.InvitationId)
	require.NoError(t, err)
	assert.Equal(t, model.InvitationStatusAccepted, accepted.Status)

	membership, err := f.memberships.GetByUserId("candidate")
	require.NoError(t, err)
	assert.Equal(t, model.RoleMember, membership.Role)
	require.NotNil(t, membership.CompanyId)
	assert.Equal(t, "c1", *membership.CompanyId)
}

func TestAcceptJoinRequestJoinsSender(t *testing.T) {
	f := newInvitationFixture()

	resp, err := f.logic.RequestToJoin("candidate", &model.RequestToJoinReq{CompanyId: "c1"})
	require.NoError(t, err)

	// 申请加入时裁决方是所有者，加入方是申请人
	_, err = f.logic.Accept("owner", resp.InvitationId)
	require.NoError(t, err)

	membership, err := f.memberships.GetByUserId("candidate")
	require.NoError(t, err)
	assert.Equal(t, model.RoleMember, membership.Role)
}

func TestSenderCannotDecideInvitation(t *testing.T) {
	f := newInvitationFixture()

	resp, err := f.logic.SendInvitation("owner", &model.SendInvitationReq{
		ReceiverId: "candidate",
		CompanyId:  "c1",
	})
	require.NoError(t, err)

	_, err = f.logic.Accept("owner", resp.InvitationId)
	assert.True(t, errs.IsUnauthorized(err))

	_, err = f.logic.Decline("owner", resp.InvitationId)
	assert.True(t, errs.IsUnauthorized(err))

	// 第三方也不能裁决
	_, err = f.logic.Accept("stranger", resp.InvitationId)
	assert.True(t, errs.IsUnauthorized(err))
}

func TestResolvedInvitationIsFinal(t *testing.T) {
	f := newInvitationFixture()

	resp, err := f.logic.SendInvitation("owner", &model.SendInvitationReq{
		ReceiverId: "candidate",
		CompanyId:  "c1",
	})
	require.NoError(t, err)

	_, err = f.logic.Decline("candidate", resp.InvitationId)
	require.NoError(t, err)

	// 已拒绝的邀请不能再接受或再拒绝
	_, err = f.logic.Accept("candidate", resp.InvitationId)
	assert.True(t, errs.IsInvalidState(err))

	_, err = f.logic.Decline("candidate", resp.InvitationId)
	assert.True(t, errs.IsInvalidState(err))
}

func TestCancelInvitation(t *testing.T) {
	f := newInvitationFixture()

	resp, err := f.logic.SendInvitation("owner", &model.SendInvitationReq{
		ReceiverId: "candidate",
		CompanyId:  "c1",
	})
	require.NoError(t, err)

	// 非发起方不能取消
	err = f.logic.Cancel("candidate", resp.InvitationId)
	assert.True(t, errs.IsUnauthorized(err))

	require.NoError(t, f.logic.Cancel("owner", resp.InvitationId))

	_, err = f.invitations.GetByInvitationId(resp.InvitationId)
	assert.Error(t, err)
}

func TestRequestToJoinUnknownCompany(t *testing.T) {
	f := newInvitationFixture()

	_, err := f.logic.RequestToJoin("candidate", &model.RequestToJoinReq{CompanyId: "nope"})
	assert.True(t, errs.IsNotFound(err))
}
