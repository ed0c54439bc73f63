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
 * @file: logic_invitation.go
 * @description: invitation lifecycle, both directions share one state machine
 */

type InvitationLogic struct {
	ctx            *ctx.Context
	invitationRepo repo.IInvitationRepository
	membershipRepo repo.IMembershipRepository
	companyRepo    repo.ICompanyRepository
	permission     *PermissionLogic
}

func NewInvitationLogic(
	ctx *ctx.Context,
	invitationRepo repo.IInvitationRepository,
	membershipRepo repo.IMembershipRepository,
	companyRepo repo.ICompanyRepository,
	permission *PermissionLogic,
) *InvitationLogic {
	return &InvitationLogic{
		ctx:            ctx,
		invitationRepo: invitationRepo,
		membershipRepo: membershipRepo,
		companyRepo:    companyRepo,
		permission:     permission,
	}
}

// SendInvitation 所有者邀请用户加入公司。
// 发起方必须是公司所有者，接收方必须当前无公司。
func (il *InvitationLogic) SendInvitation(senderId string, req *model.SendInvitationReq) (*model.InvitationResp, error) {
	if err := il.permission.RequireOwner(senderId, req.CompanyId); err != nil {
		return nil, err
	}

	if err := il.requireUnaffiliated(req.ReceiverId); err != nil {
		return nil, err
	}

	exists, err := il.invitationRepo.HasPendingBetween(senderId, req.ReceiverId, req.CompanyId)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.New(errs.KindConflict, "a pending invitation already exists")
	}

	invitation := &model.Invitation{
		InvitationId: id.GetUUIDWithoutDashes(),
		Title:        req.Title,
		Description:  req.Description,
		SenderId:     senderId,
		ReceiverId:   req.ReceiverId,
		CompanyId:    req.CompanyId,
		Status:       model.InvitationStatusPending,
	}
	if err := il.invitationRepo.Create(invitation); err != nil {
		return nil, err
	}
	return invitation.ToResp(), nil
}

// RequestToJoin 用户申请加入公司，接收方自动定为公司所有者。
// 申请人必须当前无公司，且不存在同方向的待处理申请。
func (il *InvitationLogic) RequestToJoin(requesterId string, req *model.RequestToJoinReq) (*model.InvitationResp, error) {
	if err := il.requireUnaffiliated(requesterId); err != nil {
		return nil, err
	}

	company, err := il.companyRepo.GetByCompanyId(req.CompanyId)
	if err != nil {
		return nil, errs.Wrap(errs.KindNotFound, err, "company not found")
	}

	exists, err := il.invitationRepo.HasPendingBetween(requesterId, company.OwnerUserId, req.CompanyId)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.New(errs.KindConflict, "a pending join request already exists")
	}

	invitation := &model.Invitation{
		InvitationId: id.GetUUIDWithoutDashes(),
		Title:        req.Title,
		Description:  req.Description,
		SenderId:     requesterId,
		ReceiverId:   company.OwnerUserId,
		CompanyId:    req.CompanyId,
		Status:       model.InvitationStatusPending,
	}
	if err := il.invitationRepo.Create(invitation); err != nil {
		return nil, err
	}
	return invitation.ToResp(), nil
}

// Accept 接受邀请。只有非发起方可以裁决；被接受时加入方入会。
// 加入方是哪一侧由方向决定：所有者邀请时是 receiver，申请加入时是 sender。
func (il *InvitationLogic) Accept(operatorUserId, invitationId string) (*model.InvitationResp, error) {
	invitation, err := il.getPendingForDecision(operatorUserId, invitationId)
	if err != nil {
		return nil, err
	}

	joinerUserId := il.joinerOf(invitation)
	if err := il.requireUnaffiliated(joinerUserId); err != nil {
		return nil, err
	}

	accepted, err := il.invitationRepo.AcceptTx(invitationId, joinerUserId, invitation.CompanyId)
	if err != nil {
		return nil, err
	}
	if !accepted {
		// 守卫更新没有命中行，说明并发方先裁决了
		return nil, errs.New(errs.KindInvalidState, "invitation has already been resolved")
	}

	invitation.Status = model.InvitationStatusAccepted
	return invitation.ToResp(), nil
}

// Decline 拒绝邀请，只有非发起方可以裁决
func (il *InvitationLogic) Decline(operatorUserId, invitationId string) (*model.InvitationResp, error) {
	invitation, err := il.getPendingForDecision(operatorUserId, invitationId)
	if err != nil {
		return nil, err
	}

	declined, err := il.invitationRepo.Decline(invitationId)
	if err != nil {
		return nil, err
	}
	if !declined {
		return nil, errs.New(errs.KindInvalidState, "invitation has already been resolved")
	}

	invitation.Status = model.InvitationStatusDeclined
	return invitation.ToResp(), nil
}

// Cancel 取消待处理邀请，仅限发起方
func (il *InvitationLogic) Cancel(operatorUserId, invitationId string) error {
	invitation, err := il.invitationRepo.GetByInvitationId(invitationId)
	if err != nil {
		return errs.Wrap(errs.KindNotFound, err, "invitation not found")
	}
	if invitation.SenderId != operatorUserId {
		return errs.New(errs.KindUnauthorized, "only the sender can cancel an invitation")
	}

	deleted, err := il.invitationRepo.DeletePending(invitationId)
	if err != nil {
		return err
	}
	if !deleted {
		return errs.New(errs.KindInvalidState, "invitation has already been resolved")
	}
	return nil
}

// ListForUser 列出发给用户的邀请
func (il *InvitationLogic) ListForUser(userId string) ([]model.InvitationResp, error) {
	invitations, err := il.invitationRepo.ListByReceiver(userId)
	if err != nil {
		return nil, err
	}
	resps := make([]model.InvitationResp, 0, len(invitations))
	for i := range invitations {
		resps = append(resps, *invitations[i].ToResp())
	}
	return resps, nil
}

// ListForCompany 列出公司的邀请，仅限所有者查看
func (il *InvitationLogic) ListForCompany(operatorUserId, companyId string) ([]model.InvitationResp, error) {
	if err := il.permission.RequireOwner(operatorUserId, companyId); err != nil {
		return nil, err
	}
	invitations, err := il.invitationRepo.ListByCompany(companyId)
	if err != nil {
		return nil, err
	}
	resps := make([]model.InvitationResp, 0, len(invitations))
	for i := range invitations {
		resps = append(resps, *invitations[i].ToResp())
	}
	return resps, nil
}

// getPendingForDecision 取出邀请并校验裁决权：裁决方必须是参与方且不是发起方
func (il *InvitationLogic) getPendingForDecision(operatorUserId, invitationId string) (*model.Invitation, error) {
	invitation, err := il.invitationRepo.GetByInvitationId(invitationId)
	if err != nil {
		return nil, errs.Wrap(errs.KindNotFound, err, "invitation not found")
	}

	if operatorUserId != invitation.SenderId && operatorUserId != invitation.ReceiverId {
		return nil, errs.New(errs.KindUnauthorized, "user is not a party of this invitation")
	}
	if operatorUserId == invitation.SenderId {
		return nil, errs.New(errs.KindUnauthorized, "the initiating party cannot decide an invitation")
	}
	if invitation.Status != model.InvitationStatusPending {
		return nil, errs.New(errs.KindInvalidState, "invitation has already been resolved")
	}
	return invitation, nil
}

// joinerOf 根据方向判定加入方：公司侧发起则 receiver 入会，用户申请则 sender 入会
func (il *InvitationLogic) joinerOf(invitation *model.Invitation) string {
	company, err := il.companyRepo.GetByCompanyId(invitation.CompanyId)
	if err == nil && company.OwnerUserId == invitation.SenderId {
		return invitation.ReceiverId
	}
	return invitation.SenderId
}

// requireUnaffiliated 要求用户当前无公司
func (il *InvitationLogic) requireUnaffiliated(userId string) error {
	role, err := il.permission.membershipRole(userId)
	if err != nil {
		return err
	}
	if role.IsMemberOrHigher() {
		return errs.New(errs.KindConflict, "user already belongs to a company")
	}
	return nil
}
