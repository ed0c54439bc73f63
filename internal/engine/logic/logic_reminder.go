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
	"context"
	"fmt"
	"time"

	"github.com/go-quizhub/quizhub/internal/engine/model"
	"github.com/go-quizhub/quizhub/internal/engine/repo"
	"github.com/go-quizhub/quizhub/pkg/ctx"
	"github.com/go-quizhub/quizhub/pkg/log"
)

/**
 * @file: logic_reminder.go
 * @description: daily reminder pass over companies, members and quizzes
 */

// ReminderStaleAfter 完成记录的新鲜度窗口。
// 窗口内没有任何完成记录的 (成员, 测验) 组合会收到提醒。
const ReminderStaleAfter = 24 * time.Hour

type ReminderLogic struct {
	ctx            *ctx.Context
	companyRepo    repo.ICompanyRepository
	membershipRepo repo.IMembershipRepository
	quizRepo       repo.IQuizRepository
	completionRepo repo.ICompletionCacheRepository
	notification   *NotificationLogic
	staleAfter     time.Duration
}

func NewReminderLogic(
	ctx *ctx.Context,
	companyRepo repo.ICompanyRepository,
	membershipRepo repo.IMembershipRepository,
	quizRepo repo.IQuizRepository,
	completionRepo repo.ICompletionCacheRepository,
	notification *NotificationLogic,
	staleAfter time.Duration,
) *ReminderLogic {
	if staleAfter <= 0 {
		staleAfter = ReminderStaleAfter
	}
	return &ReminderLogic{
		ctx:            ctx,
		companyRepo:    companyRepo,
		membershipRepo: membershipRepo,
		quizRepo:       quizRepo,
		completionRepo: completionRepo,
		notification:   notification,
		staleAfter:     staleAfter,
	}
}

// RunReminderPass 遍历全部公司、成员和测验，为每个在新鲜度窗口内
// 没有完成记录的 (成员, 测验) 组合投递一条提醒。
// 单个公司或成员的失败只记日志，不中断整轮遍历；
// 公司之间检查 ctx 取消，便于关停时尽快退出。
func (rl *ReminderLogic) RunReminderPass(c context.Context) error {
	companies, err := rl.companyRepo.ListAll()
	if err != nil {
		return err
	}

	cutoff := time.Now().Add(-rl.staleAfter)
	var reminded int

	for i := range companies {
		select {
		case <-c.Done():
			log.Warnw("reminder pass interrupted", "companiesDone", i, "reminded", reminded)
			return c.Err()
		default:
		}

		company := &companies[i]
		n, err := rl.remindCompany(c, company, cutoff)
		if err != nil {
			log.Errorw("reminder pass failed for company, continuing",
				"companyId", company.CompanyId, "error", err)
			continue
		}
		reminded += n
	}

	log.Infow("reminder pass finished", "companies", len(companies), "reminded", reminded)
	return nil
}

func (rl *ReminderLogic) remindCompany(c context.Context, company *model.Company, cutoff time.Time) (int, error) {
	members, err := rl.membershipRepo.ListByCompany(company.CompanyId)
	if err != nil {
		return 0, err
	}
	quizzes, err := rl.quizRepo.ListByCompany(company.CompanyId)
	if err != nil {
		return 0, err
	}
	if len(members) == 0 || len(quizzes) == 0 {
		return 0, nil
	}

	var reminded int
	for _, member := range members {
		records, err := rl.completionRepo.ScanPattern(c, model.CompletionPattern(member.UserId, company.CompanyId))
		if err != nil {
			log.Errorw("failed to scan completion records, skipping member",
				"userId", member.UserId, "companyId", company.CompanyId, "error", err)
			continue
		}

		// 按测验建立最新完成视图，缺失与过期同样视为待提醒
		fresh := make(map[string]bool, len(records))
		for i := range records {
			if records[i].FreshAt(cutoff) {
				fresh[records[i].QuizId] = true
			}
		}

		for _, quiz := range quizzes {
			if fresh[quiz.QuizId] {
				continue
			}
			message := fmt.Sprintf("You didn't complete available quiz: %s. Please complete it in next 24h!", quiz.QuizId)
			if err := rl.notification.Send(member.UserId, company.CompanyId, message); err != nil {
				log.Errorw("failed to send reminder",
					"userId", member.UserId, "quizId", quiz.QuizId, "error", err)
				continue
			}
			reminded++
		}
	}
	return reminded, nil
}
