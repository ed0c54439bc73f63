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
	"time"

	"github.com/go-quizhub/quizhub/internal/engine/model"
	"github.com/go-quizhub/quizhub/internal/engine/repo"
	"github.com/go-quizhub/quizhub/pkg/ctx"
	"github.com/go-quizhub/quizhub/pkg/errs"
	"github.com/go-quizhub/quizhub/pkg/log"
)

/**
 * @file: logic_submission.go
 * @description: quiz submission recording, DB first then completion cache
 */

// CompletionTTL 完成记录缓存的存活时间
const CompletionTTL = 48 * time.Hour

type SubmissionLogic struct {
	ctx            *ctx.Context
	quizRepo       repo.IQuizRepository
	questionRepo   repo.IQuestionRepository
	answeredRepo   repo.IAnsweredQuestionRepository
	completionRepo repo.ICompletionCacheRepository
	permission     *PermissionLogic
	cacheTTL       time.Duration
}

func NewSubmissionLogic(
	ctx *ctx.Context,
	quizRepo repo.IQuizRepository,
	questionRepo repo.IQuestionRepository,
	answeredRepo repo.IAnsweredQuestionRepository,
	completionRepo repo.ICompletionCacheRepository,
	permission *PermissionLogic,
	cacheTTL time.Duration,
) *SubmissionLogic {
	if cacheTTL <= 0 {
		cacheTTL = CompletionTTL
	}
	return &SubmissionLogic{
		ctx:            ctx,
		quizRepo:       quizRepo,
		questionRepo:   questionRepo,
		answeredRepo:   answeredRepo,
		completionRepo: completionRepo,
		permission:     permission,
		cacheTTL:       cacheTTL,
	}
}

// RecordSubmission 记录一次完整的测验提交。
// 校验每题答案归属后，整批流水与完成计数在单个事务内落库，
// 随后写完成记录缓存。缓存写入失败只记日志重试一次，不影响结果。
func (sl *SubmissionLogic) RecordSubmission(c context.Context, userId, quizId string, req *model.SubmitQuizReq) (*model.CompletionRecord, error) {
	quiz, err := sl.quizRepo.GetByQuizId(quizId)
	if err != nil {
		return nil, errs.Wrap(errs.KindNotFound, err, "quiz not found")
	}
	if err := sl.permission.RequireMember(userId, quiz.CompanyId); err != nil {
		return nil, err
	}

	questions, err := sl.questionRepo.ListByQuiz(quizId)
	if err != nil {
		return nil, err
	}
	if len(req.Answers) != len(questions) {
		return nil, errs.Newf(errs.KindValidation, "expected answers for %d questions, got %d",
			len(questions), len(req.Answers))
	}

	now := time.Now()
	rows := make([]model.AnsweredQuestion, 0, len(questions))
	completionAnswers := make([]model.CompletionAnswer, 0, len(questions))

	for i := range questions {
		question := &questions[i]
		answerId, ok := req.Answers[question.QuestionId]
		if !ok {
			return nil, errs.Newf(errs.KindValidation, "missing answer for question %s", question.QuestionId)
		}

		answer, err := sl.questionRepo.GetAnswer(answerId)
		if err != nil {
			return nil, errs.Wrap(errs.KindNotFound, err, "answer not found")
		}
		if answer.QuestionId == nil || *answer.QuestionId != question.QuestionId {
			return nil, errs.Newf(errs.KindNotFound, "answer %s does not belong to question %s",
				answerId, question.QuestionId)
		}

		rows = append(rows, model.AnsweredQuestion{
			UserId:     userId,
			CompanyId:  quiz.CompanyId,
			QuizId:     quizId,
			QuestionId: question.QuestionId,
			AnswerId:   answer.AnswerId,
			AnswerText: answer.Text,
			IsCorrect:  answer.IsCorrect,
		})
		completionAnswers = append(completionAnswers, model.CompletionAnswer{
			QuestionId: question.QuestionId,
			AnswerId:   answer.AnswerId,
			AnswerText: answer.Text,
			IsCorrect:  answer.IsCorrect,
			CreatedAt:  now,
		})
	}

	if err := sl.answeredRepo.RecordBatch(rows, quizId); err != nil {
		return nil, err
	}

	record := &model.CompletionRecord{
		UserId:    userId,
		QuizId:    quizId,
		CompanyId: quiz.CompanyId,
		Answers:   completionAnswers,
	}

	// 事务已提交，缓存只是新鲜度索引，失败不向调用方暴露
	if err := sl.completionRepo.Write(c, record, sl.cacheTTL); err != nil {
		log.Errorw("failed to write completion record, retrying once",
			"userId", userId, "quizId", quizId, "error", err)
		if err := sl.completionRepo.Write(c, record, sl.cacheTTL); err != nil {
			log.Errorw("completion record write retry failed",
				"userId", userId, "quizId", quizId, "error", err)
		}
	}

	return record, nil
}

// RecentResults 导出用户在公司内的近期完成记录（缓存视图，TTL 内）
func (sl *SubmissionLogic) RecentResults(c context.Context, userId, companyId string) ([]model.CompletionRecord, error) {
	if err := sl.permission.RequireMember(userId, companyId); err != nil {
		return nil, err
	}
	return sl.completionRepo.ScanPattern(c, model.CompletionPattern(userId, companyId))
}
