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
	"fmt"

	"github.com/go-quizhub/quizhub/internal/engine/model"
	"github.com/go-quizhub/quizhub/internal/engine/repo"
	"github.com/go-quizhub/quizhub/pkg/ctx"
	"github.com/go-quizhub/quizhub/pkg/errs"
	"github.com/go-quizhub/quizhub/pkg/id"
	"github.com/go-quizhub/quizhub/pkg/log"
)

/**
 * @file: logic_quiz.go
 * @description: quiz / question / answer authoring logic
 */

type QuizLogic struct {
	ctx          *ctx.Context
	quizRepo     repo.IQuizRepository
	questionRepo repo.IQuestionRepository
	notification *NotificationLogic
	permission   *PermissionLogic
}

func NewQuizLogic(
	ctx *ctx.Context,
	quizRepo repo.IQuizRepository,
	questionRepo repo.IQuestionRepository,
	notification *NotificationLogic,
	permission *PermissionLogic,
) *QuizLogic {
	return &QuizLogic{
		ctx:          ctx,
		quizRepo:     quizRepo,
		questionRepo: questionRepo,
		notification: notification,
		permission:   permission,
	}
}

// CreateAnswer 暂存答案，要求操作者至少是管理员
func (ql *QuizLogic) CreateAnswer(operatorUserId string, req *model.CreateAnswerReq) (*model.Answer, error) {
	if err := ql.permission.RequireRole(operatorUserId, req.CompanyId, model.RoleAdmin); err != nil {
		return nil, err
	}
	if req.Text == "" {
		return nil, errs.New(errs.KindValidation, "answer text is required")
	}

	answer := &model.Answer{
		AnswerId:  id.GetUUIDWithoutDashes(),
		Text:      req.Text,
		IsCorrect: req.IsCorrect,
		CompanyId: req.CompanyId,
	}
	if err := ql.questionRepo.CreateAnswer(answer); err != nil {
		return nil, err
	}
	return answer, nil
}

// CreateQuestion 创建问题并挂上暂存答案。
// 答案数量必须在 [2,4]，引用的答案必须全部存在且未被占用。
func (ql *QuizLogic) CreateQuestion(operatorUserId string, req *model.CreateQuestionReq) (*model.Question, error) {
	if err := ql.permission.RequireRole(operatorUserId, req.CompanyId, model.RoleAdmin); err != nil {
		return nil, err
	}
	if req.Title == "" {
		return nil, errs.New(errs.KindValidation, "question title is required")
	}
	if len(req.AnswerIds) < model.MinAnswersPerQuestion || len(req.AnswerIds) > model.MaxAnswersPerQuestion {
		return nil, errs.Newf(errs.KindValidation, "a question requires between %d and %d answers, got %d",
			model.MinAnswersPerQuestion, model.MaxAnswersPerQuestion, len(req.AnswerIds))
	}

	for _, answerId := range req.AnswerIds {
		answer, err := ql.questionRepo.GetAnswer(answerId)
		if err != nil {
			return nil, errs.Wrap(errs.KindNotFound, err, fmt.Sprintf("answer %s not found", answerId))
		}
		if answer.QuestionId != nil {
			return nil, errs.Newf(errs.KindConflict, "answer %s already belongs to a question", answerId)
		}
	}

	question := &model.Question{
		QuestionId: id.GetUUIDWithoutDashes(),
		Title:      req.Title,
		CompanyId:  &req.CompanyId,
	}
	if err := ql.questionRepo.CreateWithAnswers(question, req.AnswerIds); err != nil {
		return nil, err
	}
	return question, nil
}

// CreateQuiz 创建测验并挂上暂存问题，创建成功后向全体成员广播。
// 问题数量必须 >= 2，引用的问题必须全部存在且未被占用。
func (ql *QuizLogic) CreateQuiz(operatorUserId string, req *model.CreateQuizReq) (*model.Quiz, error) {
	if err := ql.permission.RequireRole(operatorUserId, req.CompanyId, model.RoleAdmin); err != nil {
		return nil, err
	}
	if req.Title == "" {
		return nil, errs.New(errs.KindValidation, "quiz title is required")
	}
	if len(req.QuestionIds) < model.MinQuestionsPerQuiz {
		return nil, errs.Newf(errs.KindValidation, "a quiz requires at least %d questions, got %d",
			model.MinQuestionsPerQuiz, len(req.QuestionIds))
	}

	for _, questionId := range req.QuestionIds {
		question, err := ql.questionRepo.GetByQuestionId(questionId)
		if err != nil {
			return nil, errs.Wrap(errs.KindNotFound, err, fmt.Sprintf("question %s not found", questionId))
		}
		if question.QuizId != nil {
			return nil, errs.Newf(errs.KindConflict, "question %s already belongs to a quiz", questionId)
		}
	}

	quiz := &model.Quiz{
		QuizId:      id.GetUUIDWithoutDashes(),
		Title:       req.Title,
		Description: req.Description,
		CompanyId:   req.CompanyId,
	}
	if err := ql.quizRepo.CreateWithQuestions(quiz, req.QuestionIds); err != nil {
		return nil, err
	}

	// 广播失败不回滚测验创建，通知属于尽力而为的发件箱
	message := fmt.Sprintf("New quiz available: %s", quiz.Title)
	if err := ql.notification.Broadcast(quiz.CompanyId, message); err != nil {
		log.Errorw("failed to broadcast quiz creation", "quizId", quiz.QuizId, "error", err)
	}

	return quiz, nil
}

// GetQuiz 查询测验，要求操作者至少是成员
func (ql *QuizLogic) GetQuiz(operatorUserId, quizId string) (*model.Quiz, error) {
	quiz, err := ql.quizRepo.GetByQuizId(quizId)
	if err != nil {
		return nil, errs.Wrap(errs.KindNotFound, err, "quiz not found")
	}
	if err := ql.permission.RequireMember(operatorUserId, quiz.CompanyId); err != nil {
		return nil, err
	}
	return quiz, nil
}

// ListQuizzes 列出公司测验，要求操作者至少是成员
func (ql *QuizLogic) ListQuizzes(operatorUserId, companyId string) ([]model.Quiz, error) {
	if err := ql.permission.RequireMember(operatorUserId, companyId); err != nil {
		return nil, err
	}
	return ql.quizRepo.ListByCompany(companyId)
}

// UpdateQuiz 更新测验标题/描述，要求操作者至少是管理员
func (ql *QuizLogic) UpdateQuiz(operatorUserId, quizId string, req *model.UpdateQuizReq) error {
	quiz, err := ql.quizRepo.GetByQuizId(quizId)
	if err != nil {
		return errs.Wrap(errs.KindNotFound, err, "quiz not found")
	}
	if err := ql.permission.RequireRole(operatorUserId, quiz.CompanyId, model.RoleAdmin); err != nil {
		return err
	}

	updates := map[string]any{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if len(updates) == 0 {
		return nil
	}
	return ql.quizRepo.Update(quizId, updates)
}

// DeleteQuiz 删除测验，要求操作者至少是管理员。问题与答案级联清理。
func (ql *QuizLogic) DeleteQuiz(operatorUserId, quizId string) error {
	quiz, err := ql.quizRepo.GetByQuizId(quizId)
	if err != nil {
		return errs.Wrap(errs.KindNotFound, err, "quiz not found")
	}
	if err := ql.permission.RequireRole(operatorUserId, quiz.CompanyId, model.RoleAdmin); err != nil {
		return err
	}
	return ql.quizRepo.Delete(quizId)
}
