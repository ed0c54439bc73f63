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

// AnsweredQuestion 答题流水表，append-only，历史分析的事实来源。
// answer_text / is_correct 为提交时刻的快照，后续修改答案不回溯。
type AnsweredQuestion struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserId     string    `gorm:"column:user_id;index" json:"userId"`
	CompanyId  string    `gorm:"column:company_id;index" json:"companyId"`
	QuizId     string    `gorm:"column:quiz_id;index" json:"quizId"`
	QuestionId string    `gorm:"column:question_id" json:"questionId"`
	AnswerId   string    `gorm:"column:answer_id" json:"answerId"`
	AnswerText string    `gorm:"column:answer_text" json:"answerText"`
	IsCorrect  bool      `gorm:"column:is_correct" json:"isCorrect"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime;index" json:"createdAt"`
}

func (AnsweredQuestion) TableName() string {
	return "t_answered_question"
}
