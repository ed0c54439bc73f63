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

import (
	"fmt"
	"time"
)

// CompletionKeyPrefix 完成记录缓存键前缀
const CompletionKeyPrefix = "answered_quiz_"

// CompletionRecord 完成记录缓存文档。
// TTL 限定的二级索引，事实来源是 t_answered_question；
// 只用于新鲜度检查和用户侧近期结果导出，不参与权限或计分。
type CompletionRecord struct {
	UserId    string             `json:"user_id"`
	QuizId    string             `json:"quiz_id"`
	CompanyId string             `json:"company_id"`
	Answers   []CompletionAnswer `json:"answers"`
}

// CompletionAnswer 完成记录中的单题快照
type CompletionAnswer struct {
	QuestionId string    `json:"question_id"`
	AnswerId   string    `json:"answer_id"`
	AnswerText string    `json:"answer_text"`
	IsCorrect  bool      `json:"is_correct"`
	CreatedAt  time.Time `json:"created_at"`
}

// CompletionKey builds the cache key for one (user, company, quiz) completion.
func CompletionKey(userId, companyId, quizId string) string {
	return fmt.Sprintf("%s%s_%s_%s", CompletionKeyPrefix, userId, companyId, quizId)
}

// CompletionPattern builds the scan pattern covering all quizzes of one
// (user, company) pair.
func CompletionPattern(userId, companyId string) string {
	return fmt.Sprintf("%s%s_%s_*", CompletionKeyPrefix, userId, companyId)
}

// FreshAt reports whether any answer in the record was created at or after cutoff.
func (r *CompletionRecord) FreshAt(cutoff time.Time) bool {
	for _, a := range r.Answers {
		if !a.CreatedAt.Before(cutoff) {
			return true
		}
	}
	return false
}
