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

package repo

import (
	"time"

	"github.com/go-quizhub/quizhub/internal/engine/model"
	"github.com/go-quizhub/quizhub/pkg/database"
	"gorm.io/gorm"
)

type IAnsweredQuestionRepository interface {
	RecordBatch(rows []model.AnsweredQuestion, quizId string) error
	ListAll() ([]model.AnsweredQuestion, error)
	ListByCompany(companyId string) ([]model.AnsweredQuestion, error)
	ListByQuiz(quizId string) ([]model.AnsweredQuestion, error)
	ListByUser(userId string) ([]model.AnsweredQuestion, error)
	ListByDateRange(from, to time.Time) ([]model.AnsweredQuestion, error)
}

type AnsweredQuestionRepo struct {
	db database.IDatabase
}

func NewAnsweredQuestionRepo(db database.IDatabase) IAnsweredQuestionRepository {
	return &AnsweredQuestionRepo{db: db}
}

// RecordBatch 在单个事务内写入整次提交的答题流水并累加测验完成计数。
// 整批提交要么全部落库要么全部回滚。
func (r *AnsweredQuestionRepo) RecordBatch(rows []model.AnsweredQuestion, quizId string) error {
	return r.db.Database().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
		return tx.Model(&model.Quiz{}).
			Where("quiz_id = ?", quizId).
			Update("frequency", gorm.Expr("frequency + 1")).Error
	})
}

// ListAll 全量答题流水（系统级平均分）
func (r *AnsweredQuestionRepo) ListAll() ([]model.AnsweredQuestion, error) {
	var rows []model.AnsweredQuestion
	err := r.db.Database().Find(&rows).Error
	return rows, err
}

// ListByCompany 按公司查询答题流水
func (r *AnsweredQuestionRepo) ListByCompany(companyId string) ([]model.AnsweredQuestion, error) {
	var rows []model.AnsweredQuestion
	err := r.db.Database().Where("company_id = ?", companyId).Find(&rows).Error
	return rows, err
}

// ListByQuiz 按测验查询答题流水
func (r *AnsweredQuestionRepo) ListByQuiz(quizId string) ([]model.AnsweredQuestion, error) {
	var rows []model.AnsweredQuestion
	err := r.db.Database().Where("quiz_id = ?", quizId).Find(&rows).Error
	return rows, err
}

// ListByUser 按用户查询答题流水
func (r *AnsweredQuestionRepo) ListByUser(userId string) ([]model.AnsweredQuestion, error) {
	var rows []model.AnsweredQuestion
	err := r.db.Database().Where("user_id = ?", userId).Find(&rows).Error
	return rows, err
}

// ListByDateRange 按时间区间查询答题流水
func (r *AnsweredQuestionRepo) ListByDateRange(from, to time.Time) ([]model.AnsweredQuestion, error) {
	var rows []model.AnsweredQuestion
	err := r.db.Database().Where("created_at >= ? AND created_at < ?", from, to).Find(&rows).Error
	return rows, err
}
