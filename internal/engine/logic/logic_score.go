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
	"math"
	"time"

	"github.com/go-quizhub/quizhub/internal/engine/model"
	"github.com/go-quizhub/quizhub/internal/engine/repo"
	"github.com/go-quizhub/quizhub/pkg/ctx"
)

/**
 * @file: logic_score.go
 * @description: average score aggregations over the answer log
 */

type ScoreLogic struct {
	ctx          *ctx.Context
	answeredRepo repo.IAnsweredQuestionRepository
	permission   *PermissionLogic
}

func NewScoreLogic(ctx *ctx.Context, answeredRepo repo.IAnsweredQuestionRepository, permission *PermissionLogic) *ScoreLogic {
	return &ScoreLogic{
		ctx:          ctx,
		answeredRepo: answeredRepo,
		permission:   permission,
	}
}

// AverageScore 正确数 / 总数，保留两位小数。空集返回 0。
func AverageScore(rows []model.AnsweredQuestion) float64 {
	if len(rows) == 0 {
		return 0.0
	}
	correct := 0
	for _, row := range rows {
		if row.IsCorrect {
			correct++
		}
	}
	return math.Round(float64(correct)/float64(len(rows))*100) / 100
}

// SystemAverage 全系统平均分
func (scl *ScoreLogic) SystemAverage() (float64, error) {
	rows, err := scl.answeredRepo.ListAll()
	if err != nil {
		return 0, err
	}
	return AverageScore(rows), nil
}

// CompanyAverage 公司平均分，要求操作者至少是公司成员
func (scl *ScoreLogic) CompanyAverage(operatorUserId, companyId string) (float64, error) {
	if err := scl.permission.RequireMember(operatorUserId, companyId); err != nil {
		return 0, err
	}
	rows, err := scl.answeredRepo.ListByCompany(companyId)
	if err != nil {
		return 0, err
	}
	return AverageScore(rows), nil
}

// QuizAverage 单个测验平均分
func (scl *ScoreLogic) QuizAverage(quizId string) (float64, error) {
	rows, err := scl.answeredRepo.ListByQuiz(quizId)
	if err != nil {
		return 0, err
	}
	return AverageScore(rows), nil
}

// UserAverage 单个用户平均分
func (scl *ScoreLogic) UserAverage(userId string) (float64, error) {
	rows, err := scl.answeredRepo.ListByUser(userId)
	if err != nil {
		return 0, err
	}
	return AverageScore(rows), nil
}

// RangeAverage 时间区间平均分，[from, to)
func (scl *ScoreLogic) RangeAverage(from, to time.Time) (float64, error) {
	rows, err := scl.answeredRepo.ListByDateRange(from, to)
	if err != nil {
		return 0, err
	}
	return AverageScore(rows), nil
}
