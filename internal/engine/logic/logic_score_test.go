package logic

import (
	"testing"
	"time"

	"github.com/go-quizhub/quizhub/internal/engine/model"
	"github.com/stretchr/testify/assert"
)

func TestAverageScore(t *testing.T) {
	tests := []struct {
		name string
		rows []model.AnsweredQuestion
		want float64
	}{
		{
			name: "empty log",
			rows: nil,
			want: 0.0,
		},
		{
			name: "all correct",
			rows: []model.AnsweredQuestion{
				{IsCorrect: true},
				{IsCorrect: true},
			},
			want: 1.0,
		},
		{
			name: "all wrong",
			rows: []model.AnsweredQuestion{
				{IsCorrect: false},
				{IsCorrect: false},
			},
			want: 0.0,
		},
		{
			name: "two thirds rounded to two decimals",
			rows: []model.AnsweredQuestion{
				{IsCorrect: true},
				{IsCorrect: true},
				{IsCorrect: false},
			},
			want: 0.67,
		},
		{
			name: "one third rounded to two decimals",
			rows: []model.AnsweredQuestion{
				{IsCorrect: true},
				{IsCorrect: false},
				{IsCorrect: false},
			},
			want: 0.33,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AverageScore(tt.rows))
		})
	}
}

func TestScoreAggregations(t *testing.T) {
	memberships := newFakeMembershipRepo()
	memberships.put("u1", "c1", model.RoleMember)
	companies := newFakeCompanyRepo(memberships)
	permission := NewPermissionLogic(memberships, companies)

	answered := newFakeAnsweredRepo()
	answered.rows = []model.AnsweredQuestion{
		{UserId: "u1", CompanyId: "c1", QuizId: "q1", IsCorrect: true, CreatedAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)},
		{UserId: "u1", CompanyId: "c1", QuizId: "q1", IsCorrect: false, CreatedAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)},
		{UserId: "u2", CompanyId: "c2", QuizId: "q2", IsCorrect: true, CreatedAt: time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)},
	}

	scoreLogic := NewScoreLogic(nil, answered, permission)

	system, err := scoreLogic.SystemAverage()
	assert.NoError(t, err)
	assert.Equal(t, 0.67, system)

	company, err := scoreLogic.CompanyAverage("u1", "c1")
	assert.NoError(t, err)
	assert.Equal(t, 0.5, company)

	// 非成员不能查看公司平均分
	_, err = scoreLogic.CompanyAverage("u2", "c1")
	assert.Error(t, err)

	quiz, err := scoreLogic.QuizAverage("q2")
	assert.NoError(t, err)
	assert.Equal(t, 1.0, quiz)

	user, err := scoreLogic.UserAverage("u1")
	assert.NoError(t, err)
	assert.Equal(t, 0.5, user)

	ranged, err := scoreLogic.RangeAverage(
		time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
	)
	assert.NoError(t, err)
	assert.Equal(t, 1.0, ranged)
}
