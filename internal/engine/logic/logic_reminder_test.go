package logic

import (
	"context"
	"testing"
	"time"

	"github.com/go-quizhub/quizhub/internal/engine/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reminderFixture struct {
	memberships   *fakeMembershipRepo
	companies     *fakeCompanyRepo
	quizzes       *fakeQuizRepo
	completion    *fakeCompletionRepo
	notifications *fakeNotificationRepo
	logic         *ReminderLogic
}

func newReminderFixture() *reminderFixture {
	memberships := newFakeMembershipRepo()
	companies := newFakeCompanyRepo(memberships)
	questions := newFakeQuestionRepo()
	quizzes := newFakeQuizRepo(questions)
	completion := newFakeCompletionRepo()
	notifications := newFakeNotificationRepo()
	notificationLogic := NewNotificationLogic(nil, notifications, memberships)

	return &reminderFixture{
		memberships:   memberships,
		companies:     companies,
		quizzes:       quizzes,
		completion:    completion,
		notifications: notifications,
		logic:         NewReminderLogic(nil, companies, memberships, quizzes, completion, notificationLogic, ReminderStaleAfter),
	}
}

func (f *reminderFixture) addCompany(companyId string, memberIds ...string) {
	f.companies.rows[companyId] = &model.Company{CompanyId: companyId, OwnerUserId: memberIds[0]}
	for i, userId := range memberIds {
		role := model.RoleMember
		if i == 0 {
			role = model.RoleOwner
		}
		f.memberships.put(userId, companyId, role)
	}
}

func (f *reminderFixture) addQuiz(companyId, quizId string) {
	f.quizzes.rows[quizId] = &model.Quiz{QuizId: quizId, Title: quizId, CompanyId: companyId}
}

func (f *reminderFixture) complete(userId, companyId, quizId string, at time.Time) {
	record := &model.CompletionRecord{
		UserId:    userId,
		CompanyId: companyId,
		QuizId:    quizId,
		Answers:   []model.CompletionAnswer{{QuestionId: "q", AnswerId: "a", CreatedAt: at}},
	}
	key := model.CompletionKey(userId, companyId, quizId)
	f.completion.records[key] = record
	f.completion.expireAt[key] = at.Add(CompletionTTL)
}

func TestReminderPassRemindsStaleAndMissing(t *testing.T) {
	f := newReminderFixture()
	f.addCompany("c1", "owner", "fresh", "stale", "never")
	f.addQuiz("c1", "quiz-1")

	now := time.Now()
	f.complete("fresh", "c1", "quiz-1", now.Add(-1*time.Hour))
	f.complete("stale", "c1", "quiz-1", now.Add(-30*time.Hour))
	f.complete("owner", "c1", "quiz-1", now.Add(-2*time.Hour))

	require.NoError(t, f.logic.RunReminderPass(context.Background()))

	// 只有 stale 和 never 收到提醒
	reminded := map[string]int{}
	for _, n := range f.notifications.rows {
		reminded[n.ReceiverId]++
		assert.Equal(t, "You didn't complete available quiz: quiz-1. Please complete it in next 24h!", n.Message)
		assert.Equal(t, "c1", n.CompanyId)
	}
	assert.Equal(t, map[string]int{"stale": 1, "never": 1}, reminded)
}

func TestReminderPassPerQuiz(t *testing.T) {
	f := newReminderFixture()
	f.addCompany("c1", "owner", "u1")
	f.addQuiz("c1", "quiz-a")
	f.addQuiz("c1", "quiz-b")

	// u1 只完成了 quiz-a
	f.complete("u1", "c1", "quiz-a", time.Now().Add(-1*time.Hour))
	f.complete("owner", "c1", "quiz-a", time.Now().Add(-1*time.Hour))
	f.complete("owner", "c1", "quiz-b", time.Now().Add(-1*time.Hour))

	require.NoError(t, f.logic.RunReminderPass(context.Background()))

	require.Len(t, f.notifications.rows, 1)
	n := f.notifications.rows[0]
	assert.Equal(t, "u1", n.ReceiverId)
	assert.Equal(t, "You didn't complete available quiz: quiz-b. Please complete it in next 24h!", n.Message)
}

func TestReminderPassSkipsEmptyCompanies(t *testing.T) {
	f := newReminderFixture()
	f.addCompany("no-quizzes", "owner1")
	f.companies.rows["no-members"] = &model.Company{CompanyId: "no-members", OwnerUserId: "nobody"}
	f.addQuiz("no-members", "quiz-x")

	require.NoError(t, f.logic.RunReminderPass(context.Background()))
	assert.Empty(t, f.notifications.rows)
}

func TestReminderPassHonorsCancellation(t *testing.T) {
	f := newReminderFixture()
	f.addCompany("c1", "owner", "u1")
	f.addQuiz("c1", "quiz-1")

	c, cancel := context.WithCancel(context.Background())
	cancel()

	err := f.logic.RunReminderPass(c)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, f.notifications.rows)
}
