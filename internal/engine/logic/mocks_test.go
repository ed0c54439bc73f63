package logic

import (
	"context"
	"time"

	"github.com/go-quizhub/quizhub/internal/engine/model"
	"github.com/go-quizhub/quizhub/internal/engine/repo"
	"gorm.io/gorm"
)

// in-memory repository fakes shared by the logic tests

type fakeMembershipRepo struct {
	rows map[string]*model.Membership // keyed by userId
}

func newFakeMembershipRepo() *fakeMembershipRepo {
	return &fakeMembershipRepo{rows: make(map[string]*model.Membership)}
}

func (f *fakeMembershipRepo) put(userId, companyId string, role model.Role) {
	m := &model.Membership{UserId: userId, Role: role}
	if companyId != "" {
		c := companyId
		m.CompanyId = &c
	}
	f.rows[userId] = m
}

func (f *fakeMembershipRepo) GetByUserId(userId string) (*model.Membership, error) {
	m, ok := f.rows[userId]
	if !ok {
		return &model.Membership{}, gorm.ErrRecordNotFound
	}
	cp := *m
	return &cp, nil
}

func (f *fakeMembershipRepo) ListByCompany(companyId string) ([]model.Membership, error) {
	var out []model.Membership
	for _, m := range f.rows {
		if m.CompanyId != nil && *m.CompanyId == companyId && m.Role != model.RoleUnemployed {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeMembershipRepo) Detach(userId string) error {
	if m, ok := f.rows[userId]; ok {
		m.CompanyId = nil
		m.Role = model.RoleUnemployed
	}
	return nil
}

func (f *fakeMembershipRepo) SwitchRole(userId, companyId string, from, to model.Role) (int64, error) {
	m, ok := f.rows[userId]
	if !ok || m.CompanyId == nil || *m.CompanyId != companyId || m.Role != from {
		return 0, nil
	}
	m.Role = to
	return 1, nil
}

type fakeCompanyRepo struct {
	rows        map[string]*model.Company
	memberships *fakeMembershipRepo
}

func newFakeCompanyRepo(memberships *fakeMembershipRepo) *fakeCompanyRepo {
	return &fakeCompanyRepo{rows: make(map[string]*model.Company), memberships: memberships}
}

func (f *fakeCompanyRepo) CreateWithOwner(company *model.Company) error {
	f.rows[company.CompanyId] = company
	f.memberships.put(company.OwnerUserId, company.CompanyId, model.RoleOwner)
	return nil
}

func (f *fakeCompanyRepo) GetByCompanyId(companyId string) (*model.Company, error) {
	c, ok := f.rows[companyId]
	if !ok {
		return &model.Company{}, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (f *fakeCompanyRepo) ListVisible(pageNum, pageSize int) ([]model.Company, int64, error) {
	var out []model.Company
	for _, c := range f.rows {
		if c.IsVisible == 1 {
			out = append(out, *c)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeCompanyRepo) ListAll() ([]model.Company, error) {
	var out []model.Company
	for _, c := range f.rows {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCompanyRepo) Update(companyId string, updates map[string]any) error {
	c, ok := f.rows[companyId]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := updates["name"]; ok {
		c.Name = v.(string)
	}
	if v, ok := updates["description"]; ok {
		c.Description = v.(string)
	}
	if v, ok := updates["is_visible"]; ok {
		c.IsVisible = v.(int)
	}
	return nil
}

func (f *fakeCompanyRepo) Delete(companyId string) error {
	delete(f.rows, companyId)
	return nil
}

type fakeInvitationRepo struct {
	rows        map[string]*model.Invitation
	memberships *fakeMembershipRepo
}

func newFakeInvitationRepo(memberships *fakeMembershipRepo) *fakeInvitationRepo {
	return &fakeInvitationRepo{rows: make(map[string]*model.Invitation), memberships: memberships}
}

func (f *fakeInvitationRepo) Create(invitation *model.Invitation) error {
	f.rows[invitation.InvitationId] = invitation
	return nil
}

func (f *fakeInvitationRepo) GetByInvitationId(invitationId string) (*model.Invitation, error) {
	inv, ok := f.rows[invitationId]
	if !ok {
		return &model.Invitation{}, gorm.ErrRecordNotFound
	}
	cp := *inv
	return &cp, nil
}

func (f *fakeInvitationRepo) ListByReceiver(receiverId string) ([]model.Invitation, error) {
	var out []model.Invitation
	for _, inv := range f.rows {
		if inv.ReceiverId == receiverId {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (f *fakeInvitationRepo) ListByCompany(companyId string) ([]model.Invitation, error) {
	var out []model.Invitation
	for _, inv := range f.rows {
		if inv.CompanyId == companyId {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (f *fakeInvitationRepo) HasPendingBetween(senderId, receiverId, companyId string) (bool, error) {
	for _, inv := range f.rows {
		if inv.SenderId == senderId && inv.ReceiverId == receiverId &&
			inv.CompanyId == companyId && inv.Status == model.InvitationStatusPending {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeInvitationRepo) AcceptTx(invitationId, joinerUserId, companyId string) (bool, error) {
	inv, ok := f.rows[invitationId]
	if !ok || inv.Status != model.InvitationStatusPending {
		return false, nil
	}
	inv.Status = model.InvitationStatusAccepted
	f.memberships.put(joinerUserId, companyId, model.RoleMember)
	return true, nil
}

func (f *fakeInvitationRepo) Decline(invitationId string) (bool, error) {
	inv, ok := f.rows[invitationId]
	if !ok || inv.Status != model.InvitationStatusPending {
		return false, nil
	}
	inv.Status = model.InvitationStatusDeclined
	return true, nil
}

func (f *fakeInvitationRepo) DeletePending(invitationId string) (bool, error) {
	inv, ok := f.rows[invitationId]
	if !ok || inv.Status != model.InvitationStatusPending {
		return false, nil
	}
	delete(f.rows, invitationId)
	return true, nil
}

type fakeQuizRepo struct {
	rows      map[string]*model.Quiz
	questions *fakeQuestionRepo
}

func newFakeQuizRepo(questions *fakeQuestionRepo) *fakeQuizRepo {
	return &fakeQuizRepo{rows: make(map[string]*model.Quiz), questions: questions}
}

func (f *fakeQuizRepo) CreateWithQuestions(quiz *model.Quiz, questionIds []string) error {
	f.rows[quiz.QuizId] = quiz
	for _, qid := range questionIds {
		if q, ok := f.questions.questions[qid]; ok {
			quizId := quiz.QuizId
			companyId := quiz.CompanyId
			q.QuizId = &quizId
			q.CompanyId = &companyId
		}
	}
	return nil
}

func (f *fakeQuizRepo) GetByQuizId(quizId string) (*model.Quiz, error) {
	q, ok := f.rows[quizId]
	if !ok {
		return &model.Quiz{}, gorm.ErrRecordNotFound
	}
	return q, nil
}

func (f *fakeQuizRepo) ListByCompany(companyId string) ([]model.Quiz, error) {
	var out []model.Quiz
	for _, q := range f.rows {
		if q.CompanyId == companyId {
			out = append(out, *q)
		}
	}
	return out, nil
}

func (f *fakeQuizRepo) Update(quizId string, updates map[string]any) error {
	q, ok := f.rows[quizId]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := updates["title"]; ok {
		q.Title = v.(string)
	}
	if v, ok := updates["description"]; ok {
		q.Description = v.(string)
	}
	return nil
}

func (f *fakeQuizRepo) Delete(quizId string) error {
	delete(f.rows, quizId)
	return nil
}

type fakeQuestionRepo struct {
	questions map[string]*model.Question
	answers   map[string]*model.Answer
}

func newFakeQuestionRepo() *fakeQuestionRepo {
	return &fakeQuestionRepo{
		questions: make(map[string]*model.Question),
		answers:   make(map[string]*model.Answer),
	}
}

func (f *fakeQuestionRepo) CreateWithAnswers(question *model.Question, answerIds []string) error {
	f.questions[question.QuestionId] = question
	for _, aid := range answerIds {
		if a, ok := f.answers[aid]; ok {
			qid := question.QuestionId
			a.QuestionId = &qid
		}
	}
	return nil
}

func (f *fakeQuestionRepo) GetByQuestionId(questionId string) (*model.Question, error) {
	q, ok := f.questions[questionId]
	if !ok {
		return &model.Question{}, gorm.ErrRecordNotFound
	}
	return q, nil
}

func (f *fakeQuestionRepo) ListByQuiz(quizId string) ([]model.Question, error) {
	var out []model.Question
	for _, q := range f.questions {
		if q.QuizId != nil && *q.QuizId == quizId {
			out = append(out, *q)
		}
	}
	return out, nil
}

func (f *fakeQuestionRepo) CreateAnswer(answer *model.Answer) error {
	f.answers[answer.AnswerId] = answer
	return nil
}

func (f *fakeQuestionRepo) GetAnswer(answerId string) (*model.Answer, error) {
	a, ok := f.answers[answerId]
	if !ok {
		return &model.Answer{}, gorm.ErrRecordNotFound
	}
	return a, nil
}

type fakeAnsweredRepo struct {
	rows      []model.AnsweredQuestion
	increment map[string]int // quizId -> frequency bumps
}

func newFakeAnsweredRepo() *fakeAnsweredRepo {
	return &fakeAnsweredRepo{increment: make(map[string]int)}
}

func (f *fakeAnsweredRepo) RecordBatch(rows []model.AnsweredQuestion, quizId string) error {
	f.rows = append(f.rows, rows...)
	f.increment[quizId]++
	return nil
}

func (f *fakeAnsweredRepo) ListAll() ([]model.AnsweredQuestion, error) {
	return f.rows, nil
}

func (f *fakeAnsweredRepo) ListByCompany(companyId string) ([]model.AnsweredQuestion, error) {
	var out []model.AnsweredQuestion
	for _, r := range f.rows {
		if r.CompanyId == companyId {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAnsweredRepo) ListByQuiz(quizId string) ([]model.AnsweredQuestion, error) {
	var out []model.AnsweredQuestion
	for _, r := range f.rows {
		if r.QuizId == quizId {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAnsweredRepo) ListByUser(userId string) ([]model.AnsweredQuestion, error) {
	var out []model.AnsweredQuestion
	for _, r := range f.rows {
		if r.UserId == userId {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAnsweredRepo) ListByDateRange(from, to time.Time) ([]model.AnsweredQuestion, error) {
	var out []model.AnsweredQuestion
	for _, r := range f.rows {
		if !r.CreatedAt.Before(from) && r.CreatedAt.Before(to) {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeCompletionRepo struct {
	records  map[string]*model.CompletionRecord // keyed by cache key
	expireAt map[string]time.Time
	lastTTL  time.Duration
	writes   int
	failing  bool
}

func newFakeCompletionRepo() *fakeCompletionRepo {
	return &fakeCompletionRepo{
		records:  make(map[string]*model.CompletionRecord),
		expireAt: make(map[string]time.Time),
	}
}

func (f *fakeCompletionRepo) Write(_ context.Context, record *model.CompletionRecord, ttl time.Duration) error {
	f.writes++
	f.lastTTL = ttl
	if f.failing {
		return context.DeadlineExceeded
	}
	key := model.CompletionKey(record.UserId, record.CompanyId, record.QuizId)
	f.records[key] = record
	f.expireAt[key] = time.Now().Add(ttl)
	return nil
}

func (f *fakeCompletionRepo) expired(key string) bool {
	return time.Now().After(f.expireAt[key])
}

func (f *fakeCompletionRepo) Get(_ context.Context, userId, companyId, quizId string) (*model.CompletionRecord, error) {
	key := model.CompletionKey(userId, companyId, quizId)
	r, ok := f.records[key]
	if !ok || f.expired(key) {
		return nil, repo.ErrCompletionNotFound
	}
	return r, nil
}

func (f *fakeCompletionRepo) ScanPattern(_ context.Context, pattern string) ([]model.CompletionRecord, error) {
	// 模式总是 CompletionPattern 形态，直接按前缀匹配
	prefix := pattern[:len(pattern)-1]
	var out []model.CompletionRecord
	for key, r := range f.records {
		if f.expired(key) {
			continue
		}
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			out = append(out, *r)
		}
	}
	return out, nil
}

type fakeNotificationRepo struct {
	rows []*model.Notification
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{}
}

func (f *fakeNotificationRepo) Create(notification *model.Notification) error {
	f.rows = append(f.rows, notification)
	return nil
}

func (f *fakeNotificationRepo) CreateBatch(notifications []model.Notification) error {
	for i := range notifications {
		n := notifications[i]
		f.rows = append(f.rows, &n)
	}
	return nil
}

func (f *fakeNotificationRepo) GetByNotificationId(notificationId string) (*model.Notification, error) {
	for _, n := range f.rows {
		if n.NotificationId == notificationId {
			return n, nil
		}
	}
	return &model.Notification{}, gorm.ErrRecordNotFound
}

func (f *fakeNotificationRepo) ListByReceiver(receiverId string) ([]model.Notification, error) {
	var out []model.Notification
	for _, n := range f.rows {
		if n.ReceiverId == receiverId {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) MarkRead(notificationId string) (int64, error) {
	for _, n := range f.rows {
		if n.NotificationId == notificationId && n.Status == model.NotificationStatusPending {
			n.Status = model.NotificationStatusRead
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeNotificationRepo) MarkAllRead(receiverId string) (int64, error) {
	var affected int64
	for _, n := range f.rows {
		if n.ReceiverId == receiverId && n.Status == model.NotificationStatusPending {
			n.Status = model.NotificationStatusRead
			affected++
		}
	}
	return affected, nil
}
