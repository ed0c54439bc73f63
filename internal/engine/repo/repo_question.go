package repo

import (
	"github.com/go-quizhub/quizhub/internal/engine/model"
	"github.com/go-quizhub/quizhub/pkg/database"
	"gorm.io/gorm"
)

type IQuestionRepository interface {
	CreateWithAnswers(question *model.Question, answerIds []string) error
	GetByQuestionId(questionId string) (*model.Question, error)
	ListByQuiz(quizId string) ([]model.Question, error)
	CreateAnswer(answer *model.Answer) error
	GetAnswer(answerId string) (*model.Answer, error)
}

type QuestionRepo struct {
	db database.IDatabase
}

func NewQuestionRepo(db database.IDatabase) IQuestionRepository {
	return &QuestionRepo{db: db}
}

// CreateWithAnswers 创建问题并在同一事务内把暂存答案挂到问题上
func (r *QuestionRepo) CreateWithAnswers(question *model.Question, answerIds []string) error {
	return r.db.Database().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(question).Error; err != nil {
			return err
		}
		return tx.Model(&model.Answer{}).
			Where("answer_id IN ?", answerIds).
			Update("question_id", question.QuestionId).Error
	})
}

// GetByQuestionId 查询问题
func (r *QuestionRepo) GetByQuestionId(questionId string) (*model.Question, error) {
	var question model.Question
	err := r.db.Database().Where("question_id = ?", questionId).First(&question).Error
	return &question, err
}

// ListByQuiz 列出测验下的问题
func (r *QuestionRepo) ListByQuiz(quizId string) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.Database().Where("quiz_id = ?", quizId).Find(&questions).Error
	return questions, err
}

// CreateAnswer 暂存答案
func (r *QuestionRepo) CreateAnswer(answer *model.Answer) error {
	return r.db.Database().Create(answer).Error
}

// GetAnswer 查询答案
func (r *QuestionRepo) GetAnswer(answerId string) (*model.Answer, error) {
	var answer model.Answer
	err := r.db.Database().Where("answer_id = ?", answerId).First(&answer).Error
	return &answer, err
}
