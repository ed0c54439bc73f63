package repo

import (
	"github.com/go-quizhub/quizhub/internal/engine/model"
	"github.com/go-quizhub/quizhub/pkg/database"
	"gorm.io/gorm"
)

type IQuizRepository interface {
	CreateWithQuestions(quiz *model.Quiz, questionIds []string) error
	GetByQuizId(quizId string) (*model.Quiz, error)
	ListByCompany(companyId string) ([]model.Quiz, error)
	Update(quizId string, updates map[string]any) error
	Delete(quizId string) error
}

type QuizRepo struct {
	db database.IDatabase
}

func NewQuizRepo(db database.IDatabase) IQuizRepository {
	return &QuizRepo{db: db}
}

// CreateWithQuestions 创建测验并在同一事务内把暂存问题挂到测验上
func (r *QuizRepo) CreateWithQuestions(quiz *model.Quiz, questionIds []string) error {
	return r.db.Database().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(quiz).Error; err != nil {
			return err
		}
		return tx.Model(&model.Question{}).
			Where("question_id IN ?", questionIds).
			Updates(map[string]any{"quiz_id": quiz.QuizId, "company_id": quiz.CompanyId}).Error
	})
}

// GetByQuizId 查询测验
func (r *QuizRepo) GetByQuizId(quizId string) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.db.Database().Where("quiz_id = ?", quizId).First(&quiz).Error
	return &quiz, err
}

// ListByCompany 列出公司下的测验
func (r *QuizRepo) ListByCompany(companyId string) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.db.Database().Where("company_id = ?", companyId).Find(&quizzes).Error
	return quizzes, err
}

// Update 更新测验字段
func (r *QuizRepo) Update(quizId string, updates map[string]any) error {
	return r.db.Database().Model(&model.Quiz{}).
		Where("quiz_id = ?", quizId).
		Updates(updates).Error
}

// Delete 删除测验，问题与答案由外键级联清理
func (r *QuizRepo) Delete(quizId string) error {
	return r.db.Database().Where("quiz_id = ?", quizId).Delete(&model.Quiz{}).Error
}
