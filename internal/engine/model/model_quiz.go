package model

// Quiz 测验表
type Quiz struct {
	BaseModel
	QuizId      string `gorm:"column:quiz_id;uniqueIndex" json:"quizId"` // 测验唯一标识
	Title       string `gorm:"column:title" json:"title"`                // 标题
	Description string `gorm:"column:description" json:"description"`   // 描述
	Frequency   int    `gorm:"column:frequency" json:"frequency"`        // 完成次数计数
	CompanyId   string `gorm:"column:company_id;index" json:"companyId"` // 公司ID

	// 测验删除时级联删除问题
	Questions []Question `gorm:"foreignKey:QuizId;references:QuizId;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

func (Quiz) TableName() string {
	return "t_quiz"
}

// CreateQuizReq request for creating quiz.
// QuestionIds 引用已暂存的问题，数量必须 >= 2。
type CreateQuizReq struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	CompanyId   string   `json:"companyId"`
	QuestionIds []string `json:"questionIds"`
}

// UpdateQuizReq request for updating quiz
type UpdateQuizReq struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

// SubmitQuizReq request for submitting quiz answers.
// Answers maps questionId -> chosen answerId.
type SubmitQuizReq struct {
	Answers map[string]string `json:"answers"`
}
