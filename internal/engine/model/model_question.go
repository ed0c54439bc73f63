package model

// Question 问题表。quiz_id 为空表示问题已暂存但尚未挂到测验上。
type Question struct {
	BaseModel
	QuestionId string  `gorm:"column:question_id;uniqueIndex" json:"questionId"` // 问题唯一标识
	Title      string  `gorm:"column:title" json:"title"`                        // 题干
	QuizId     *string `gorm:"column:quiz_id;index" json:"quizId"`               // 测验ID，可空
	CompanyId  *string `gorm:"column:company_id;index" json:"companyId"`         // 公司ID，可空

	// 问题删除时级联删除答案
	Answers []Answer `gorm:"foreignKey:QuestionId;references:QuestionId;constraint:OnDelete:CASCADE" json:"answers,omitempty"`
}

func (Question) TableName() string {
	return "t_question"
}

// 问题答案数量边界，创建时在持久化之前校验
const (
	MinAnswersPerQuestion = 2
	MaxAnswersPerQuestion = 4
)

// MinQuestionsPerQuiz 每个测验最少问题数
const MinQuestionsPerQuiz = 2

// CreateQuestionReq request for creating question.
// AnswerIds 引用已暂存的答案，数量必须在 [2,4]。
type CreateQuestionReq struct {
	Title     string   `json:"title"`
	CompanyId string   `json:"companyId"`
	AnswerIds []string `json:"answerIds"`
}
