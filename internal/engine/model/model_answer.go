package model

// Answer 答案表。question_id 为空表示答案已暂存但尚未挂到问题上。
type Answer struct {
	BaseModel
	AnswerId   string  `gorm:"column:answer_id;uniqueIndex" json:"answerId"` // 答案唯一标识
	Text       string  `gorm:"column:text" json:"text"`                      // 答案内容
	IsCorrect  bool    `gorm:"column:is_correct" json:"isCorrect"`           // 是否正确答案
	QuestionId *string `gorm:"column:question_id;index" json:"questionId"`   // 问题ID，可空
	CompanyId  string  `gorm:"column:company_id;index" json:"companyId"`     // 公司ID
}

func (Answer) TableName() string {
	return "t_answer"
}

// CreateAnswerReq request for creating (staging) an answer
type CreateAnswerReq struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
	CompanyId string `json:"companyId"`
}
