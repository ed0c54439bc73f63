package model

// User 用户表
type User struct {
	BaseModel
	UserId    string `gorm:"column:user_id;uniqueIndex" json:"userId"` // 用户唯一标识
	Username  string `gorm:"column:username" json:"username"`          // 用户名
	Nickname  string `gorm:"column:nickname" json:"nickname"`          // 昵称
	Password  string `gorm:"column:password" json:"-"`                 // bcrypt 哈希
	Email     string `gorm:"column:email" json:"email"`                // 邮箱
	Phone     string `gorm:"column:phone" json:"phone"`                // 电话
	Avatar    string `gorm:"column:avatar" json:"avatar"`              // 头像
	IsEnabled int    `gorm:"column:is_enabled" json:"isEnabled"`       // 是否启用: 0-禁用, 1-启用
}

func (User) TableName() string {
	return "t_user"
}

// Login 登录请求
type Login struct {
	Username string `json:"username"`
	Password string `json:"password"` // base64 编码的明文
}

// Register 注册请求
type Register struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// UserInfo 用户信息
type UserInfo struct {
	UserId   string `json:"userId"`
	Username string `json:"username"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// LoginResp 登录响应
type LoginResp struct {
	UserInfo UserInfo          `json:"userInfo"`
	Token    map[string]string `json:"token"`
}
