package repo

import (
	"context"
	"time"

	"github.com/go-quizhub/quizhub/internal/engine/model"
	"github.com/go-quizhub/quizhub/pkg/cache"
	"github.com/go-quizhub/quizhub/pkg/database"
)

type IUserRepository interface {
	GetByUsername(username string) (*model.User, error)
	GetByUserId(userId string) (*model.User, error)
	Create(user *model.User) error
	SetToken(key, token string, expire time.Duration) error
	GetToken(key string) (string, error)
	DelToken(key string) error
}

type UserRepo struct {
	db    database.IDatabase
	cache cache.ICache
}

func NewUserRepo(db database.IDatabase, cache cache.ICache) IUserRepository {
	return &UserRepo{db: db, cache: cache}
}

// GetByUsername 按用户名查询用户
func (r *UserRepo) GetByUsername(username string) (*model.User, error) {
	var user model.User
	err := r.db.Database().Where("username = ?", username).First(&user).Error
	return &user, err
}

// GetByUserId 按用户ID查询用户
func (r *UserRepo) GetByUserId(userId string) (*model.User, error) {
	var user model.User
	err := r.db.Database().Where("user_id = ?", userId).First(&user).Error
	return &user, err
}

// Create 创建用户
func (r *UserRepo) Create(user *model.User) error {
	return r.db.Database().Create(user).Error
}

// SetToken 会话令牌写入 Redis
func (r *UserRepo) SetToken(key, token string, expire time.Duration) error {
	return r.cache.Set(context.Background(), key, token, expire).Err()
}

// GetToken 读取会话令牌
func (r *UserRepo) GetToken(key string) (string, error) {
	return r.cache.Get(context.Background(), key).Result()
}

// DelToken 删除会话令牌
func (r *UserRepo) DelToken(key string) error {
	return r.cache.Del(context.Background(), key).Err()
}
