package logic

import (
	"encoding/base64"

	"github.com/go-quizhub/quizhub/internal/engine/model"
	"github.com/go-quizhub/quizhub/internal/engine/repo"
	"github.com/go-quizhub/quizhub/pkg/ctx"
	"github.com/go-quizhub/quizhub/pkg/errs"
	httpx "github.com/go-quizhub/quizhub/pkg/http"
	"github.com/go-quizhub/quizhub/pkg/http/auth/jwt"
	"github.com/go-quizhub/quizhub/pkg/id"
	"github.com/go-quizhub/quizhub/pkg/log"
	"golang.org/x/crypto/bcrypt"
)

/**
 * @file: logic_user.go
 * @description: user login / register / session logic
 */

type UserLogic struct {
	ctx      *ctx.Context
	userRepo repo.IUserRepository
}

func NewUserLogic(ctx *ctx.Context, userRepo repo.IUserRepository) *UserLogic {
	return &UserLogic{
		ctx:      ctx,
		userRepo: userRepo,
	}
}

func (ul *UserLogic) Login(login *model.Login, auth httpx.Auth) (*model.LoginResp, error) {
	pwd, err := base64.StdEncoding.DecodeString(login.Password)
	if err != nil {
		log.Errorf("failed to decode password: %v", err)
		return nil, errs.New(errs.KindValidation, httpx.UserIncorrectPassword.Msg)
	}

	// 尝试通过用户名和密码登录
	user, err := ul.userRepo.GetByUsername(login.Username)
	if err != nil {
		log.Errorf("login failed for user %s: %v", login.Username, err)
		return nil, errs.New(errs.KindNotFound, httpx.UserNotExist.Msg)
	}

	// 比较存储的密码哈希与提供的密码
	if !comparePassword(user.Password, string(pwd)) {
		return nil, errs.New(errs.KindUnauthorized, httpx.UserIncorrectPassword.Msg)
	}

	aToken, rToken, err := jwt.GenToken(user.UserId, []byte(auth.SecretKey), auth.AccessExpire, auth.RefreshExpire)
	if err != nil {
		log.Errorf("failed to generate tokens: %v", err)
		return nil, err
	}

	// 访问令牌写入 Redis，授权中间件以键存在性校验会话
	if err := ul.userRepo.SetToken(auth.RedisKeyPrefix+user.UserId, aToken, auth.AccessExpire); err != nil {
		log.Errorf("failed to set token in redis: %v", err)
		return nil, err
	}

	return &model.LoginResp{
		UserInfo: model.UserInfo{
			UserId:   user.UserId,
			Username: user.Username,
			Nickname: user.Nickname,
			Avatar:   user.Avatar,
			Email:    user.Email,
			Phone:    user.Phone,
		},
		Token: map[string]string{
			"accessToken":  aToken,
			"refreshToken": rToken,
		},
	}, nil
}

func (ul *UserLogic) Register(register *model.Register) error {
	password, err := hashPassword(register.Password)
	if err != nil {
		return err
	}

	user := &model.User{
		UserId:    id.GetUUIDWithoutDashes(),
		Username:  register.Username,
		Nickname:  register.Username,
		Password:  string(password),
		Email:     register.Email,
		IsEnabled: 1,
	}
	return ul.userRepo.Create(user)
}

func (ul *UserLogic) Refresh(userId, rToken string, auth *httpx.Auth) (map[string]string, error) {
	token, err := jwt.RefreshToken(auth, userId, rToken)
	if err != nil {
		return nil, err
	}

	if err := ul.userRepo.SetToken(auth.RedisKeyPrefix+userId, token["accessToken"], auth.AccessExpire); err != nil {
		log.Errorf("failed to set token in redis: %v", err)
		return token, err
	}
	return token, nil
}

func (ul *UserLogic) Logout(keyPrefix, userId string) error {
	key := keyPrefix + userId

	result, err := ul.userRepo.GetToken(key)
	if err != nil || result == "" {
		return errs.New(errs.KindUnauthorized, httpx.TokenBeEmpty.Msg)
	}

	if err = ul.userRepo.DelToken(key); err != nil {
		log.Errorf("failed to logout: %v", err)
		return err
	}
	return nil
}

func (ul *UserLogic) GetUserById(userId string) (*model.User, error) {
	user, err := ul.userRepo.GetByUserId(userId)
	if err != nil {
		return nil, errs.Wrap(errs.KindNotFound, err, "user not found")
	}
	return user, nil
}

func hashPassword(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}

func comparePassword(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
