package http

import (
	"github.com/gofiber/fiber/v2"
)

type ResponseErr struct {
	Code   int    `json:"code"`
	Msg    string `json:"msg"`
	ErrMsg any    `json:"err,omitempty"`
	Path   string `json:"path,omitempty"`
}

// WithRepErr 返回错误信息和路径
func WithRepErr(c *fiber.Ctx, code int, errMsg string, path string) error {
	return c.JSON(ResponseErr{
		Code:   code,
		Msg:    Failed.Msg,
		ErrMsg: errMsg,
		Path:   path,
	})
}

// WithRepErrMsg 只返回code, msg和路径
func WithRepErrMsg(c *fiber.Ctx, code int, msg string, path string) error {
	return c.JSON(ResponseErr{
		Code: code,
		Msg:  msg,
		Path: path,
	})
}
