package http

import "github.com/go-quizhub/quizhub/pkg/errs"

var (
	Failed = failed(500, "request failed")

	Unauthorized = failed(4001, "unauthorized")
	TokenBeEmpty = failed(4003, "Token is empty")
	InvalidToken = failed(4004, "Token is invalid")
	TokenExpired = failed(4005, "Token has expired")

	InValidRefreshToken = failed(4006, "refresh token is invalid")

	RequestParameterParsingFailed = failed(4007, "request parameter parsing failed")

	NotFound         = failed(4040, "resource not found")
	Conflict         = failed(4090, "resource conflict")
	ValidationFailed = failed(4220, "validation failed")

	UserNotExist          = failed(10001, "user does not exist")
	UserIncorrectPassword = failed(10002, "incorrect password")

	CompanyIdIsEmpty      = failed(20001, "companyId is empty")
	InvitationIdIsEmpty   = failed(20002, "invitationId is empty")
	QuizIdIsEmpty         = failed(20003, "quizId is empty")
	QuestionIdIsEmpty     = failed(20004, "questionId is empty")
	NotificationIdIsEmpty = failed(20005, "notificationId is empty")
	UserIdIsEmpty         = failed(20006, "userId is empty")

	InternalError = failed(500, "internal error, please contact the administrator")
)

var (
	Success = success(200, "success")
)

// failed 构造函数
func failed(code int, msg string) *Response {
	return &Response{
		Code: code,
		Msg:  msg,
	}
}

// success 构造函数
func success(code int, msg string) *Response {
	return &Response{
		Code: code,
		Msg:  msg,
	}
}

// FromErr maps a domain error kind onto a unified response.
// KindInvalidState deliberately shares the unauthorized code pair:
// resolved invitations answer like a permission failure on the wire.
func FromErr(err error) *Response {
	switch errs.KindOf(err) {
	case errs.KindNotFound:
		return NotFound
	case errs.KindUnauthorized, errs.KindInvalidState:
		return Unauthorized
	case errs.KindConflict:
		return Conflict
	case errs.KindValidation:
		return ValidationFailed
	default:
		return Failed
	}
}
