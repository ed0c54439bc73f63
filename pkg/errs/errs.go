// Copyright 2025 QuizHub Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package errs

import (
	stderrors "errors"

	"github.com/pkg/errors"
)

// Kind classifies a domain failure. The router layer maps kinds onto
// unified response codes; logic code only ever deals in kinds.
type Kind uint8

const (
	KindOther Kind = iota
	// KindNotFound 实体不存在或外键不匹配
	KindNotFound
	// KindUnauthorized 操作者缺少所需角色/所有权
	KindUnauthorized
	// KindInvalidState 目标状态不允许该操作（如已被处理的邀请）
	KindInvalidState
	// KindConflict 重复请求 / 已读通知
	KindConflict
	// KindValidation 创建时的数量边界校验失败
	KindValidation
)

type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string { return e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

// New creates a kind-tagged error with a stack trace.
func New(kind Kind, msg string) error {
	return &Error{Kind: kind, Err: errors.New(msg)}
}

// Newf creates a kind-tagged formatted error with a stack trace.
func Newf(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Err: errors.Errorf(format, args...)}
}

// Wrap annotates err with msg and tags it with kind.
func Wrap(kind Kind, err error, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: errors.Wrap(err, msg)}
}

// KindOf reports the kind of err, KindOther for untagged errors.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return KindOther
}

func IsNotFound(err error) bool     { return KindOf(err) == KindNotFound }
func IsUnauthorized(err error) bool { return KindOf(err) == KindUnauthorized }
func IsInvalidState(err error) bool { return KindOf(err) == KindInvalidState }
func IsConflict(err error) bool     { return KindOf(err) == KindConflict }
func IsValidation(err error) bool   { return KindOf(err) == KindValidation }
