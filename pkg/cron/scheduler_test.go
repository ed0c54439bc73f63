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

package cron

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddFuncBeforeInit(t *testing.T) {
	// Init 之前全局实例不可用
	if Get() != nil {
		t.Skip("global cron already initialized by another test")
	}
	err := AddFunc("* * * * *", func() {})
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestInitAndAddFunc(t *testing.T) {
	Init()
	assert.NotNil(t, Get())

	assert.NoError(t, AddFunc("0 9 * * *", func() {}, "daily-job"))

	// 非法表达式
	assert.Error(t, AddFunc("not a spec", func() {}))

	Start()
	Stop()
}
