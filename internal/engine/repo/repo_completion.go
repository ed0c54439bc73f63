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

package repo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-quizhub/quizhub/internal/engine/model"
	"github.com/go-quizhub/quizhub/pkg/cache"
	"github.com/redis/go-redis/v9"
)

type ICompletionCacheRepository interface {
	Write(ctx context.Context, record *model.CompletionRecord, ttl time.Duration) error
	Get(ctx context.Context, userId, companyId, quizId string) (*model.CompletionRecord, error)
	ScanPattern(ctx context.Context, pattern string) ([]model.CompletionRecord, error)
}

// ErrCompletionNotFound 缓存中无完成记录（或已过期）
var ErrCompletionNotFound = errors.New("completion record not found")

type CompletionCacheRepo struct {
	cache cache.ICache
}

func NewCompletionCacheRepo(cache cache.ICache) ICompletionCacheRepository {
	return &CompletionCacheRepo{cache: cache}
}

// Write 以绝对过期时间写入完成记录文档
func (r *CompletionCacheRepo) Write(ctx context.Context, record *model.CompletionRecord, ttl time.Duration) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return err
	}
	key := model.CompletionKey(record.UserId, record.CompanyId, record.QuizId)
	return r.cache.Set(ctx, key, string(payload), ttl).Err()
}

// Get 读取单个完成记录，过期或不存在返回 ErrCompletionNotFound
func (r *CompletionCacheRepo) Get(ctx context.Context, userId, companyId, quizId string) (*model.CompletionRecord, error) {
	key := model.CompletionKey(userId, companyId, quizId)
	payload, err := r.cache.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCompletionNotFound
	}
	if err != nil {
		return nil, err
	}

	var record model.CompletionRecord
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// ScanPattern 按模式匹配读取完成记录（提醒流水线、近期结果导出）。
// SCAN 游标走满整圈，单键读失败跳过（可能恰好过期）。
func (r *CompletionCacheRepo) ScanPattern(ctx context.Context, pattern string) ([]model.CompletionRecord, error) {
	var (
		records []model.CompletionRecord
		cursor  uint64
	)

	for {
		keys, next, err := r.cache.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return nil, err
		}

		for _, key := range keys {
			payload, err := r.cache.Get(ctx, key).Result()
			if err != nil {
				continue
			}
			var record model.CompletionRecord
			if err := json.Unmarshal([]byte(payload), &record); err != nil {
				continue
			}
			records = append(records, record)
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}

	return records, nil
}
