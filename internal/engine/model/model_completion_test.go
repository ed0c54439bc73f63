package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCompletionKey(t *testing.T) {
	key := CompletionKey("u1", "c1", "quiz1")
	assert.Equal(t, "answered_quiz_u1_c1_quiz1", key)

	pattern := CompletionPattern("u1", "c1")
	assert.Equal(t, "answered_quiz_u1_c1_*", pattern)
}

func TestCompletionRecordFreshAt(t *testing.T) {
	now := time.Now()
	cutoff := now.Add(-24 * time.Hour)

	tests := []struct {
		name   string
		record CompletionRecord
		want   bool
	}{
		{
			name:   "no answers",
			record: CompletionRecord{},
			want:   false,
		},
		{
			name: "all answers stale",
			record: CompletionRecord{Answers: []CompletionAnswer{
				{CreatedAt: now.Add(-30 * time.Hour)},
				{CreatedAt: now.Add(-25 * time.Hour)},
			}},
			want: false,
		},
		{
			name: "one answer inside the window",
			record: CompletionRecord{Answers: []CompletionAnswer{
				{CreatedAt: now.Add(-30 * time.Hour)},
				{CreatedAt: now.Add(-1 * time.Hour)},
			}},
			want: true,
		},
		{
			name: "answer exactly at the cutoff",
			record: CompletionRecord{Answers: []CompletionAnswer{
				{CreatedAt: cutoff},
			}},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.record.FreshAt(cutoff))
		})
	}
}
