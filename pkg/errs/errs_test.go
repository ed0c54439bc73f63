package errs

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"not found", New(KindNotFound, "quiz not found"), KindNotFound},
		{"unauthorized", New(KindUnauthorized, "no permission"), KindUnauthorized},
		{"wrapped keeps kind", fmt.Errorf("outer: %w", New(KindConflict, "dup")), KindConflict},
		{"untagged", fmt.Errorf("plain"), KindOther},
		{"rewrap overrides", Wrap(KindInvalidState, New(KindNotFound, "x"), "ctx"), KindInvalidState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(KindNotFound, nil, "ignored"))
}

func TestPredicates(t *testing.T) {
	err := Newf(KindValidation, "question must have between %d and %d answers", 2, 4)
	assert.True(t, IsValidation(err))
	assert.False(t, IsNotFound(err))
	assert.Equal(t, "question must have between 2 and 4 answers", err.Error())
}
