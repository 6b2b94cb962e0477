package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	base := errors.New("connection refused")

	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "plain error is internal", err: base, want: KindInternal},
		{name: "not found", err: NotFoundf("tour %s not found", "t1"), want: KindNotFound},
		{name: "validation", err: Validationf("bad id"), want: KindValidation},
		{name: "wrapped by fmt", err: fmt.Errorf("loading: %w", NotFoundf("x")), want: KindNotFound},
		{name: "wrap keeps cause", err: Wrap(base, KindInternal, "load tour"), want: KindInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestErrorMessage(t *testing.T) {
	base := errors.New("boom")
	err := Wrap(base, KindInternal, "load tour")
	assert.Equal(t, "load tour: boom", err.Error())
	assert.ErrorIs(t, err, base)
	assert.Equal(t, "tour t1 not found", NotFoundf("tour %s not found", "t1").Error())
	assert.True(t, IsNotFound(NotFoundf("x")))
	assert.False(t, IsNotFound(nil))
}
