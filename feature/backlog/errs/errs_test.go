package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"backlog-manager/feature/backlog/errs"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	t.Run("Direct", func(t *testing.T) {
		err := errs.New(errs.KindTransport, errs.StageFetch, errors.New("connection refused"))
		assert.Equal(t, errs.KindTransport, errs.KindOf(err))
		assert.True(t, errs.IsKind(err, errs.KindTransport))
		assert.False(t, errs.IsKind(err, errs.KindParse))
	})

	t.Run("Wrapped", func(t *testing.T) {
		inner := errs.New(errs.KindNotFound, errs.StageResolve, errors.New("no such game"))
		outer := fmt.Errorf("resolving game: %w", inner)
		assert.Equal(t, errs.KindNotFound, errs.KindOf(outer))
	})

	t.Run("Plain", func(t *testing.T) {
		assert.Equal(t, errs.Kind(""), errs.KindOf(errors.New("plain")))
		assert.Equal(t, errs.Kind(""), errs.KindOf(nil))
	})
}

func TestWithUser(t *testing.T) {
	t.Run("AnnotatesStructured", func(t *testing.T) {
		err := errs.New(errs.KindTransport, errs.StageFetch, errors.New("timeout"))
		annotated := errs.WithUser(err, 7)

		var e *errs.Error
		assert.True(t, errors.As(annotated, &e))
		assert.Equal(t, uint(7), e.UserID)
		assert.Contains(t, annotated.Error(), "user 7")
	})

	t.Run("WrapsPlain", func(t *testing.T) {
		annotated := errs.WithUser(errors.New("broken"), 3)

		var e *errs.Error
		assert.True(t, errors.As(annotated, &e))
		assert.Equal(t, errs.KindStorage, e.Kind)
		assert.Equal(t, uint(3), e.UserID)
	})

	t.Run("Nil", func(t *testing.T) {
		assert.NoError(t, errs.WithUser(nil, 1))
	})
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := errs.New(errs.KindParse, errs.StageFetch, cause)
	assert.ErrorIs(t, err, cause)
}
