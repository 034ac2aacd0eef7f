package errutils

import (
	"testing"

	"emperror.dev/errors"
	"github.com/stretchr/testify/assert"
)

type codeError struct{ code int }

func (e *codeError) Error() string { return "code" }

func TestAs(t *testing.T) {
	wrapped := errors.Wrap(&codeError{code: 7}, "outer")
	got, ok := As[*codeError](wrapped)
	assert.True(t, ok)
	assert.Equal(t, 7, got.code)

	_, ok = As[*codeError](errors.New("plain"))
	assert.False(t, ok)

	_, ok = As[*codeError](nil)
	assert.False(t, ok)
}
