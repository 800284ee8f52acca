package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type codedError struct {
	code string
}

func (e *codedError) Error() string { return e.code }

func TestAsType(t *testing.T) {
	base := &codedError{code: "STORE_DOWN"}
	wrapped := Wrap(Wrapf(base, "query %s", "addresses"), "resolve")

	got, ok := AsType[*codedError](wrapped)
	assert.True(t, ok)
	assert.Same(t, base, got)

	_, ok = AsType[*codedError](New("plain"))
	assert.False(t, ok)
}

func TestIsThroughJoinAndStack(t *testing.T) {
	sentinel := New("not found")
	err := Join(New("other"), WithStack(sentinel))

	assert.True(t, Is(err, sentinel))
	assert.Contains(t, Errorf("id %d", 7).Error(), "id 7")
}
