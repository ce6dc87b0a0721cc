package errors

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKinds(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind Kind
		msg  string
	}{
		{"already exists", NewAlreadyExists("a.txt"), AlreadyExists, "already exists: a.txt"},
		{"invalid name", NewInvalidName(".."), InvalidName, "invalid name: .."},
		{"cancelled", NewCancelled(), Cancelled, "cancelled"},
		{"not found", NewNotFound("/tmp/gone"), NotFound, "not found: /tmp/gone"},
		{"wrapped", Wrap(os.ErrPermission, "/root"), Unknown, "error: /root: permission denied"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, KindOf(tt.err))
			assert.Equal(t, tt.msg, tt.err.Error())
		})
	}
}

func TestClassifyThroughWrapping(t *testing.T) {
	err := fmt.Errorf("paste: %w", NewAlreadyExists("a.txt"))

	assert.True(t, IsAlreadyExists(err))
	assert.False(t, IsInvalidName(err))
	assert.False(t, IsCancelled(err))
	assert.False(t, IsNotFound(err))

	var e *Error
	if assert.True(t, As(err, &e)) {
		assert.Equal(t, "a.txt", e.Subject())
	}
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "x"))
	assert.Equal(t, Unknown, KindOf(nil))
}

func TestWrapUnwraps(t *testing.T) {
	err := Wrap(os.ErrNotExist, "/missing")
	assert.True(t, Is(err, os.ErrNotExist))
}
