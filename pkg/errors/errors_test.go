package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	wrapped := fmt.Errorf("resolve: %w", ErrUnknownClub)

	assert.Equal(t, CodeNotFound, CodeOf(wrapped))
	assert.Equal(t, CodePermissionDenied, CodeOf(ErrForbidden))
	assert.Equal(t, CodeUnknown, CodeOf(stderrors.New("plain")))
	assert.True(t, stderrors.Is(wrapped, ErrUnknownClub))
}

func TestHTTPStatus(t *testing.T) {
	cases := map[Code]int{
		CodeNotFound:         http.StatusNotFound,
		CodePermissionDenied: http.StatusForbidden,
		CodeInvalidArgument:  http.StatusBadRequest,
		CodeAlreadyExists:    http.StatusConflict,
		CodeInternal:         http.StatusInternalServerError,
		CodeUnknown:          http.StatusInternalServerError,
	}
	for code, want := range cases {
		assert.Equal(t, want, code.HTTPStatus(), code)
	}
}

func TestWrap_KeepsCause(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := Wrap(CodeInternal, "fetch freets", cause)

	assert.EqualError(t, err, "fetch freets: connection reset")
	assert.ErrorIs(t, err, cause)
}
