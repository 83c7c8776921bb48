package app_error

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	base := errors.New("boom")
	assert.Equal(t, http.StatusInternalServerError, Status(base))

	withStatus := New(base, http.StatusBadRequest)
	assert.Equal(t, http.StatusBadRequest, Status(withStatus))
	assert.ErrorIs(t, withStatus, base)

	wrapped := fmt.Errorf("handler: %w", withStatus)
	assert.Equal(t, http.StatusBadRequest, Status(wrapped))
	assert.Equal(t, "handler: boom", wrapped.Error())
}
