package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fixhook/fixhook/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("fix failed: %w", domain.NewTimeoutError(500, nil))
	assert.Equal(t, domain.KindTimeout, domain.KindOf(wrapped))
	assert.Equal(t, domain.KindUnknown, domain.KindOf(errors.New("boom")))
}

func TestFixError_IsMatchesKindOnly(t *testing.T) {
	err := domain.NewEndpointNotFoundError("http://localhost/fix")
	assert.ErrorIs(t, err, domain.ErrEndpointNotFound)
	assert.NotErrorIs(t, err, domain.ErrServiceUnavailable)
}

func TestFixError_Messages(t *testing.T) {
	assert.Contains(t, domain.NewServiceUnavailableError("http://127.0.0.1:9/fix", nil).Error(), "http://127.0.0.1:9/fix")
	assert.Contains(t, domain.NewTimeoutError(1500, nil).Error(), "1500ms")
	assert.Contains(t, domain.NewEndpointNotFoundError("http://h/fix").Error(), "http://h/fix")

	msg := domain.NewUnsupportedLanguageError("rust").Error()
	assert.Contains(t, msg, "rust")
	assert.Contains(t, msg, "javascript, typescript, python")
}

func TestFixError_UnknownKeepsOriginalMessage(t *testing.T) {
	orig := errors.New("webhook returned status 500 Internal Server Error")
	err := domain.NewUnknownError(orig)
	assert.Equal(t, orig.Error(), err.Error())
	assert.ErrorIs(t, err, orig)
}
