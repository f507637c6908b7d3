package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies a fix flow failure. Each kind maps to one user-facing message.
type ErrorKind string

const (
	KindUser                ErrorKind = "user_error"
	KindUnsupportedLanguage ErrorKind = "unsupported_language"
	KindConfig              ErrorKind = "config_error"
	KindServiceUnavailable  ErrorKind = "service_unavailable"
	KindEndpointNotFound    ErrorKind = "endpoint_not_found"
	KindTimeout             ErrorKind = "timeout"
	KindInvalidResponse     ErrorKind = "invalid_response"
	KindStaleDocument       ErrorKind = "stale_document"
	KindUnknown             ErrorKind = "unknown"
)

// FixError is the single error type surfaced by the fix flow.
type FixError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *FixError) Error() string {
	if e.Err != nil && e.Message == "" {
		return e.Err.Error()
	}
	return e.Message
}

func (e *FixError) Unwrap() error { return e.Err }

// Is matches another *FixError of the same kind, so sentinels like
// ErrTimeout work with errors.Is.
func (e *FixError) Is(target error) bool {
	t, ok := target.(*FixError)
	return ok && t.Message == "" && t.Err == nil && t.Kind == e.Kind
}

// Kind sentinels for errors.Is.
var (
	ErrUser                = &FixError{Kind: KindUser}
	ErrUnsupportedLanguage = &FixError{Kind: KindUnsupportedLanguage}
	ErrConfig              = &FixError{Kind: KindConfig}
	ErrServiceUnavailable  = &FixError{Kind: KindServiceUnavailable}
	ErrEndpointNotFound    = &FixError{Kind: KindEndpointNotFound}
	ErrTimeout             = &FixError{Kind: KindTimeout}
	ErrInvalidResponse     = &FixError{Kind: KindInvalidResponse}
	ErrStaleDocument       = &FixError{Kind: KindStaleDocument}
	ErrUnknown             = &FixError{Kind: KindUnknown}
)

// KindOf returns the kind of err, or KindUnknown if err is not a *FixError.
func KindOf(err error) ErrorKind {
	var fe *FixError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindUnknown
}

func NewUserError(msg string) *FixError {
	return &FixError{Kind: KindUser, Message: msg}
}

func NewUnsupportedLanguageError(lang string) *FixError {
	return &FixError{
		Kind: KindUnsupportedLanguage,
		Message: fmt.Sprintf("language %q is not supported (supported: %s)",
			lang, strings.Join(SupportedLanguages, ", ")),
	}
}

func NewConfigError(msg string, err error) *FixError {
	return &FixError{Kind: KindConfig, Message: msg, Err: err}
}

// NewMissingEndpointError reports that no fix endpoint is configured at any layer.
func NewMissingEndpointError() *FixError {
	return NewConfigError("fix endpoint is not configured; set endpoint in .fixhook.yaml, FIXHOOK_ENDPOINT or --endpoint", nil)
}

func NewServiceUnavailableError(endpoint string, err error) *FixError {
	return &FixError{
		Kind:    KindServiceUnavailable,
		Message: fmt.Sprintf("cannot connect to fix service at %s; make sure it is running", endpoint),
		Err:     err,
	}
}

func NewEndpointNotFoundError(endpoint string) *FixError {
	return &FixError{
		Kind:    KindEndpointNotFound,
		Message: fmt.Sprintf("fix endpoint %s returned 404; check the configured endpoint URL", endpoint),
	}
}

func NewTimeoutError(timeoutMs int, err error) *FixError {
	return &FixError{
		Kind:    KindTimeout,
		Message: fmt.Sprintf("fix request timed out after %dms", timeoutMs),
		Err:     err,
	}
}

func NewInvalidResponseError(detail string, err error) *FixError {
	return &FixError{
		Kind:    KindInvalidResponse,
		Message: "invalid response from fix service: " + detail,
		Err:     err,
	}
}

func NewStaleDocumentError(path string) *FixError {
	return &FixError{
		Kind:    KindStaleDocument,
		Message: fmt.Sprintf("%s changed while the fix was pending; fix not applied", path),
	}
}

// NewUnknownError keeps the original message of err.
func NewUnknownError(err error) *FixError {
	return &FixError{Kind: KindUnknown, Err: err}
}
