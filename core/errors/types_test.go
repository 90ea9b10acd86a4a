package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "not found",
			err:  &NotFoundError{Resource: "news", ID: "1097"},
			want: "news not found: 1097",
		},
		{
			name: "validation",
			err:  &ValidationError{Field: "channel_id", Message: "channel id is required"},
			want: "validation error on field 'channel_id': channel id is required",
		},
		{
			name: "external api",
			err:  &ExternalAPIError{StatusCode: 503, Message: "service unavailable", API: "https://github.com/o/r/releases.atom"},
			want: "external API error from https://github.com/o/r/releases.atom: 503 - service unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsNotFound(t *testing.T) {
	notFound := &NotFoundError{Resource: "news", ID: "1097"}

	if !IsNotFound(notFound) {
		t.Error("IsNotFound should return true for NotFoundError")
	}
	if !IsNotFound(fmt.Errorf("lookup detail: %w", notFound)) {
		t.Error("IsNotFound should return true for wrapped NotFoundError")
	}
	if IsNotFound(errors.New("some other error")) {
		t.Error("IsNotFound should return false for non-NotFoundError")
	}
}

func TestIsValidation(t *testing.T) {
	if !IsValidation(&ValidationError{Field: "url", Message: "invalid URL"}) {
		t.Error("IsValidation should return true for ValidationError")
	}
	if IsValidation(errors.New("some other error")) {
		t.Error("IsValidation should return false for non-ValidationError")
	}
}

func TestIsExternalAPI(t *testing.T) {
	if !IsExternalAPI(&ExternalAPIError{StatusCode: 500, API: "feed"}) {
		t.Error("IsExternalAPI should return true for ExternalAPIError")
	}
	if IsExternalAPI(errors.New("some other error")) {
		t.Error("IsExternalAPI should return false for non-ExternalAPIError")
	}
}

func TestIsCacheMiss(t *testing.T) {
	if !IsCacheMiss(ErrCacheMiss) {
		t.Error("IsCacheMiss should return true for ErrCacheMiss")
	}
	if !IsCacheMiss(fmt.Errorf("get news:list: %w", ErrCacheMiss)) {
		t.Error("IsCacheMiss should return true for wrapped ErrCacheMiss")
	}
	if IsCacheMiss(errors.New("connection refused")) {
		t.Error("IsCacheMiss should return false for backend errors")
	}
}

func TestWrapError(t *testing.T) {
	wrapped := WrapError(&NotFoundError{Resource: "news", ID: "abc"}, "failed to load detail")
	if wrapped == nil {
		t.Fatal("WrapError should not return nil for non-nil error")
	}
	if wrapped.Error() != "failed to load detail: news not found: abc" {
		t.Errorf("WrapError message = %v", wrapped.Error())
	}
	if !IsNotFound(wrapped) {
		t.Error("Wrapped error should still be identifiable as NotFoundError")
	}

	if WrapError(nil, "this should not happen") != nil {
		t.Error("WrapError should return nil when wrapping nil error")
	}
}
