package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeMissingField, "test message: %s", "value")

	if err.Code != ErrCodeMissingField {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeMissingField)
	}

	if err.Message != "test message: value" {
		t.Errorf("Message = %v, want %v", err.Message, "test message: value")
	}

	expected := "MISSING_FIELD: test message: value"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("bad armor")
	err := Wrap(ErrCodeSigning, cause, "read signing key")

	if err.Code != ErrCodeSigning {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeSigning)
	}

	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}

	expected := "SIGNING: read signing key: bad armor"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{"matching code", New(ErrCodeMissingField, "test"), ErrCodeMissingField, true},
		{"non-matching code", New(ErrCodeMissingField, "test"), ErrCodeInvalidURL, false},
		{"wrapped error", Wrap(ErrCodeInternal, New(ErrCodeMissingField, "inner"), "outer"), ErrCodeInternal, true},
		{"non-Error type", errors.New("plain error"), ErrCodeMissingField, false},
		{"nil error", nil, ErrCodeMissingField, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeFinalized, "x")); got != ErrCodeFinalized {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeFinalized)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode() = %v, want empty", got)
	}
	if got := GetCode(nil); got != "" {
		t.Errorf("GetCode(nil) = %v, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidURL, "friendly message")); got != "friendly message" {
		t.Errorf("UserMessage() = %q, want %q", got, "friendly message")
	}
	if got := UserMessage(errors.New("plain error")); got != "plain error" {
		t.Errorf("UserMessage() = %q, want %q", got, "plain error")
	}

	nested := Wrap(ErrCodeNotFound, Wrap(ErrCodeSigning, errors.New("bad packet"), "read signing key"), "publication jvm")
	want := "publication jvm: read signing key: bad packet"
	if got := UserMessage(nested); got != want {
		t.Errorf("UserMessage() = %q, want %q", got, want)
	}
}

func TestFatal(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{New(ErrCodeMissingField, "x"), true},
		{New(ErrCodeInvalidURL, "x"), true},
		{New(ErrCodeInvalidConfig, "x"), true},
		{New(ErrCodeAlreadyExists, "x"), false},
		{New(ErrCodeSigning, "x"), false},
		{errors.New("plain"), false},
	}
	for _, tt := range tests {
		if got := Fatal(tt.err); got != tt.want {
			t.Errorf("Fatal(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeMissingField,
		ErrCodeInvalidInput,
		ErrCodeInvalidURL,
		ErrCodeInvalidConfig,
		ErrCodeAlreadyExists,
		ErrCodeFinalized,
		ErrCodeNotFound,
		ErrCodeSigning,
		ErrCodeInternal,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
