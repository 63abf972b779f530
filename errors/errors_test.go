package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestAppError_New_Success(t *testing.T) {
	err := New(ErrCodeEmptySequence, "nothing here")
	if err.Code != ErrCodeEmptySequence {
		t.Errorf("expected code %s, got %s", ErrCodeEmptySequence, err.Code)
	}
	if err.Message != "nothing here" {
		t.Errorf("expected message 'nothing here', got %q", err.Message)
	}
	if err.Contract {
		t.Error("EMPTY_SEQUENCE should not be a contract error")
	}
}

func TestAppError_New_Contract(t *testing.T) {
	err := New(ErrCodeAlreadyBuilt, "built")
	if !err.Contract {
		t.Error("ALREADY_BUILT should be a contract error")
	}
}

func TestAppError_EmptySequence_Success(t *testing.T) {
	err := EmptySequence("Max")
	if err.Code != ErrCodeEmptySequence {
		t.Errorf("expected EMPTY_SEQUENCE, got %s", err.Code)
	}
	if err.Details["operation"] != "Max" {
		t.Errorf("expected operation=Max, got %v", err.Details["operation"])
	}
	if !strings.Contains(err.Error(), "Max called on an empty sequence") {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestAppError_AlreadyBuilt_Success(t *testing.T) {
	err := AlreadyBuilt("append")
	if err.Code != ErrCodeAlreadyBuilt {
		t.Errorf("expected ALREADY_BUILT, got %s", err.Code)
	}
	if !err.Contract {
		t.Error("AlreadyBuilt should be a contract error")
	}
	if !strings.Contains(err.Message, "already built") {
		t.Errorf("expected 'already built' in message, got %q", err.Message)
	}
}

func TestAppError_TypeMismatch_Success(t *testing.T) {
	err := TypeMismatch("int", "x")
	if err.Details["got"] != "string" {
		t.Errorf("expected got=string, got %v", err.Details["got"])
	}
	if err.Message != "expected int, got string" {
		t.Errorf("unexpected message %q", err.Message)
	}
}

func TestAppError_NotFound_EmptyID(t *testing.T) {
	err := NotFound("key", "")
	if _, ok := err.Details["id"]; ok {
		t.Error("expected no id detail for empty id")
	}
}

func TestAppError_InvalidJSON_Cause(t *testing.T) {
	cause := fmt.Errorf("unexpected end of input")
	err := InvalidJSON(cause)
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
	if !strings.Contains(err.Error(), "cause: unexpected end of input") {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestAppError_WithDetails_Merge(t *testing.T) {
	err := OutOfRange(5, 3)
	err.WithDetails(map[string]any{"extra": true, "index": 6})
	if err.Details["extra"] != true {
		t.Error("expected merged detail 'extra'")
	}
	if err.Details["index"] != 6 {
		t.Errorf("expected index overwritten to 6, got %v", err.Details["index"])
	}
	if err.Details["length"] != 3 {
		t.Errorf("expected length=3 kept, got %v", err.Details["length"])
	}
}

func TestAppError_WithDetail_NilMap(t *testing.T) {
	err := &AppError{Code: ErrCodeInternal}
	err.WithDetail("k", "v")
	if err.Details["k"] != "v" {
		t.Error("expected detail to be set on nil map")
	}
}

func TestAppError_Is_MatchesCode(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", EmptySequence("Min"))
	if !stderrors.Is(wrapped, New(ErrCodeEmptySequence, "")) {
		t.Error("expected errors.Is to match by code through wrapping")
	}
	if stderrors.Is(wrapped, New(ErrCodeAlreadyBuilt, "")) {
		t.Error("expected no match for a different code")
	}
}

func TestCodeOf_Table(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"nil", nil, ""},
		{"plain", stderrors.New("boom"), ""},
		{"direct", AlreadyBuilt("build"), ErrCodeAlreadyBuilt},
		{"wrapped", fmt.Errorf("ctx: %w", InvalidInput("step", "zero")), ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %q, want %q", got, tt.want)
			}
			if tt.want != "" && !IsCode(tt.err, tt.want) {
				t.Errorf("IsCode(%q) = false", tt.want)
			}
		})
	}
}

func TestAppError_AsAppError_Success(t *testing.T) {
	wrapped := fmt.Errorf("wrap: %w", Internal(nil))
	appErr, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("expected AsAppError to succeed")
	}
	if appErr.Code != ErrCodeInternal {
		t.Errorf("expected INTERNAL_ERROR, got %s", appErr.Code)
	}
	if _, ok := AsAppError(stderrors.New("plain")); ok {
		t.Error("expected AsAppError to fail on plain error")
	}
	if IsAppError(stderrors.New("plain")) {
		t.Error("plain error is not an AppError")
	}
}

func TestAppError_ImplementsErrorInterface(t *testing.T) {
	var _ error = (*AppError)(nil)
	var err error = Validation("bad")
	if err.Error() != "INVALID_INPUT: bad" {
		t.Errorf("unexpected Error() %q", err.Error())
	}
}
