package httpclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

func TestErrorCode_String(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want string
	}{
		{ErrCodeTimeout, "timeout"},
		{ErrCodeConnection, "connection"},
		{ErrCodeDecode, "decode"},
		{ErrCodeValidation, "validation"},
		{ErrorCode(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("ErrorCode(%d).String() = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestError_Error(t *testing.T) {
	e := &Error{StatusCode: 500, Code: ErrCodeDecode, Message: "invalid character"}
	want := "httpclient: decode (HTTP 500): invalid character"
	if got := e.Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	e2 := &Error{Code: ErrCodeConnection, Message: "connection refused"}
	want2 := "httpclient: connection: connection refused"
	if got := e2.Error(); got != want2 {
		t.Errorf("got %q, want %q", got, want2)
	}
}

func TestError_Unwrap(t *testing.T) {
	inner := errors.New("dial tcp: connection refused")
	outer := NewConnectionError(inner)
	if !errors.Is(outer, inner) {
		t.Error("expected errors.Is to find the wrapped cause")
	}
}

func TestNewDecodeError(t *testing.T) {
	var v []int
	cause := json.Unmarshal([]byte(`{"not":"an array"}`), &v)
	if cause == nil {
		t.Fatal("expected unmarshal to fail")
	}

	err := NewDecodeError(200, []byte(`{"not":"an array"}`), cause)
	if err.StatusCode != 200 {
		t.Errorf("expected status 200, got %d", err.StatusCode)
	}
	if len(err.Body) == 0 {
		t.Error("expected body to be preserved")
	}
	if !IsDecode(err) {
		t.Errorf("expected decode error, got %v", err)
	}
	if IsTransport(err) {
		t.Errorf("decode error must not classify as transport: %v", err)
	}
}

func TestIsHelpers_Wrapped(t *testing.T) {
	err := fmt.Errorf("fetch posts: %w", NewTimeoutError(errors.New("deadline exceeded")))
	if !IsTimeout(err) {
		t.Error("IsTimeout should see through wrapping")
	}
	if !IsTransport(err) {
		t.Error("IsTransport should see through wrapping")
	}
}

func TestIsHelpers_NonClientError(t *testing.T) {
	err := errors.New("plain error")
	if IsTransport(err) || IsDecode(err) || IsTimeout(err) || IsConnection(err) {
		t.Error("plain errors must not classify")
	}
}
