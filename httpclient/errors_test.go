package httpclient

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassifyStatusCode(t *testing.T) {
	tests := []struct {
		status int
		want   ErrorCode
		isNil  bool
	}{
		{200, 0, true},
		{204, 0, true},
		{401, ErrCodeAuth, false},
		{403, ErrCodeAuth, false},
		{404, ErrCodeValidation, false},
		{422, ErrCodeValidation, false},
		{500, ErrCodeServer, false},
		{502, ErrCodeServer, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("status_%d", tt.status), func(t *testing.T) {
			err := ClassifyStatusCode(tt.status, []byte("body"))
			if tt.isNil {
				if err != nil {
					t.Errorf("expected nil, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if err.Code != tt.want {
				t.Errorf("Code = %v, want %v", err.Code, tt.want)
			}
			if err.StatusCode != tt.status {
				t.Errorf("StatusCode = %d", err.StatusCode)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	inner := errors.New("dial tcp: refused")
	err := NewConnectionError(inner)
	if !errors.Is(err, inner) {
		t.Error("Unwrap should expose the underlying error")
	}
}

func TestError_String(t *testing.T) {
	err := ClassifyStatusCode(401, nil)
	if got := err.Error(); got != "httpclient: auth (HTTP 401): HTTP 401" {
		t.Errorf("Error() = %q", got)
	}

	cerr := NewConnectionError(errors.New("refused"))
	if got := cerr.Error(); got != "httpclient: connection: refused" {
		t.Errorf("Error() = %q", got)
	}
}

func TestErrorCodeString(t *testing.T) {
	codes := map[ErrorCode]string{
		ErrCodeTimeout:    "timeout",
		ErrCodeConnection: "connection",
		ErrCodeAuth:       "auth",
		ErrCodeValidation: "validation",
		ErrCodeServer:     "server",
	}
	for code, want := range codes {
		if code.String() != want {
			t.Errorf("%d.String() = %q, want %q", code, code.String(), want)
		}
	}
}

func TestIsHelpers(t *testing.T) {
	if !IsAuth(ClassifyStatusCode(403, nil)) {
		t.Error("IsAuth(403) = false")
	}
	if !IsServerError(ClassifyStatusCode(500, nil)) {
		t.Error("IsServerError(500) = false")
	}
	if IsAuth(errors.New("plain")) {
		t.Error("IsAuth(plain error) = true")
	}
	if !IsTimeout(NewTimeoutError(errors.New("deadline"))) {
		t.Error("IsTimeout = false")
	}
}
