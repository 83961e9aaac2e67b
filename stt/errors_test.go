package stt

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindString(t *testing.T) {
	kinds := map[Kind]string{
		KindNetwork:     "network",
		KindAuth:        "auth_error",
		KindServer:      "server_error",
		KindBadResponse: "bad_response",
	}
	for k, want := range kinds {
		if k.String() != want {
			t.Errorf("%d.String() = %q, want %q", k, k.String(), want)
		}
	}
}

func TestError_Format(t *testing.T) {
	err := NewAuthError(401, "invalid key")
	if got := err.Error(); got != "stt: auth_error (HTTP 401): invalid key" {
		t.Errorf("Error() = %q", got)
	}

	nerr := NewNetworkError(errors.New("dial tcp: refused"))
	if got := nerr.Error(); got != "stt: network: dial tcp: refused" {
		t.Errorf("Error() = %q", got)
	}
}

func TestError_Unwrap(t *testing.T) {
	inner := errors.New("deadline exceeded")
	err := NewNetworkError(inner)
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to expose the cause")
	}
}

func TestIsHelpers(t *testing.T) {
	tests := []struct {
		err  error
		fn   func(error) bool
		want bool
	}{
		{NewNetworkError(errors.New("x")), IsNetwork, true},
		{NewAuthError(403, ""), IsAuth, true},
		{NewServerError(500, ""), IsServer, true},
		{NewBadResponseError(""), IsBadResponse, true},
		{errors.New("plain"), IsNetwork, false},
		{NewAuthError(401, ""), IsServer, false},
	}
	for i, tt := range tests {
		if got := tt.fn(tt.err); got != tt.want {
			t.Errorf("case %d: got %v, want %v", i, got, tt.want)
		}
	}
}

func TestIsHelpers_Wrapped(t *testing.T) {
	err := fmt.Errorf("transcribe: %w", NewAuthError(401, "nope"))
	if !IsAuth(err) {
		t.Error("IsAuth should see through wrapping")
	}
}
