package pomotodo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "with code",
			err:  &Error{StatusCode: 401, Code: "unauthorized", Message: "access token is invalid"},
			want: "pomotodo: access token is invalid (unauthorized)",
		},
		{
			name: "without code",
			err:  &Error{StatusCode: 502, Message: "Bad Gateway"},
			want: "pomotodo: Bad Gateway (status 502)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorPredicates(t *testing.T) {
	tests := []struct {
		name string
		err  error
		pred func(error) bool
		want bool
	}{
		{"unauthorized", &Error{StatusCode: 401}, IsUnauthorized, true},
		{"not unauthorized", &Error{StatusCode: 404}, IsUnauthorized, false},
		{"not found", &Error{StatusCode: 404}, IsNotFound, true},
		{"rate limited", &Error{StatusCode: 429}, IsRateLimited, true},
		{"server error 500", &Error{StatusCode: 500}, IsServerError, true},
		{"server error 503", &Error{StatusCode: 503}, IsServerError, true},
		{"client error is not server error", &Error{StatusCode: 404}, IsServerError, false},
		{"wrapped error", fmt.Errorf("get account failed: %w", &Error{StatusCode: 401}), IsUnauthorized, true},
		{"plain error", errors.New("boom"), IsNotFound, false},
		{"nil error", nil, IsNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pred(tt.err); got != tt.want {
				t.Errorf("predicate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseErrorResponseNonJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprint(w, "<html>upstream unavailable</html>")
	}))
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.Account(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if apiErr.StatusCode != http.StatusBadGateway {
		t.Errorf("expected status 502, got %d", apiErr.StatusCode)
	}
	if !strings.Contains(apiErr.Message, "upstream unavailable") {
		t.Errorf("expected raw body preserved, got %q", apiErr.Message)
	}
}

func TestParseErrorResponseEmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.Account(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if apiErr.Message != http.StatusText(http.StatusInternalServerError) {
		t.Errorf("expected status text fallback, got %q", apiErr.Message)
	}
}
