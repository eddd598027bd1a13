package pomotodo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		opts    []ClientOption
		wantErr string
	}{
		{
			name:    "missing token",
			token:   "",
			wantErr: "access token is required",
		},
		{
			name:  "token only",
			token: "abc123",
		},
		{
			name:  "all options",
			token: "abc123",
			opts: []ClientOption{
				WithBaseURL("http://localhost:9999/1"),
				WithTimeout(5 * time.Second),
				WithUserAgent("test-agent"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.token, tt.opts...)
			if tt.wantErr != "" {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.wantErr)
					return
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("expected error containing %q, got %q", tt.wantErr, err.Error())
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if client == nil {
				t.Error("expected non-nil client")
			}
		})
	}
}

func TestAccount(t *testing.T) {
	registered := time.Date(2016, 3, 10, 8, 0, 0, 0, time.UTC)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/account" {
			t.Errorf("expected path /account, got %s", r.URL.Path)
		}
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "token test-token" {
			t.Errorf("expected Authorization 'token test-token', got %q", got)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Account{
			Username:       "kam",
			Email:          "kam@example.com",
			Timezone:       "Asia/Shanghai",
			RegisterTime:   registered,
			ProExpiresTime: registered.AddDate(1, 0, 0),
		})
	}))
	defer server.Close()

	client := newTestClient(t, server)
	account, err := client.Account(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if account.Username != "kam" {
		t.Errorf("expected username kam, got %s", account.Username)
	}
	if account.Email != "kam@example.com" {
		t.Errorf("expected email kam@example.com, got %s", account.Email)
	}
	if !account.RegisterTime.Equal(registered) {
		t.Errorf("expected register time %v, got %v", registered, account.RegisterTime)
	}
}

func TestAccountUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(apiError{
			Code:        "unauthorized",
			Description: "access token is invalid",
		})
	}))
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.Account(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	if !IsUnauthorized(err) {
		t.Errorf("expected IsUnauthorized to be true for %v", err)
	}
}

func TestUserAgentHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != "custom-agent/1.0" {
			t.Errorf("expected User-Agent custom-agent/1.0, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Account{})
	}))
	defer server.Close()

	client, err := NewClient("test-token",
		WithBaseURL(server.URL),
		WithHTTPClient(server.Client()),
		WithUserAgent("custom-agent/1.0"),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := client.Account(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// newTestClient creates a client pointed at the given test server.
func newTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()

	client, err := NewClient("test-token",
		WithBaseURL(server.URL),
		WithHTTPClient(server.Client()),
	)
	if err != nil {
		t.Fatalf("failed to create test client: %v", err)
	}

	return client
}
