package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type echoResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func TestDoAttachesBearerAndRequestID(t *testing.T) {
	var gotAuth, gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		_ = json.NewEncoder(w).Encode(echoResponse{Success: true})
	}))
	defer srv.Close()

	c := New(srv.Client(), srv.URL)
	var out echoResponse
	if err := c.Do(context.Background(), http.MethodPost, "/api/auth/logout", nil, "tok-123", struct{}{}, &out); err != nil {
		t.Fatalf("do failed: %v", err)
	}

	if gotAuth != "Bearer tok-123" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
	if gotRequestID == "" {
		t.Fatal("expected a request id header")
	}
}

func TestDoOmitsAuthorizationWithoutToken(t *testing.T) {
	var hadHeader bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hadHeader = r.Header["Authorization"]
		_ = json.NewEncoder(w).Encode(echoResponse{Success: true})
	}))
	defer srv.Close()

	c := New(srv.Client(), srv.URL)
	if err := c.Do(context.Background(), http.MethodPost, "/api/auth/login", nil, "", struct{}{}, nil); err != nil {
		t.Fatalf("do failed: %v", err)
	}
	if hadHeader {
		t.Fatal("authorization header must be omitted entirely, not sent empty")
	}
}

func TestDoMapsErrorStatusWithBodyMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(echoResponse{Success: false, Message: "Username already exists"})
	}))
	defer srv.Close()

	c := New(srv.Client(), srv.URL)
	err := c.Do(context.Background(), http.MethodPost, "/api/admin/users", nil, "tok", struct{}{}, nil)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", apiErr.StatusCode)
	}
	if apiErr.Message != "Username already exists" {
		t.Fatalf("expected body message to surface verbatim, got %q", apiErr.Message)
	}
}

func TestDoMapsErrorStatusWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New(srv.Client(), srv.URL)
	err := c.Do(context.Background(), http.MethodPut, "/api/admin/users/role", nil, "tok", struct{}{}, nil)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized || apiErr.Message != "" {
		t.Fatalf("expected bare 401 fault, got %+v", apiErr)
	}
}

func TestDoTransportErrorIsNotAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // refuse connections

	c := New(http.DefaultClient, srv.URL)
	err := c.Do(context.Background(), http.MethodPost, "/api/auth/login", nil, "", struct{}{}, nil)
	if err == nil {
		t.Fatal("expected a transport error")
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Fatalf("transport failure must not carry a status, got %+v", apiErr)
	}
}

func TestDoSendsQueryParameters(t *testing.T) {
	var gotToken string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.URL.Query().Get("token")
		_ = json.NewEncoder(w).Encode(echoResponse{Success: true})
	}))
	defer srv.Close()

	c := New(srv.Client(), srv.URL)
	query := map[string][]string{"token": {"verify-me"}}
	if err := c.Do(context.Background(), http.MethodPost, "/api/auth/verify-email", query, "", nil, nil); err != nil {
		t.Fatalf("do failed: %v", err)
	}
	if gotToken != "verify-me" {
		t.Fatalf("expected query token, got %q", gotToken)
	}
}
