package goAuthClient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MrEthical07/goAuthClient/credstore"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := New().WithBaseURL(srv.URL).Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	t.Cleanup(client.Close)
	return client
}

// newOfflineClient builds a client whose requests always fail at the
// transport layer.
func newOfflineClient(t *testing.T) *Client {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	client, err := New().WithBaseURL(srv.URL).Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	t.Cleanup(client.Close)
	return client
}

func seedSession(t *testing.T, c *Client, sess credstore.Session) {
	t.Helper()
	if err := c.store.Set(context.Background(), sess); err != nil {
		t.Fatalf("seed session failed: %v", err)
	}
	c.userWatch.Set(sess.Username)
	c.roleWatch.Set(Role(sess.Role))
}

func respond(t *testing.T, w http.ResponseWriter, status int, resp AuthResponse) {
	t.Helper()
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		t.Errorf("encode response failed: %v", err)
	}
}
