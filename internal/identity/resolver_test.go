package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestServer(t *testing.T) (*httptest.Server, *Client) {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/profiles/7/authorized", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("address") == "0xowner" {
			w.Write([]byte(`{"authorized": true}`))
			return
		}
		w.Write([]byte(`{"authorized": false}`))
	})
	mux.HandleFunc("/profiles/7/address", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"address": "acct_123"}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, NewClient(srv.URL, 2*time.Second)
}

func TestIsOwnerOrDelegate(t *testing.T) {
	_, client := newTestServer(t)

	ok, err := client.IsOwnerOrDelegate(context.Background(), 7, "0xowner")
	if err != nil {
		t.Fatalf("IsOwnerOrDelegate returned error: %v", err)
	}
	if !ok {
		t.Error("expected 0xowner to be authorized")
	}

	ok, err = client.IsOwnerOrDelegate(context.Background(), 7, "0xstranger")
	if err != nil {
		t.Fatalf("IsOwnerOrDelegate returned error: %v", err)
	}
	if ok {
		t.Error("expected 0xstranger to be unauthorized")
	}
}

func TestResolveAddress(t *testing.T) {
	_, client := newTestServer(t)

	addr, err := client.ResolveAddress(context.Background(), 7)
	if err != nil {
		t.Fatalf("ResolveAddress returned error: %v", err)
	}
	if addr != "acct_123" {
		t.Errorf("address = %q, want acct_123", addr)
	}
}

func TestResolveAddressErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "profile not found", http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)
	client := NewClient(srv.URL, 2*time.Second)

	if _, err := client.ResolveAddress(context.Background(), 404); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}
