// ShowTimeNow - Movie Ticketing and Personalized Content Platform
// Copyright 2026 ShowTimeNow contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/showtimenow/showtimenow

package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/showtimenow/showtimenow/internal/config"
)

func testConfig(baseURL string) *config.ContentstackConfig {
	return &config.ContentstackConfig{
		BaseURL:       baseURL,
		APIKey:        "blt-test-key",
		DeliveryToken: "cs-test-token",
		Environment:   "production",
		Timeout:       5 * time.Second,
	}
}

func TestFetchEntry_Unconfigured(t *testing.T) {
	client := NewHTTPClient(&config.ContentstackConfig{BaseURL: "https://cdn.example"})

	entry, err := client.FetchEntry(context.Background(), "movies_types", "blt1", nil)
	if err != nil {
		t.Errorf("unconfigured client must not error, got %v", err)
	}
	if entry != nil {
		t.Errorf("unconfigured client must return nil entry, got %+v", entry)
	}
}

func TestFetchEntry_DecodesEntry(t *testing.T) {
	var gotVariant, gotAPIKey, gotToken string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotVariant = r.Header.Get("x-cs-variant-uid")
		gotAPIKey = r.Header.Get("api_key")
		gotToken = r.Header.Get("access_token")

		if r.URL.Path != "/v3/content_types/movies_types/entries/blt1" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"entry": {
			"uid": "blt1",
			"movies_blocks": [
				{"movie_1": {"movie_name": "Pokemon", "movie_description": "animation family fun", "star_rating": {"value": 4.1}}}
			]
		}}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(testConfig(srv.URL))

	entry, err := client.FetchEntry(context.Background(), "movies_types", "blt1", &FetchOptions{VariantID: "csa80c"})
	if err != nil {
		t.Fatalf("FetchEntry error: %v", err)
	}
	if entry == nil {
		t.Fatal("expected entry, got nil")
	}

	if gotVariant != "csa80c" {
		t.Errorf("variant header = %q, want csa80c", gotVariant)
	}
	if gotAPIKey != "blt-test-key" || gotToken != "cs-test-token" {
		t.Errorf("credential headers = %q/%q", gotAPIKey, gotToken)
	}

	movies := entry.Movies()
	if len(movies) != 1 || movies[0].Title != "Pokemon" {
		t.Errorf("decoded movies = %+v", movies)
	}
}

func TestFetchEntry_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewHTTPClient(testConfig(srv.URL))

	entry, err := client.FetchEntry(context.Background(), "movies_types", "missing", nil)
	if err != nil {
		t.Errorf("404 should map to nil entry without error, got %v", err)
	}
	if entry != nil {
		t.Errorf("expected nil entry for 404, got %+v", entry)
	}
}

func TestFetchEntry_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewHTTPClient(testConfig(srv.URL))

	entry, err := client.FetchEntry(context.Background(), "movies_types", "blt1", nil)
	if err == nil {
		t.Error("expected error for 500 response")
	}
	if entry != nil {
		t.Errorf("expected nil entry on error, got %+v", entry)
	}
}

func TestFetchEntry_IncludeRefs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		refs := r.URL.Query()["include[]"]
		if len(refs) != 2 {
			t.Errorf("include[] = %v, want 2 refs", refs)
		}
		_, _ = w.Write([]byte(`{"entry": {"uid": "blt1"}}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(testConfig(srv.URL))

	_, err := client.FetchEntry(context.Background(), "movies_types", "blt1", &FetchOptions{
		IncludeRefs: []string{"movies_blocks.movie_1", "main_block.theatre_1"},
	})
	if err != nil {
		t.Fatalf("FetchEntry error: %v", err)
	}
}

func TestBreakerClient_PassesThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"entry": {"uid": "blt1"}}`))
	}))
	defer srv.Close()

	client := NewBreakerClient(NewHTTPClient(testConfig(srv.URL)))

	entry, err := client.FetchEntry(context.Background(), "movies_types", "blt1", nil)
	if err != nil {
		t.Fatalf("FetchEntry error: %v", err)
	}
	if entry == nil || entry.UID != "blt1" {
		t.Errorf("entry = %+v, want uid blt1", entry)
	}
}

func TestClassifyFetchError(t *testing.T) {
	tests := []struct {
		msg  string
		want string
	}{
		{"request failed: context deadline exceeded", "timeout"},
		{"request failed: connection refused", "connection"},
		{"unexpected status 500: boom", "http_status"},
		{"failed to decode entry: EOF", "decode"},
		{"something else", "unknown"},
	}

	for _, tt := range tests {
		if got := classifyFetchError(errString(tt.msg)); got != tt.want {
			t.Errorf("classifyFetchError(%q) = %q, want %q", tt.msg, got, tt.want)
		}
	}
}

type errString string

func (e errString) Error() string { return string(e) }
