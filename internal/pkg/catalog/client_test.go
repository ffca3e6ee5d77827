/*
Copyright 2025 The StreamSpace contributors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchImages(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("unexpected method %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"images": [
				{"name": "linuxserver/heimdall", "description": "dashboard", "category": "Network & DNS"},
				{"name": "linuxserver/firefox", "description": "browser", "category": "Web Browser"}
			]
		}`))
	}))
	defer srv.Close()

	entries, err := NewClientWithURL(srv.URL).FetchImages(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Name != "linuxserver/heimdall" {
		t.Errorf("unexpected first entry %+v", entries[0])
	}
}

func TestFetchImagesErrors(t *testing.T) {
	t.Parallel()

	t.Run("server error status", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		if _, err := NewClientWithURL(srv.URL).FetchImages(context.Background()); err == nil {
			t.Fatal("expected an error on non-200 status")
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"images": [`))
		}))
		defer srv.Close()

		if _, err := NewClientWithURL(srv.URL).FetchImages(context.Background()); err == nil {
			t.Fatal("expected a parse error")
		}
	})

	t.Run("unreachable endpoint", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		if _, err := NewClientWithURL(srv.URL).FetchImages(context.Background()); err == nil {
			t.Fatal("expected a network error")
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, err := NewClientWithURL(srv.URL).FetchImages(ctx); err == nil {
			t.Fatal("expected a context error")
		}
	})
}
