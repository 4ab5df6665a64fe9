// internal/adapters/out/http/metadata_client_test.go
package httpout

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchDisplay(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"Mintomatic Collection","image":"https://cdn.example/c.png","description":"x"}`))
	}))
	defer srv.Close()

	c := NewMetadataClient()
	display, err := c.FetchDisplay(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("FetchDisplay: %v", err)
	}
	if display.Name != "Mintomatic Collection" {
		t.Errorf("name = %q", display.Name)
	}
	if display.ImageURL != "https://cdn.example/c.png" {
		t.Errorf("image = %q", display.ImageURL)
	}
}

func TestFetchDisplayNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := NewMetadataClient()
	if _, err := c.FetchDisplay(context.Background(), srv.URL); err == nil {
		t.Fatal("expected error on 404")
	}
}

func TestFetchDisplayBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	c := NewMetadataClient()
	if _, err := c.FetchDisplay(context.Background(), srv.URL); err == nil {
		t.Fatal("expected error on non-json body")
	}
}

func TestFetchDocumentEmptyURI(t *testing.T) {
	c := NewMetadataClient()
	if _, err := c.FetchDocument(context.Background(), "  "); err == nil {
		t.Fatal("expected error on empty uri")
	}
}
