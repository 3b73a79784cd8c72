package es

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/elastic/go-elasticsearch/v8"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *elasticsearch.Client {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	client, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func TestEnsureMenuIndexCreatesMissingIndex(t *testing.T) {
	var createBody []byte
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodHead && r.URL.Path == "/menu-chunks":
			w.WriteHeader(http.StatusNotFound)
		case r.Method == http.MethodPut && r.URL.Path == "/menu-chunks":
			createBody, _ = io.ReadAll(r.Body)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"acknowledged":true}`))
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusBadRequest)
		}
	})

	info, err := EnsureMenuIndex(context.Background(), client, MenuIndexParams{
		IndexName:     "menu-chunks",
		EmbeddingDims: 2048,
	})
	if err != nil {
		t.Fatalf("ensure index: %v", err)
	}
	if !info.SupportsVector {
		t.Fatal("expected vector support for freshly created index")
	}

	var definition struct {
		Mappings struct {
			Properties map[string]map[string]any `json:"properties"`
		} `json:"mappings"`
	}
	if err := json.Unmarshal(createBody, &definition); err != nil {
		t.Fatalf("decode create body: %v", err)
	}

	embedding, ok := definition.Mappings.Properties["embedding"]
	if !ok {
		t.Fatal("expected embedding mapping in index definition")
	}
	if embedding["type"] != "dense_vector" {
		t.Errorf("embedding type = %v, want dense_vector", embedding["type"])
	}
	if dims, ok := embedding["dims"].(float64); !ok || int(dims) != 2048 {
		t.Errorf("embedding dims = %v, want 2048", embedding["dims"])
	}
	if _, ok := definition.Mappings.Properties["chunk"]; !ok {
		t.Error("expected chunk mapping in index definition")
	}
	if _, ok := definition.Mappings.Properties["section"]; !ok {
		t.Error("expected section mapping in index definition")
	}
}

func TestEnsureMenuIndexAcceptsCompatibleMapping(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodHead && r.URL.Path == "/menu-chunks":
			w.WriteHeader(http.StatusOK)
		case r.Method == http.MethodGet && strings.HasSuffix(r.URL.Path, "/_mapping"):
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"menu-chunks":{"mappings":{"properties":{"embedding":{"type":"dense_vector","dims":2048,"similarity":"cosine"}}}}}`))
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusBadRequest)
		}
	})

	info, err := EnsureMenuIndex(context.Background(), client, MenuIndexParams{
		IndexName:     "menu-chunks",
		EmbeddingDims: 2048,
	})
	if err != nil {
		t.Fatalf("ensure index: %v", err)
	}
	if !info.SupportsVector {
		t.Fatal("expected existing compatible index to support vectors")
	}
}

func TestEnsureMenuIndexRejectsIncompatibleMapping(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodHead && r.URL.Path == "/menu-chunks":
			w.WriteHeader(http.StatusOK)
		case r.Method == http.MethodGet && strings.HasSuffix(r.URL.Path, "/_mapping"):
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"menu-chunks":{"mappings":{"properties":{"embedding":{"type":"text"}}}}}`))
		default:
			w.WriteHeader(http.StatusBadRequest)
		}
	})

	_, err := EnsureMenuIndex(context.Background(), client, MenuIndexParams{
		IndexName:     "menu-chunks",
		EmbeddingDims: 2048,
	})
	if !errors.Is(err, ErrIncompatibleEmbeddingMapping) {
		t.Fatalf("err = %v, want ErrIncompatibleEmbeddingMapping", err)
	}
}

func TestEnsureMenuIndexValidatesInput(t *testing.T) {
	if _, err := EnsureMenuIndex(context.Background(), nil, MenuIndexParams{IndexName: "x", EmbeddingDims: 8}); err == nil {
		t.Error("expected error for nil client")
	}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	if _, err := EnsureMenuIndex(context.Background(), client, MenuIndexParams{IndexName: "", EmbeddingDims: 8}); err == nil {
		t.Error("expected error for empty index name")
	}
	if _, err := EnsureMenuIndex(context.Background(), client, MenuIndexParams{IndexName: "x", EmbeddingDims: 0}); err == nil {
		t.Error("expected error for invalid embedding dimension")
	}
}
