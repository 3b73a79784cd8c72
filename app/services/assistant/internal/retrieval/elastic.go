package retrieval

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cloudwego/eino/components/embedding"
	"github.com/elastic/go-elasticsearch/v8"
)

const (
	defaultTopK  = 5
	defaultIndex = "menu-chunks"

	embeddingField = "embedding"
	chunkField     = "chunk"
)

// Embedder turns query text into a vector. The ark embedder satisfies it.
type Embedder interface {
	EmbedStrings(ctx context.Context, texts []string, opts ...embedding.Option) ([][]float64, error)
}

// Elastic retrieves menu chunks by kNN similarity over an index whose
// documents carry a chunk body and a dense_vector embedding.
type Elastic struct {
	client   *elasticsearch.Client
	embedder Embedder
	index    string
	topK     int
}

func NewElastic(client *elasticsearch.Client, embedder Embedder, index string, topK int) *Elastic {
	if strings.TrimSpace(index) == "" {
		index = defaultIndex
	}
	if topK <= 0 {
		topK = defaultTopK
	}
	return &Elastic{
		client:   client,
		embedder: embedder,
		index:    index,
		topK:     topK,
	}
}

// Search embeds the query and returns the chunk bodies of the top-k nearest
// documents. The ranking is left entirely to the index.
func (e *Elastic) Search(ctx context.Context, query string) ([]string, error) {
	if e.client == nil || e.embedder == nil {
		return nil, fmt.Errorf("retrieval backend not configured")
	}

	vectors, err := e.embedder.EmbedStrings(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	if len(vectors) == 0 || len(vectors[0]) == 0 {
		return nil, fmt.Errorf("empty query embedding")
	}

	body := map[string]any{
		"knn": map[string]any{
			"field":          embeddingField,
			"query_vector":   vectors[0],
			"k":              e.topK,
			"num_candidates": e.topK * 10,
		},
		"_source": []string{chunkField},
		"size":    e.topK,
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode search body: %w", err)
	}

	res, err := e.client.Search(
		e.client.Search.WithContext(ctx),
		e.client.Search.WithIndex(e.index),
		e.client.Search.WithBody(bytes.NewReader(payload)),
	)
	if err != nil {
		return nil, fmt.Errorf("es search call: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		resp, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("es search status %s: %s", res.Status(), strings.TrimSpace(string(resp)))
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source struct {
					Chunk string `json:"chunk"`
				} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	chunks := make([]string, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		if hit.Source.Chunk != "" {
			chunks = append(chunks, hit.Source.Chunk)
		}
	}
	return chunks, nil
}
