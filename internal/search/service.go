package search

import (
	"context"
	"fmt"

	"github.com/cearch/cearch/internal/embeddings"
	"github.com/cearch/cearch/internal/models"
	"github.com/cearch/cearch/internal/storage"
)

// Service embeds a query string and issues a kNN lookup against the store.
type Service struct {
	Embedder embeddings.Embedder
	Vector   storage.VectorStore
}

// Search returns up to topK results in ascending-distance order. Path
// relativization and formatting are the caller's concern.
func (s *Service) Search(
	ctx context.Context,
	query string,
	topK int,
) ([]models.QueryResult, error) {
	qvec, err := s.Embedder.EmbedQuery(query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	if len(qvec) == 0 {
		// should not happen for non-empty input, but must be checked
		return nil, fmt.Errorf("embedding service returned an empty vector")
	}
	return s.Vector.KNN(qvec, topK)
}
