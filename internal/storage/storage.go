package storage

import (
	"errors"

	"github.com/cearch/cearch/internal/models"
)

// ErrNotFound is returned when opening or querying a repository that has no index.
var ErrNotFound = errors.New("index not found")

// ErrDimensionMismatch is returned when an embedding's length differs from
// the dimension the index was created with.
var ErrDimensionMismatch = errors.New("embedding dimension mismatch")

// VectorStore persists symbol metadata jointly with its embedding and serves
// nearest-neighbor lookups. Insert is the pipeline's atomic unit: the
// metadata row and the vector row become visible together or not at all.
type VectorStore interface {
	Insert(sym models.Symbol, embedding []float32) error
	KNN(embedding []float32, k int) ([]models.QueryResult, error)
	Close() error
}

// SymbolStore serves exact symbol-name lookups over the indexed metadata.
type SymbolStore interface {
	FindByName(name string) ([]models.Symbol, error)
	Close() error
}
