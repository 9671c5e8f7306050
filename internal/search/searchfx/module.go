package searchfx

import (
	"github.com/cearch/cearch/internal/embeddings"
	"github.com/cearch/cearch/internal/search"
	"github.com/cearch/cearch/internal/storage"
	"go.uber.org/fx"
)

// Params represents dependencies for search service
type Params struct {
	fx.In

	Embedder embeddings.Embedder
	VecStore storage.VectorStore `optional:"true"`
}

// NewSearchService creates a new search service instance
func NewSearchService(params Params) *search.Service {
	return &search.Service{
		Embedder: params.Embedder,
		Vector:   params.VecStore, // Can be nil
	}
}

// Module provides search components
var Module = fx.Module("search",
	fx.Provide(NewSearchService),
)
