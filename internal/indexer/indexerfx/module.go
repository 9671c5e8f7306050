package indexerfx

import (
	"github.com/cearch/cearch/internal/embeddings"
	"github.com/cearch/cearch/internal/indexer"
	"github.com/cearch/cearch/internal/indexer/pipeline"
	"github.com/cearch/cearch/internal/parser"
	"github.com/cearch/cearch/internal/storage"
	"go.uber.org/fx"
)

// Params represents dependencies for the indexer
type Params struct {
	fx.In

	Parser   parser.Parser
	Embedder embeddings.Embedder
	VecStore storage.VectorStore
}

// NewIndexer creates the indexing pipeline
func NewIndexer(params Params) indexer.Indexer {
	return pipeline.New(params.Parser, params.Embedder, params.VecStore, pipeline.Options{})
}

// Module provides the indexer
var Module = fx.Module("indexer",
	fx.Provide(NewIndexer),
)
