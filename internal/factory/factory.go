package factory

import (
	"fmt"
	"path/filepath"

	"github.com/cearch/cearch/internal/constants"
	"github.com/cearch/cearch/internal/embeddings"
	"github.com/cearch/cearch/internal/indexer/pipeline"
	"github.com/cearch/cearch/internal/parser"
	"github.com/cearch/cearch/internal/parser/tsparser"
	"github.com/cearch/cearch/internal/search"
	"github.com/cearch/cearch/internal/storage"
	"github.com/cearch/cearch/internal/storage/sqlite"
	"github.com/cearch/cearch/internal/storage/sqlvec"
)

// ComponentConfig holds configuration for creating components outside the
// fx graph (query command, MCP handlers).
type ComponentConfig struct {
	RepoRoot        string
	EmbedURL        string
	VectorDimension int
	ReadOnly        bool
}

func (c ComponentConfig) DBPath() string {
	return filepath.Join(c.RepoRoot, constants.IndexDirName, constants.IndexFileName)
}

// Components holds all the main components
type Components struct {
	Parser   parser.Parser
	Embedder embeddings.Embedder
	VecStore storage.VectorStore
	Searcher *search.Service
}

// ComponentFactory creates and manages component instances
type ComponentFactory struct {
	config ComponentConfig
}

// NewComponentFactory creates a new component factory
func NewComponentFactory(config ComponentConfig) *ComponentFactory {
	if config.EmbedURL == "" {
		config.EmbedURL = constants.DefaultEmbedURL
	}
	return &ComponentFactory{config: config}
}

// CreateComponents creates all components with the given configuration
func (f *ComponentFactory) CreateComponents() (*Components, error) {
	if f.config.RepoRoot == "" {
		return nil, fmt.Errorf("repository root must be specified")
	}

	vecStore, err := f.CreateVectorStore()
	if err != nil {
		return nil, fmt.Errorf("create vector store failed: %w", err)
	}

	embedder := f.CreateEmbedder()

	return &Components{
		Parser:   tsparser.New(),
		Embedder: embedder,
		VecStore: vecStore,
		Searcher: &search.Service{Embedder: embedder, Vector: vecStore},
	}, nil
}

// CreateEmbedder creates an embedder instance
func (f *ComponentFactory) CreateEmbedder() embeddings.Embedder {
	return embeddings.NewApi(f.config.EmbedURL)
}

// CreateVectorStore creates a vector store instance
func (f *ComponentFactory) CreateVectorStore() (storage.VectorStore, error) {
	if f.config.ReadOnly {
		return sqlvec.OpenRead(f.config.DBPath())
	}
	return sqlvec.Open(f.config.DBPath(), f.config.VectorDimension)
}

// CreateSymbolStore opens the exact-name lookup side of an existing index
func (f *ComponentFactory) CreateSymbolStore() (storage.SymbolStore, error) {
	return sqlite.Open(f.config.DBPath())
}

// CreateIndexer creates an indexer instance with the given components
func (f *ComponentFactory) CreateIndexer(components *Components) *pipeline.Indexer {
	return pipeline.New(
		components.Parser,
		components.Embedder,
		components.VecStore,
		pipeline.Options{},
	)
}

// Cleanup releases resources held by components
func (c *Components) Cleanup() error {
	if c.VecStore != nil {
		if err := c.VecStore.Close(); err != nil {
			return fmt.Errorf("close vector store failed: %w", err)
		}
	}
	return nil
}
