package configfx

import (
	"os"
	"path/filepath"

	"github.com/cearch/cearch/internal/constants"
	"github.com/cearch/cearch/internal/gitrepo"
	"go.uber.org/fx"
)

// Config holds the application configuration
type Config struct {
	RepoRoot        string
	EmbedURL        string
	VectorDimension int  // 0 = pinned at first insert
	ReadOnly        bool // open the existing index instead of creating one
}

// IndexDir is the per-repository state directory.
func (c *Config) IndexDir() string {
	return filepath.Join(c.RepoRoot, constants.IndexDirName)
}

// DBPath is the index database file inside IndexDir.
func (c *Config) DBPath() string {
	return filepath.Join(c.IndexDir(), constants.IndexFileName)
}

// ModelCacheDir is the embedding model cache inside IndexDir.
func (c *Config) ModelCacheDir() string {
	return filepath.Join(c.IndexDir(), constants.ModelCacheDirName)
}

// Params represents the parameters needed to create configuration
type Params struct {
	fx.In

	RepoRoot string `name:"repoRoot" optional:"true"`
	EmbedURL string `name:"embedURL" optional:"true"`
	ReadOnly bool   `name:"readOnly" optional:"true"`
}

// NewConfig creates a new configuration with defaults. An empty repo root is
// resolved from the working directory; not being inside a git repository is a
// setup error and aborts the invocation.
func NewConfig(params Params) (*Config, error) {
	config := &Config{
		RepoRoot:        params.RepoRoot,
		EmbedURL:        params.EmbedURL,
		VectorDimension: 0, // Will be inferred
		ReadOnly:        params.ReadOnly,
	}

	// Set defaults
	if config.EmbedURL == "" {
		config.EmbedURL = constants.DefaultEmbedURL
	}
	if config.RepoRoot == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		root, err := gitrepo.FindRoot(cwd)
		if err != nil {
			return nil, err
		}
		config.RepoRoot = root
	}

	return config, nil
}

// Module provides configuration for the application
var Module = fx.Module("config",
	fx.Provide(NewConfig),
)
