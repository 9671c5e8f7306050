package cmdsfx

import (
	"context"
	"fmt"

	"github.com/cearch/cearch/internal/config/configfx"
	"github.com/cearch/cearch/internal/embeddings"
	"github.com/cearch/cearch/internal/indexer"
	"github.com/cearch/cearch/internal/search"
	"github.com/cearch/cearch/internal/storage"
	"github.com/cearch/cearch/internal/util"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/fx"
)

// CommandRunner provides methods to run different application commands
type CommandRunner struct {
	config        *configfx.Config
	embedder      embeddings.Embedder
	searchService *search.Service
	indexer       indexer.Indexer
	vecStore      storage.VectorStore
	mcpServer     *server.MCPServer
}

// Params represents dependencies for command runner
type Params struct {
	fx.In

	Config        *configfx.Config
	Embedder      embeddings.Embedder
	SearchService *search.Service     `optional:"true"`
	Indexer       indexer.Indexer     `optional:"true"`
	VecStore      storage.VectorStore `optional:"true"`
	MCPServer     *server.MCPServer   `optional:"true"`
}

// NewCommandRunner creates a new command runner
func NewCommandRunner(params Params) *CommandRunner {
	return &CommandRunner{
		config:        params.Config,
		embedder:      params.Embedder,
		searchService: params.SearchService,
		indexer:       params.Indexer,
		vecStore:      params.VecStore,
		mcpServer:     params.MCPServer,
	}
}

// RunIndex executes the index command against the configured repository.
// force is accepted for forward compatibility; with no incremental mode it
// changes nothing yet.
func (r *CommandRunner) RunIndex(ctx context.Context, force bool) error {
	if r.indexer == nil {
		return fmt.Errorf("indexer not available")
	}
	_ = force

	progCh, errCh := r.indexer.IndexRepoProgress(ctx, r.config.RepoRoot)
	for progCh != nil || errCh != nil {
		select {
		case p, ok := <-progCh:
			if !ok {
				progCh = nil
				continue
			}
			fmt.Printf("\r[%3.0f%%] stage=%s files:%d/%d symbols:%d/%d %-40s",
				p.Percent*100,
				p.Stage,
				p.ParsedFiles, p.TotalFiles,
				p.EmbeddedSymbols, p.TotalSymbols,
				p.CurrentFile,
			)
		case err, ok := <-errCh:
			if !ok {
				errCh = nil
				continue
			}
			if err != nil {
				fmt.Println()
				return err
			}
		case <-ctx.Done():
			fmt.Println()
			return ctx.Err()
		}
	}
	fmt.Println()
	fmt.Println("index completed")
	return nil
}

// RunInit prepares the state directory and pre-warms the embedding model
// without indexing any files.
func (r *CommandRunner) RunInit(ctx context.Context) error {
	if err := util.EnsureDir(r.config.IndexDir()); err != nil {
		return err
	}
	if err := util.EnsureDir(r.config.ModelCacheDir()); err != nil {
		return err
	}
	if r.vecStore == nil {
		return fmt.Errorf("vector store not available")
	}
	// one probe call so the first real index run pays no cold-start cost
	if _, err := r.embedder.EmbedQuery("cearch warmup"); err != nil {
		return fmt.Errorf("embedding service warmup failed: %w", err)
	}
	fmt.Printf("initialized %s\n", r.config.IndexDir())
	return ctx.Err()
}

// RunMCPServer executes the MCP server
func (r *CommandRunner) RunMCPServer(transport, address string) error {
	if r.mcpServer == nil {
		return fmt.Errorf("MCP server not available")
	}

	switch transport {
	case "stdio":
		return server.ServeStdio(r.mcpServer)
	case "http":
		addr := address
		if addr == "" {
			addr = ":8080"
		}
		httpSrv := server.NewStreamableHTTPServer(r.mcpServer)
		return httpSrv.Start(addr)
	case "sse":
		addr := address
		if addr == "" {
			addr = ":8080"
		}
		sseSrv := server.NewSSEServer(r.mcpServer,
			server.WithBaseURL(""),
			server.WithStaticBasePath("/mcp"),
		)
		return sseSrv.Start(addr)
	default:
		return fmt.Errorf(
			"unsupported transport: %s (supported: stdio, http, sse)",
			transport,
		)
	}
}

// Module provides command runner
var Module = fx.Module("commands",
	fx.Provide(NewCommandRunner),
)
