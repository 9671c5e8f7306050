package mcp

import (
	"context"
	"fmt"

	"github.com/cearch/cearch/internal/config/configfx"
	"github.com/cearch/cearch/internal/constants"
	"github.com/cearch/cearch/internal/indexer"
	"github.com/cearch/cearch/internal/search"
	"github.com/cearch/cearch/internal/storage/sqlite"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server wraps an MCP server exposing the repository's semantic index.
type Server struct {
	server   *server.MCPServer
	searcher *search.Service
	indexer  indexer.Indexer
	config   *configfx.Config
}

// New returns an MCP server exposing semantic search, exact symbol lookup
// and repository indexing over the shared components.
func New(
	searcher *search.Service,
	idx indexer.Indexer,
	config *configfx.Config,
) *server.MCPServer {
	srv := &Server{
		server: server.NewMCPServer(
			"cearch/mcp",
			"0.1.0",
			server.WithToolCapabilities(true),
		),
		searcher: searcher,
		indexer:  idx,
		config:   config,
	}

	srv.server.AddTool(newSemanticSearchTool(), srv.handleSemanticSearch)
	srv.server.AddTool(newSymbolSearchTool(), srv.handleSymbolSearch)
	srv.server.AddTool(newIndexRepositoryTool(), srv.handleIndexRepository)

	return srv.server
}

// Tool definitions
func newSemanticSearchTool() mcp.Tool {
	return mcp.NewTool(
		"semantic_search",
		mcp.WithDescription("Semantic code search by natural language or code query"),
		mcp.WithString("query", mcp.Description("Query text"), mcp.Required()),
		mcp.WithNumber(
			"top_k",
			mcp.Description("Top K results"),
			mcp.DefaultNumber(constants.DefaultNumResults),
		),
	)
}

func newSymbolSearchTool() mcp.Tool {
	return mcp.NewTool(
		"symbol_search",
		mcp.WithDescription("Exact symbol name lookup in the index"),
		mcp.WithString("name", mcp.Description("Symbol name"), mcp.Required()),
	)
}

func newIndexRepositoryTool() mcp.Tool {
	return mcp.NewTool(
		"index_repository",
		mcp.WithDescription("Re-index the repository the server was started in"),
	)
}

// Handlers
func (srv *Server) handleSemanticSearch(
	ctx context.Context,
	req mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	topK := req.GetInt("top_k", constants.DefaultNumResults)

	hits, err := srv.searcher.Search(ctx, query, topK)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultStructuredOnly(hits), nil
}

func (srv *Server) handleSymbolSearch(
	_ context.Context,
	req mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	syms, err := sqlite.Open(srv.config.DBPath())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("open index failed: %v", err)), nil
	}
	defer syms.Close() //nolint:errcheck

	res, err := syms.FindByName(name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultStructuredOnly(res), nil
}

func (srv *Server) handleIndexRepository(
	ctx context.Context,
	req mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	if err := srv.indexer.IndexRepo(ctx, srv.config.RepoRoot); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("index failed: %v", err)), nil
	}
	return mcp.NewToolResultText("index completed"), nil
}
