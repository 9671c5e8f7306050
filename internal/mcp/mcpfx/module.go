package mcpfx

import (
	"github.com/cearch/cearch/internal/config/configfx"
	"github.com/cearch/cearch/internal/indexer"
	appmcp "github.com/cearch/cearch/internal/mcp"
	"github.com/cearch/cearch/internal/search"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/fx"
)

// Params represents dependencies for MCP server
type Params struct {
	fx.In

	SearchService *search.Service
	Indexer       indexer.Indexer
	Config        *configfx.Config
}

// NewMCPServer creates a new MCP server instance
func NewMCPServer(params Params) *server.MCPServer {
	return appmcp.New(params.SearchService, params.Indexer, params.Config)
}

// Module provides MCP server components
var Module = fx.Module("mcp",
	fx.Provide(NewMCPServer),
)
