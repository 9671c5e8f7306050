package appfx

import (
	"github.com/cearch/cearch/cmd/cmdsfx"
	"github.com/cearch/cearch/internal/config/configfx"
	"github.com/cearch/cearch/internal/embeddings/embeddingsfx"
	"github.com/cearch/cearch/internal/indexer/indexerfx"
	"github.com/cearch/cearch/internal/mcp/mcpfx"
	"github.com/cearch/cearch/internal/parser/parserfx"
	"github.com/cearch/cearch/internal/search/searchfx"
	"github.com/cearch/cearch/internal/storage/storagefx"
	"go.uber.org/fx"
)

// Module combines all application modules
var Module = fx.Options(
	configfx.Module,
	parserfx.Module,
	embeddingsfx.Module,
	storagefx.Module,
	searchfx.Module,
	indexerfx.Module,
	mcpfx.Module,
	cmdsfx.Module,
)

// NewAppWithConfig creates an Fx app with the given configuration values
func NewAppWithConfig(repoRoot, embedURL string, readOnly bool) *fx.App {
	return fx.New(
		Module,
		fx.Supply(
			fx.Annotate(repoRoot, fx.ResultTags(`name:"repoRoot"`)),
			fx.Annotate(embedURL, fx.ResultTags(`name:"embedURL"`)),
			fx.Annotate(readOnly, fx.ResultTags(`name:"readOnly"`)),
		),
	)
}
