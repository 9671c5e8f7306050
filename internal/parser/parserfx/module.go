package parserfx

import (
	"github.com/cearch/cearch/internal/parser"
	"github.com/cearch/cearch/internal/parser/tsparser"
	"go.uber.org/fx"
)

// NewParser creates the tree-sitter symbol extractor
func NewParser() parser.Parser {
	return tsparser.New()
}

// Module provides parser components
var Module = fx.Module("parser",
	fx.Provide(NewParser),
)
