package tsparser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cearch/cearch/internal/models"
	"github.com/cearch/cearch/internal/parser"
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tsgo "github.com/tree-sitter/tree-sitter-go/bindings/go"
	tspy "github.com/tree-sitter/tree-sitter-python/bindings/go"
	tsrs "github.com/tree-sitter/tree-sitter-rust/bindings/go"
	tstypes "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

type kindQuery struct {
	kind  models.SymbolKind
	query string
}

type languageConfig struct {
	name       string
	extensions []string
	language   func() *tree_sitter.Language
	queries    []kindQuery
}

// registry maps file extensions to a grammar plus one pattern query per
// symbol kind the language supports. Adding a language is adding a record
// plus its grammar dependency; control flow stays untouched.
var registry = []languageConfig{
	{
		name:       "python",
		extensions: []string{"py"},
		language:   func() *tree_sitter.Language { return tree_sitter.NewLanguage(tspy.Language()) },
		queries: []kindQuery{
			{models.SymbolFunction, `(function_definition name: (identifier) @name) @def`},
			{models.SymbolClass, `(class_definition name: (identifier) @name) @def`},
		},
	},
	{
		name:       "rust",
		extensions: []string{"rs"},
		language:   func() *tree_sitter.Language { return tree_sitter.NewLanguage(tsrs.Language()) },
		queries: []kindQuery{
			{models.SymbolFunction, `(function_item name: (identifier) @name) @def`},
		},
	},
	{
		name:       "go",
		extensions: []string{"go"},
		language:   func() *tree_sitter.Language { return tree_sitter.NewLanguage(tsgo.Language()) },
		queries: []kindQuery{
			{models.SymbolFunction, `(function_declaration name: (identifier) @name) @def`},
			{models.SymbolMethod, `(method_declaration name: (field_identifier) @name) @def`},
		},
	},
	{
		name:       "typescript",
		extensions: []string{"ts"},
		language: func() *tree_sitter.Language {
			return tree_sitter.NewLanguage(tstypes.LanguageTypescript())
		},
		queries: typescriptQueries,
	},
	{
		name:       "tsx",
		extensions: []string{"tsx"},
		language: func() *tree_sitter.Language {
			return tree_sitter.NewLanguage(tstypes.LanguageTSX())
		},
		queries: typescriptQueries,
	},
}

var typescriptQueries = []kindQuery{
	{models.SymbolFunction, `(function_declaration name: (identifier) @name) @def`},
	{models.SymbolClass, `(class_declaration name: (type_identifier) @name) @def`},
	{models.SymbolMethod, `(method_definition name: (property_identifier) @name) @def`},
}

func configForPath(path string) *languageConfig {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return nil
	}
	for i := range registry {
		for _, e := range registry[i].extensions {
			if e == ext {
				return &registry[i]
			}
		}
	}
	return nil
}

// TSParser extracts symbols with tree-sitter pattern queries. Each query
// captures the whole definition node as @def and its identifier as @name;
// the embedded text is the full definition body and the reported line is
// the definition's own start line.
type TSParser struct{}

func New() *TSParser { return &TSParser{} }

func (p *TSParser) ExtractFile(path string) ([]models.Symbol, error) {
	cfg := configForPath(path)
	if cfg == nil {
		return nil, nil
	}

	code, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	tsp := tree_sitter.NewParser()
	defer tsp.Close()
	lang := cfg.language()
	if err := tsp.SetLanguage(lang); err != nil {
		return nil, fmt.Errorf("set %s language: %w", cfg.name, err)
	}

	tree := tsp.Parse(code, nil)
	defer tree.Close()
	root := tree.RootNode()

	var symbols []models.Symbol
	for _, kq := range cfg.queries {
		syms, err := runQuery(lang, kq, root, code, path, cfg.name)
		if err != nil {
			return nil, err
		}
		symbols = append(symbols, syms...)
	}
	return symbols, nil
}

func runQuery(
	lang *tree_sitter.Language,
	kq kindQuery,
	root *tree_sitter.Node,
	code []byte,
	path, langName string,
) ([]models.Symbol, error) {
	query, qerr := tree_sitter.NewQuery(lang, kq.query)
	if qerr != nil {
		// Query compiled against the wrong grammar version or malformed
		// query source; surface it instead of panicking.
		return nil, fmt.Errorf("compile %s %s query: %s", langName, kq.kind, qerr.Message)
	}
	defer query.Close()

	nameIdx, ok := query.CaptureIndexForName("name")
	if !ok {
		return nil, fmt.Errorf("%s %s query missing @name capture", langName, kq.kind)
	}
	defIdx, ok := query.CaptureIndexForName("def")
	if !ok {
		return nil, fmt.Errorf("%s %s query missing @def capture", langName, kq.kind)
	}

	cursor := tree_sitter.NewQueryCursor()
	defer cursor.Close()

	var symbols []models.Symbol
	matches := cursor.Matches(query, root, code)
	for m := matches.Next(); m != nil; m = matches.Next() {
		var name string
		var def *tree_sitter.Node
		for i := range m.Captures {
			c := &m.Captures[i]
			switch uint(c.Index) {
			case nameIdx:
				name = c.Node.Utf8Text(code)
			case defIdx:
				def = &c.Node
			}
		}
		if name == "" || def == nil {
			continue
		}
		symbols = append(symbols, models.Symbol{
			Path: path,
			Line: int(def.StartPosition().Row) + 1,
			Kind: kq.kind,
			Name: name,
			Code: string(code[def.StartByte():def.EndByte()]),
		})
	}
	return symbols, nil
}

var _ parser.Parser = (*TSParser)(nil)
