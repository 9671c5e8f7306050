package models

type SymbolKind string

const (
	SymbolFunction SymbolKind = "function"
	SymbolClass    SymbolKind = "class"
	SymbolMethod   SymbolKind = "method"
)

func StringToSymbolKind(s string) SymbolKind {
	switch SymbolKind(s) {
	case SymbolFunction, SymbolClass, SymbolMethod:
		return SymbolKind(s)
	}
	return SymbolFunction
}

// Symbol is one structural definition extracted from a source file.
// Line is 1-based. Code holds the verbatim text of the whole definition
// span; it is also the text that gets embedded.
type Symbol struct {
	Path string
	Line int
	Kind SymbolKind
	Name string
	Code string
}

// QueryResult is one ranked retrieval hit. Distance is the L2 distance
// between the query embedding and the stored embedding; smaller is closer.
type QueryResult struct {
	Path     string
	Line     int
	Name     string
	Distance float32
}

// Index progress and stages
type IndexStage string

const (
	IndexStageScan  IndexStage = "scan"
	IndexStageParse IndexStage = "parse"
	IndexStageEmbed IndexStage = "embed"
	IndexStageDone  IndexStage = "done"
)

// IndexProgress represents streaming progress updates for indexing
type IndexProgress struct {
	Stage           IndexStage
	TotalFiles      int
	ParsedFiles     int
	TotalSymbols    int
	EmbeddedSymbols int
	CurrentFile     string
	Percent         float32
}
