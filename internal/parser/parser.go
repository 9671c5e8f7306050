package parser

import "github.com/cearch/cearch/internal/models"

// Parser extracts symbol definitions from a single source file.
// Files with an unregistered extension yield (nil, nil), not an error.
type Parser interface {
	ExtractFile(path string) ([]models.Symbol, error)
}
