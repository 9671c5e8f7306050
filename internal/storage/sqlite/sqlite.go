package sqlite

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/cearch/cearch/internal/models"
	"github.com/cearch/cearch/internal/storage"
	_ "modernc.org/sqlite"
)

// SymbolStore is the read side for exact symbol-name lookup. It reads the
// same symbols table the vector store writes, through the pure-Go driver:
// metadata reads never touch the vec_index table, so the vector extension
// is not needed here.
type SymbolStore struct {
	db *sql.DB
}

func Open(path string) (*SymbolStore, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: no index at %s", storage.ErrNotFound, path)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	return &SymbolStore{db: db}, nil
}

func (s *SymbolStore) Close() error { return s.db.Close() }

func (s *SymbolStore) FindByName(name string) ([]models.Symbol, error) {
	rows, err := s.db.Query(
		`SELECT path,line,kind,name,code FROM symbols WHERE name = ? ORDER BY id`,
		name,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var out []models.Symbol
	for rows.Next() {
		var sym models.Symbol
		var kind string
		if err := rows.Scan(&sym.Path, &sym.Line, &kind, &sym.Name, &sym.Code); err != nil {
			return nil, err
		}
		sym.Kind = models.StringToSymbolKind(kind)
		out = append(out, sym)
	}
	return out, rows.Err()
}

var _ storage.SymbolStore = (*SymbolStore)(nil)
