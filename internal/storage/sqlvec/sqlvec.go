package sqlvec

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	sqlite_vec "github.com/asg017/sqlite-vec-go-bindings/cgo"
	"github.com/cearch/cearch/internal/models"
	"github.com/cearch/cearch/internal/storage"
	_ "github.com/mattn/go-sqlite3"
)

// Store pairs a symbols metadata table with a vec0 virtual table under a
// shared rowid. Distances reported by KNN are sqlite-vec's default metric,
// Euclidean (L2).
type Store struct {
	db        *sql.DB
	dimension int
}

// Open creates (or opens) an index at path with the vector width fixed to
// dimension. dimension == 0 defers vec-table creation to the first Insert,
// which pins the dimension from the first embedding it sees.
func Open(path string, dimension int) (*Store, error) {
	// enable sqlite-vec for all future connections; safe to call repeatedly
	sqlite_vec.Auto()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if err := migrate(db, dimension); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db, dimension: dimension}, nil
}

// OpenRead opens an existing index without requiring a dimension; the schema
// already encodes it. A missing index is storage.ErrNotFound.
func OpenRead(path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: no index at %s", storage.ErrNotFound, path)
	}
	sqlite_vec.Auto()
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	dim, err := readDimension(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db, dimension: dim}, nil
}

func migrate(db *sql.DB, dim int) error {
	if _, err := db.Exec(`
		PRAGMA journal_mode = WAL;
		PRAGMA synchronous = NORMAL;
		CREATE TABLE IF NOT EXISTS symbols (
			id INTEGER PRIMARY KEY,
			path TEXT NOT NULL,
			line INTEGER NOT NULL,
			kind TEXT NOT NULL,
			name TEXT NOT NULL,
			code TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_symbols_name ON symbols(name);
		CREATE INDEX IF NOT EXISTS idx_symbols_path ON symbols(path);`); err != nil {
		return err
	}
	// vec0 virtual table holds embeddings; dimension is fixed per table.
	// If dim <= 0, defer creation until the first Insert when it is known.
	if dim > 0 {
		if _, err := db.Exec(fmt.Sprintf(
			`CREATE VIRTUAL TABLE IF NOT EXISTS vec_index USING vec0(embedding float32[%d]);`,
			dim)); err != nil {
			return err
		}
	}
	return nil
}

var vecDimPattern = regexp.MustCompile(`float32\[(\d+)\]`)

func readDimension(db *sql.DB) (int, error) {
	var ddl string
	err := db.QueryRow(
		`SELECT sql FROM sqlite_master WHERE type='table' AND name='vec_index'`,
	).Scan(&ddl)
	if errors.Is(err, sql.ErrNoRows) {
		// index created but nothing inserted yet
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	m := vecDimPattern.FindStringSubmatch(ddl)
	if m == nil {
		return 0, fmt.Errorf("vec_index schema has no dimension: %s", ddl)
	}
	return strconv.Atoi(m[1])
}

// Dimension reports the vector width the index is pinned to; 0 until the
// first insert when the store was opened without one.
func (s *Store) Dimension() int { return s.dimension }

func (s *Store) Close() error { return s.db.Close() }

// Insert atomically writes one metadata row and its paired vector under a
// shared rowid. An embedding whose length differs from the pinned dimension
// fails before anything is written.
func (s *Store) Insert(sym models.Symbol, embedding []float32) error {
	if len(embedding) == 0 {
		return fmt.Errorf("%w: empty embedding for %s", storage.ErrDimensionMismatch, sym.Name)
	}
	if s.dimension == 0 {
		if err := s.ensureVecTable(len(embedding)); err != nil {
			return err
		}
	}
	if len(embedding) != s.dimension {
		return fmt.Errorf("%w: got %d, index is %d",
			storage.ErrDimensionMismatch, len(embedding), s.dimension)
	}
	blob, err := sqlite_vec.SerializeFloat32(embedding)
	if err != nil {
		return err
	}
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	res, err := tx.Exec(
		`INSERT INTO symbols(path,line,kind,name,code) VALUES(?,?,?,?,?)`,
		sym.Path, sym.Line, string(sym.Kind), sym.Name, sym.Code,
	)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	rowid, err := res.LastInsertId()
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	if _, err := tx.Exec(
		`INSERT INTO vec_index(rowid, embedding) VALUES(?, ?)`, rowid, blob,
	); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// KNN returns up to k rows by ascending L2 distance, joined with their
// metadata. k <= 0 yields an empty result, as does an index with no vectors.
func (s *Store) KNN(embedding []float32, k int) ([]models.QueryResult, error) {
	if k <= 0 || s.dimension == 0 {
		return nil, nil
	}
	blob, err := sqlite_vec.SerializeFloat32(embedding)
	if err != nil {
		return nil, err
	}
	rows, err := s.db.Query(`
		WITH knn AS (
			SELECT rowid, distance
			FROM vec_index
			WHERE embedding MATCH ?
			ORDER BY distance
			LIMIT ?
		)
		SELECT s.path, s.line, s.name, k.distance
		FROM knn k
		JOIN symbols s ON s.id = k.rowid
		ORDER BY k.distance ASC
	`, blob, k)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var results []models.QueryResult
	for rows.Next() {
		var r models.QueryResult
		if err := rows.Scan(&r.Path, &r.Line, &r.Name, &r.Distance); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

func (s *Store) ensureVecTable(dim int) error {
	if _, err := s.db.Exec(fmt.Sprintf(
		`CREATE VIRTUAL TABLE IF NOT EXISTS vec_index USING vec0(embedding float32[%d]);`,
		dim)); err != nil {
		return err
	}
	s.dimension = dim
	return nil
}

var _ storage.VectorStore = (*Store)(nil)
