package sqlvec_test

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/cearch/cearch/internal/models"
	"github.com/cearch/cearch/internal/storage"
	"github.com/cearch/cearch/internal/storage/sqlvec"
)

func dbPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), ".cearch", "index.sqlite")
}

func sym(name string, line int) models.Symbol {
	return models.Symbol{
		Path: "/repo/" + name + ".rs",
		Line: line,
		Kind: models.SymbolFunction,
		Name: name,
		Code: "fn " + name + "() {}",
	}
}

func Test_Store_RoundTrip(t *testing.T) {
	s, err := sqlvec.Open(dbPath(t), 3)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = s.Close() }()

	if err := s.Insert(sym("baz", 7), []float32{0.1, 0.2, 0.3}); err != nil {
		t.Fatal(err)
	}
	res, err := s.KNN([]float32{0.1, 0.2, 0.3}, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 1 {
		t.Fatalf("expected 1 result, got %d", len(res))
	}
	if res[0].Name != "baz" || res[0].Line != 7 || res[0].Path != "/repo/baz.rs" {
		t.Fatalf("unexpected result %+v", res[0])
	}
	if math.Abs(float64(res[0].Distance)) > 1e-4 {
		t.Fatalf("identical vector should score ~0, got %f", res[0].Distance)
	}
}

func Test_Store_KNNOrdering(t *testing.T) {
	s, err := sqlvec.Open(dbPath(t), 2)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = s.Close() }()

	_ = s.Insert(sym("near", 1), []float32{1, 0})
	_ = s.Insert(sym("far", 2), []float32{10, 0})
	_ = s.Insert(sym("mid", 3), []float32{4, 0})

	res, err := s.KNN([]float32{0, 0}, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 2 {
		t.Fatalf("expected 2 results, got %d", len(res))
	}
	if res[0].Name != "near" || res[1].Name != "mid" {
		t.Fatalf("unexpected order %+v", res)
	}
}

func Test_Store_DimensionMismatch(t *testing.T) {
	s, err := sqlvec.Open(dbPath(t), 4)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = s.Close() }()

	err = s.Insert(sym("bad", 1), []float32{1, 2})
	if !errors.Is(err, storage.ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch, got %v", err)
	}
	// the failed insert must not leave a dangling metadata row
	res, err := s.KNN([]float32{1, 2, 3, 4}, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 0 {
		t.Fatalf("index should be empty after a rejected insert, got %+v", res)
	}
}

func Test_Store_DeferredDimension(t *testing.T) {
	path := dbPath(t)
	s, err := sqlvec.Open(path, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Dimension(); got != 0 {
		t.Fatalf("dimension should be unset, got %d", got)
	}
	if err := s.Insert(sym("first", 1), []float32{1, 2, 3}); err != nil {
		t.Fatal(err)
	}
	if got := s.Dimension(); got != 3 {
		t.Fatalf("dimension should pin to first insert, got %d", got)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	// a read-only open recovers the dimension from the schema
	r, err := sqlvec.OpenRead(path)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = r.Close() }()
	if got := r.Dimension(); got != 3 {
		t.Fatalf("OpenRead dimension = %d, want 3", got)
	}
	res, err := r.KNN([]float32{1, 2, 3}, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 1 || res[0].Name != "first" {
		t.Fatalf("unexpected results %+v", res)
	}
}

func Test_Store_KZero(t *testing.T) {
	s, err := sqlvec.Open(dbPath(t), 2)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = s.Close() }()
	_ = s.Insert(sym("x", 1), []float32{1, 2})
	res, err := s.KNN([]float32{1, 2}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 0 {
		t.Fatalf("k=0 must yield no results, got %d", len(res))
	}
}

func Test_OpenRead_Missing(t *testing.T) {
	_, err := sqlvec.OpenRead(filepath.Join(t.TempDir(), "nope.sqlite"))
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
