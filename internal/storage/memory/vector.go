package memory

import (
	"math"
	"sync"

	"github.com/cearch/cearch/internal/models"
	"github.com/cearch/cearch/internal/storage"
)

type item struct {
	sym models.Symbol
	vec []float32
}

// VectorStore is an in-process store with an exact L2 scan. It uses the same
// metric as the persisted store so ranking semantics agree across the two.
type VectorStore struct {
	mu        sync.RWMutex
	items     []item
	dimension int
}

func New() *VectorStore { return &VectorStore{} }

func (s *VectorStore) Close() error { return nil }

func (s *VectorStore) Insert(sym models.Symbol, embedding []float32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dimension == 0 {
		s.dimension = len(embedding)
	}
	if len(embedding) != s.dimension || s.dimension == 0 {
		return storage.ErrDimensionMismatch
	}
	vec := make([]float32, len(embedding))
	copy(vec, embedding)
	s.items = append(s.items, item{sym: sym, vec: vec})
	return nil
}

func (s *VectorStore) KNN(embedding []float32, k int) ([]models.QueryResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if k <= 0 {
		return nil, nil
	}
	type scored struct {
		it   item
		dist float32
	}
	scoredList := make([]scored, 0, len(s.items))
	for _, it := range s.items {
		scoredList = append(scoredList, scored{it: it, dist: l2(it.vec, embedding)})
	}
	if k > len(scoredList) {
		k = len(scoredList)
	}
	// partial selection sort; ties keep insertion order
	for i := 0; i < k; i++ {
		best := i
		for j := i + 1; j < len(scoredList); j++ {
			if scoredList[j].dist < scoredList[best].dist {
				best = j
			}
		}
		scoredList[i], scoredList[best] = scoredList[best], scoredList[i]
	}
	var results []models.QueryResult
	for i := 0; i < k; i++ {
		results = append(results, models.QueryResult{
			Path:     scoredList[i].it.sym.Path,
			Line:     scoredList[i].it.sym.Line,
			Name:     scoredList[i].it.sym.Name,
			Distance: scoredList[i].dist,
		})
	}
	return results, nil
}

func l2(a, b []float32) float32 {
	var sum float64
	for i := 0; i < len(a) && i < len(b); i++ {
		d := float64(a[i] - b[i])
		sum += d * d
	}
	return float32(math.Sqrt(sum))
}

var _ storage.VectorStore = (*VectorStore)(nil)
