package search_test

import (
	"context"
	"testing"

	"github.com/cearch/cearch/internal/embeddings"
	"github.com/cearch/cearch/internal/models"
	"github.com/cearch/cearch/internal/search"
	"github.com/cearch/cearch/internal/storage/memory"
)

func Test_Search_RanksByDistance(t *testing.T) {
	emb := embeddings.NewLocal(8)
	store := memory.New()
	for _, name := range []string{"alpha", "beta", "gamma"} {
		vec, _ := emb.EmbedQuery(name)
		err := store.Insert(models.Symbol{
			Path: "/r/" + name + ".py",
			Line: 1,
			Kind: models.SymbolFunction,
			Name: name,
			Code: name,
		}, vec)
		if err != nil {
			t.Fatal(err)
		}
	}

	svc := &search.Service{Embedder: emb, Vector: store}
	res, err := svc.Search(context.Background(), "beta", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 2 {
		t.Fatalf("expected 2 results, got %d", len(res))
	}
	if res[0].Name != "beta" || res[0].Distance != 0 {
		t.Fatalf("exact text should rank first at distance 0, got %+v", res[0])
	}
	if res[1].Distance < res[0].Distance {
		t.Fatalf("results not ascending: %+v", res)
	}
}

type emptyEmbedder struct{}

func (emptyEmbedder) ModelName() string { return "empty" }

func (emptyEmbedder) EmbedTexts(texts []string) ([][]float32, error) {
	return make([][]float32, len(texts)), nil
}

func (emptyEmbedder) EmbedQuery(string) ([]float32, error) { return nil, nil }

func Test_Search_EmptyEmbedding(t *testing.T) {
	svc := &search.Service{Embedder: emptyEmbedder{}, Vector: memory.New()}
	if _, err := svc.Search(context.Background(), "q", 5); err == nil {
		t.Fatalf("expected an error for an empty query embedding")
	}
}
