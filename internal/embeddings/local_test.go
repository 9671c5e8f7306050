package embeddings_test

import (
	"testing"

	"github.com/cearch/cearch/internal/embeddings"
)

func Test_LocalEmbedder_Deterministic(t *testing.T) {
	e := embeddings.NewLocal(8)
	v1, _ := e.EmbedQuery("hello")
	v2, _ := e.EmbedQuery("hello")
	if len(v1) != 8 || len(v2) != 8 {
		t.Fatalf("unexpected dim")
	}
	for i := range v1 {
		if v1[i] != v2[i] {
			t.Fatalf("vectors differ at %d", i)
		}
	}
}

func Test_LocalEmbedder_OrderPreserved(t *testing.T) {
	e := embeddings.NewLocal(8)
	texts := []string{"alpha", "beta", "gamma"}
	vecs, err := e.EmbedTexts(texts)
	if err != nil {
		t.Fatal(err)
	}
	if len(vecs) != len(texts) {
		t.Fatalf("expected %d vectors, got %d", len(texts), len(vecs))
	}
	for i, text := range texts {
		want, _ := e.EmbedQuery(text)
		for j := range want {
			if vecs[i][j] != want[j] {
				t.Fatalf("vector %d does not correspond to input %q", i, text)
			}
		}
	}
}
