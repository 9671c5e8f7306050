package embeddings_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cearch/cearch/internal/embeddings"
)

func embedServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func Test_ApiEmbedder_EmbedTexts(t *testing.T) {
	var gotSentences []string
	srv := embedServer(t, func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Sentences []string `json:"sentences"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		gotSentences = req.Sentences
		vecs := make([][]float32, len(req.Sentences))
		for i := range vecs {
			vecs[i] = []float32{float32(i), 1}
		}
		_ = json.NewEncoder(w).Encode(vecs)
	})

	e := embeddings.NewApi(srv.URL)
	vecs, err := e.EmbedTexts([]string{"def foo(): pass", "class Bar: pass"})
	if err != nil {
		t.Fatal(err)
	}
	if len(gotSentences) != 2 {
		t.Fatalf("server saw %d sentences", len(gotSentences))
	}
	if len(vecs) != 2 || vecs[0][0] != 0 || vecs[1][0] != 1 {
		t.Fatalf("unexpected vectors %v", vecs)
	}
}

func Test_ApiEmbedder_EmbedQuery(t *testing.T) {
	srv := embedServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([][]float32{{0.5, 0.5}})
	})
	e := embeddings.NewApi(srv.URL)
	vec, err := e.EmbedQuery("where is auth handled")
	if err != nil {
		t.Fatal(err)
	}
	if len(vec) != 2 {
		t.Fatalf("unexpected vector %v", vec)
	}
}

func Test_ApiEmbedder_ServerError(t *testing.T) {
	srv := embedServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	})
	e := embeddings.NewApi(srv.URL)
	if _, err := e.EmbedTexts([]string{"x"}); err == nil {
		t.Fatalf("expected error for 500 response")
	}
}

func Test_ApiEmbedder_CountMismatch(t *testing.T) {
	srv := embedServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([][]float32{{1}})
	})
	e := embeddings.NewApi(srv.URL)
	if _, err := e.EmbedTexts([]string{"a", "b"}); err == nil {
		t.Fatalf("expected error when vector count differs from input count")
	}
}
