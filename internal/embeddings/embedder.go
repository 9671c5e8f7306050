package embeddings

// Embedder turns text snippets into fixed-dimension float vectors.
// EmbedTexts preserves input order and length; the indexing pipeline zips
// symbols with vectors positionally.
type Embedder interface {
	EmbedTexts(texts []string) ([][]float32, error)
	EmbedQuery(text string) ([]float32, error)
	ModelName() string
}
