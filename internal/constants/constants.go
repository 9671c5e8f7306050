package constants

const (
	// DefaultEmbedURL is the embedding API endpoint used when no --embed-url is given.
	DefaultEmbedURL = "http://localhost:8000/embed"

	// IndexDirName is the per-repository state directory created under the repo root.
	IndexDirName = ".cearch"

	// IndexFileName is the sqlite database file inside the state directory.
	IndexFileName = "index.sqlite"

	// ModelCacheDirName is the embedding model cache subdirectory inside the state directory.
	ModelCacheDirName = "models"

	// DefaultEmbedBatchSize balances progress granularity against per-call overhead.
	DefaultEmbedBatchSize = 64

	// DefaultNumResults is the query command's default top-k.
	DefaultNumResults = 7
)
