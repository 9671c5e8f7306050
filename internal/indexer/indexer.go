package indexer

import (
	"context"

	"github.com/cearch/cearch/internal/models"
)

type Indexer interface {
	// IndexRepo indexes every git-tracked file under root exactly once.
	// Per-file, per-batch and per-symbol failures are logged and skipped;
	// only setup failures (file listing, store access) are returned.
	IndexRepo(ctx context.Context, root string) error

	// IndexRepoProgress is IndexRepo with streaming progress updates.
	// Both channels are closed when the run reaches its terminal state.
	IndexRepoProgress(
		ctx context.Context,
		root string,
	) (<-chan models.IndexProgress, <-chan error)
}
