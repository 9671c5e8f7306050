package storagefx

import (
	"github.com/cearch/cearch/internal/config/configfx"
	"github.com/cearch/cearch/internal/storage"
	"github.com/cearch/cearch/internal/storage/sqlvec"
	"go.uber.org/fx"
)

// Params represents dependencies for storage components
type Params struct {
	fx.In

	Config *configfx.Config
}

// NewVectorStore creates a new vector store instance. Read-only mode opens
// the existing index and fails with storage.ErrNotFound when there is none.
func NewVectorStore(params Params) (storage.VectorStore, error) {
	if params.Config.ReadOnly {
		return sqlvec.OpenRead(params.Config.DBPath())
	}
	return sqlvec.Open(params.Config.DBPath(), params.Config.VectorDimension)
}

// Module provides storage components
var Module = fx.Module("storage",
	fx.Provide(NewVectorStore),
)
