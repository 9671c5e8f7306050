package configfx

import (
	"path/filepath"
	"testing"

	"github.com/cearch/cearch/internal/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	root := t.TempDir()
	config, err := NewConfig(Params{RepoRoot: root})
	require.NoError(t, err)

	assert.Equal(t, root, config.RepoRoot)
	assert.Equal(t, constants.DefaultEmbedURL, config.EmbedURL)
	assert.Equal(t, 0, config.VectorDimension)
	assert.False(t, config.ReadOnly)
}

func TestConfigPaths(t *testing.T) {
	config := &Config{RepoRoot: "/repo"}
	assert.Equal(t, filepath.Join("/repo", ".cearch"), config.IndexDir())
	assert.Equal(t, filepath.Join("/repo", ".cearch", "index.sqlite"), config.DBPath())
	assert.Equal(t, filepath.Join("/repo", ".cearch", "models"), config.ModelCacheDir())
}

func TestNewConfigExplicitValues(t *testing.T) {
	config, err := NewConfig(Params{
		RepoRoot: "/repo",
		EmbedURL: "http://example.com/embed",
		ReadOnly: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/embed", config.EmbedURL)
	assert.True(t, config.ReadOnly)
}
