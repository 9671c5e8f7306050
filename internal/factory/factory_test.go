package factory_test

import (
	"errors"
	"testing"

	"github.com/cearch/cearch/internal/factory"
	"github.com/cearch/cearch/internal/storage"
)

func Test_CreateComponents(t *testing.T) {
	f := factory.NewComponentFactory(factory.ComponentConfig{RepoRoot: t.TempDir()})
	components, err := f.CreateComponents()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = components.Cleanup() }()

	if components.Parser == nil || components.Embedder == nil ||
		components.VecStore == nil || components.Searcher == nil {
		t.Fatalf("incomplete components %+v", components)
	}
	if f.CreateIndexer(components) == nil {
		t.Fatalf("expected an indexer")
	}
}

func Test_CreateComponents_NoRoot(t *testing.T) {
	f := factory.NewComponentFactory(factory.ComponentConfig{})
	if _, err := f.CreateComponents(); err == nil {
		t.Fatalf("expected error without a repository root")
	}
}

func Test_ReadOnly_MissingIndex(t *testing.T) {
	f := factory.NewComponentFactory(factory.ComponentConfig{
		RepoRoot: t.TempDir(),
		ReadOnly: true,
	})
	_, err := f.CreateComponents()
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for a read-only open of a missing index, got %v", err)
	}
}
