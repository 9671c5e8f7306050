package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cearch/cearch/internal/util"
)

func Test_EnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".cearch", "models")
	if err := util.EnsureDir(dir); err != nil {
		t.Fatal(err)
	}
	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		t.Fatalf("expected directory at %s", dir)
	}
	// repeat call is a no-op
	if err := util.EnsureDir(dir); err != nil {
		t.Fatal(err)
	}
}

func Test_RemoveDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".cearch")
	if err := util.EnsureDir(filepath.Join(dir, "models")); err != nil {
		t.Fatal(err)
	}
	if err := util.RemoveDir(dir); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Fatalf("directory should be gone")
	}
	// removing an absent directory is success
	if err := util.RemoveDir(dir); err != nil {
		t.Fatalf("absent directory must not fail: %v", err)
	}
}
