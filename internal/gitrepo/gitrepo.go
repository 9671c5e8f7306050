package gitrepo

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// ErrNotRepository is returned when no enclosing git repository exists.
var ErrNotRepository = errors.New("not inside a git repository")

// FindRoot walks upward from start to the directory containing a `.git`
// entry. Worktrees keep a gitdir file instead of a directory, so both count.
func FindRoot(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	if fi, err := os.Stat(abs); err == nil && !fi.IsDir() {
		abs = filepath.Dir(abs)
	}
	dir := abs
	for {
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w (searched from %s)", ErrNotRepository, abs)
		}
		dir = parent
	}
}

// ListTrackedFiles returns absolute paths of all files git tracks under root,
// in git's own order. `git ls-files -z` is the source of truth so results
// match git's notion of "tracked" (respects .gitignore bookkeeping for free).
func ListTrackedFiles(root string) ([]string, error) {
	if _, err := os.Stat(filepath.Join(root, ".git")); err != nil {
		return nil, fmt.Errorf("%w: %s has no .git entry", ErrNotRepository, root)
	}
	cmd := exec.Command("git", "-C", root, "ls-files", "-z")
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("git ls-files failed: %w", err)
	}
	var files []string
	for _, rel := range bytes.Split(out, []byte{0}) {
		if len(rel) == 0 {
			continue
		}
		files = append(files, filepath.Join(root, string(rel)))
	}
	return files, nil
}
