package util

import "os"

// EnsureDir creates dir (and parents) if absent. Used for the per-repository
// state directory and the embedding model cache inside it.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// RemoveDir deletes dir wholesale. An already-absent directory is success,
// not failure.
func RemoveDir(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil
	}
	return os.RemoveAll(dir)
}
