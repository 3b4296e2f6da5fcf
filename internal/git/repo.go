package git

import (
	"os"
	"path/filepath"
)

// IsRepo checks if a path is a git repository root (has a .git dir or file).
func IsRepo(path string) bool {
	gitPath := filepath.Join(path, ".git")
	info, err := os.Stat(gitPath)
	if err != nil {
		return false
	}
	// .git can be a directory (regular repo) or file (worktree/submodule)
	return info.IsDir() || info.Mode().IsRegular()
}
