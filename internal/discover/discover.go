// Package discover locates git repositories under one or more root paths.
//
// Discovery output is deterministic: repositories are deduplicated by
// resolved absolute path and sorted lexicographically, so repeated runs against an
// unchanged filesystem produce identically ordered lists. Orchestration
// results inherit this order.
package discover

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nharms/gitfleet/internal/git"
	"github.com/nharms/gitfleet/internal/log"
)

// Repo identifies one discovered repository.
type Repo struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// Discover walks roots and returns every git repository found, sorted by
// path. With recurse false only the roots themselves and their immediate
// children are checked; with recurse true full subtrees are walked, skipping
// dot-directories and stopping at each repository root.
//
// Returns *InvalidPathError if a root does not exist and ErrNoRepositories
// if nothing was found. Unreadable subdirectories are skipped with a logged
// warning.
func Discover(ctx context.Context, roots []string, recurse bool) ([]Repo, error) {
	// Validate all roots up front: nothing is scanned if any root is bad.
	absRoots := make([]string, 0, len(roots))
	for _, root := range roots {
		abs, err := filepath.Abs(root)
		if err != nil {
			return nil, &InvalidPathError{Path: root, Err: err}
		}
		info, err := os.Stat(abs)
		if err != nil {
			return nil, &InvalidPathError{Path: root, Err: err}
		}
		if !info.IsDir() {
			return nil, &InvalidPathError{Path: root, Err: errNotDirectory}
		}
		// Resolve symlinks so overlapping roots reached through different
		// links deduplicate to one repository.
		resolved, err := filepath.EvalSymlinks(abs)
		if err != nil {
			return nil, &InvalidPathError{Path: root, Err: err}
		}
		absRoots = append(absRoots, resolved)
	}

	seen := make(map[string]bool)
	var repos []Repo
	add := func(path string) {
		if seen[path] {
			return
		}
		seen[path] = true
		repos = append(repos, Repo{Name: filepath.Base(path), Path: path})
	}

	for _, root := range absRoots {
		if git.IsRepo(root) {
			add(root)
			continue
		}
		scanDir(ctx, root, recurse, add)
	}

	if len(repos) == 0 {
		return nil, ErrNoRepositories
	}

	sort.Slice(repos, func(i, j int) bool { return repos[i].Path < repos[j].Path })
	return repos, nil
}

// scanDir checks children of dir for repositories. When recurse is true it
// descends into non-repo subdirectories; repositories themselves are never
// entered, so nested checkouts below a repo root are not reported.
func scanDir(ctx context.Context, dir string, recurse bool, add func(string)) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.FromContext(ctx).Warnf("skipping %s: %v", dir, err)
		return
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		if git.IsRepo(path) {
			add(path)
			continue
		}
		if recurse {
			scanDir(ctx, path, recurse, add)
		}
	}
}
