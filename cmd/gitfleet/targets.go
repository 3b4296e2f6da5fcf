package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/sahilm/fuzzy"

	"github.com/nharms/gitfleet/internal/discover"
)

// resolveRoots picks the scan roots: --root flags win, then configured
// roots, then the current directory.
func resolveRoots(flagRoots []string) []string {
	if len(flagRoots) > 0 {
		return flagRoots
	}
	if len(cfg.Roots) > 0 {
		return cfg.Roots
	}
	return []string{"."}
}

// discoverTargets discovers repositories under the resolved roots and
// narrows them to the filter pattern, keeping discovery order.
func discoverTargets(ctx context.Context, flagRoots []string, recurse bool, filter string) ([]discover.Repo, error) {
	repos, err := discover.Discover(ctx, resolveRoots(flagRoots), recurse)
	if err != nil {
		return nil, err
	}
	return filterRepos(repos, filter)
}

// filterRepos narrows repos to fuzzy matches of pattern against repository
// names. Matches are re-sorted into the original (discovery) order, since
// fuzzy ranks by score.
func filterRepos(repos []discover.Repo, pattern string) ([]discover.Repo, error) {
	if pattern == "" {
		return repos, nil
	}

	names := make([]string, len(repos))
	for i, r := range repos {
		names[i] = r.Name
	}

	matches := fuzzy.Find(pattern, names)
	if len(matches) == 0 {
		return nil, fmt.Errorf("no repositories match %q", pattern)
	}

	indexes := make([]int, len(matches))
	for i, m := range matches {
		indexes[i] = m.Index
	}
	sort.Ints(indexes)

	out := make([]discover.Repo, len(indexes))
	for i, idx := range indexes {
		out[i] = repos[idx]
	}
	return out, nil
}
