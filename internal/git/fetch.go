package git

import "context"

// Fetch updates remote-tracking refs from all remotes, pruning stale ones.
// Network access and credentials are entirely git's concern; the caller
// bounds the call with its context.
func Fetch(ctx context.Context, repoPath string) error {
	return runGit(ctx, repoPath, "fetch", "--all", "--prune")
}
