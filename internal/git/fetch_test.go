package git

import (
	"context"
	"errors"
	"testing"
)

func TestFetch_WithOrigin(t *testing.T) {
	t.Parallel()

	repoPath, _ := setupTestRepoWithOrigin(t)
	if err := Fetch(context.Background(), repoPath); err != nil {
		t.Errorf("Fetch() = %v, want nil", err)
	}
}

func TestFetch_NoRemotes(t *testing.T) {
	t.Parallel()

	// fetch --all on a repo without remotes is a no-op, not an error
	repoPath := setupTestRepo(t)
	if err := Fetch(context.Background(), repoPath); err != nil {
		t.Errorf("Fetch() on remote-less repo = %v, want nil", err)
	}
}

func TestFetch_NotARepo(t *testing.T) {
	t.Parallel()

	if err := Fetch(context.Background(), t.TempDir()); err == nil {
		t.Error("Fetch(non-repo) = nil, want error")
	}
}

func TestFetch_Cancelled(t *testing.T) {
	t.Parallel()

	repoPath, _ := setupTestRepoWithOrigin(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Fetch(ctx, repoPath)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Fetch(cancelled ctx) = %v, want context.Canceled", err)
	}
}
