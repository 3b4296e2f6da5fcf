package orchestrate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nharms/gitfleet/internal/discover"
)

// FetchResult is the outcome of fetching one repository.
type FetchResult struct {
	Repository string `json:"repository"`
	Path       string `json:"path"`
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	DurationMs int64  `json:"duration_ms"`
}

// FetchAll fetches every repository with bounded concurrency. Results are
// returned in the order of refs (discovery order) regardless of completion
// order. Per-repository failures never surface as an error; the error return
// covers only empty input, invalid options, and a missing git binary, all
// raised before any task starts.
func (o *Orchestrator) FetchAll(ctx context.Context, refs []discover.Repo, opts Options) ([]FetchResult, error) {
	if len(refs) == 0 {
		return nil, ErrNoTargets
	}
	opts, err := opts.normalized(DefaultFetchParallel)
	if err != nil {
		return nil, err
	}
	if err := o.run.Check(); err != nil {
		return nil, err
	}

	results := make([]FetchResult, len(refs))

	g := new(errgroup.Group)
	g.SetLimit(opts.MaxParallel)
	for i, ref := range refs {
		i, ref := i, ref
		g.Go(func() error {
			results[i] = o.fetchOne(ctx, ref, opts.Timeout)
			return nil // per-repository failures live in the result record
		})
	}
	_ = g.Wait()

	return results, nil
}

func (o *Orchestrator) fetchOne(ctx context.Context, ref discover.Repo, timeout time.Duration) FetchResult {
	res := FetchResult{Repository: ref.Name, Path: ref.Path}

	tctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	err := o.run.Fetch(tctx, ref.Path)
	res.DurationMs = time.Since(start).Milliseconds()

	switch {
	case err == nil:
		res.Success = true
		res.Message = "Fetched from all remotes"
	case errors.Is(err, context.DeadlineExceeded):
		res.Message = fmt.Sprintf("timed out after %ds", int(timeout.Seconds()))
	default:
		res.Message = err.Error()
	}
	return res
}
