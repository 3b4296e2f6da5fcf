package orchestrate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nharms/gitfleet/internal/discover"
	"github.com/nharms/gitfleet/internal/git"
)

// StatusResult is the outcome of a status query on one repository.
//
// Summary is "Clean" exactly when the repository is clean, the joined
// non-zero counts otherwise. A failed query carries the failure text in
// both Error and Summary, so Summary is never empty and never "Clean" for
// a repository that could not be read.
type StatusResult struct {
	Repository  string `json:"repository"`
	Path        string `json:"path"`
	Branch      string `json:"branch"`
	Uncommitted int    `json:"uncommitted"`
	Ahead       int    `json:"ahead"`
	Behind      int    `json:"behind"`
	Summary     string `json:"status_summary"`
	Error       string `json:"error,omitempty"`
}

// Clean reports whether the repository has nothing to show: no error, no
// uncommitted changes, and in sync with its upstream.
func (r StatusResult) Clean() bool {
	return r.Error == "" && r.Uncommitted == 0 && r.Ahead == 0 && r.Behind == 0
}

// StatusAll queries every repository with bounded concurrency and returns
// results in discovery order. Clean repositories are filtered out unless
// opts.IncludeClean is set; failed queries are always kept, with the failure
// in the Error field.
func (o *Orchestrator) StatusAll(ctx context.Context, refs []discover.Repo, opts Options) ([]StatusResult, error) {
	if len(refs) == 0 {
		return nil, ErrNoTargets
	}
	opts, err := opts.normalized(DefaultStatusParallel)
	if err != nil {
		return nil, err
	}
	if err := o.run.Check(); err != nil {
		return nil, err
	}

	results := make([]StatusResult, len(refs))

	g := new(errgroup.Group)
	g.SetLimit(opts.MaxParallel)
	for i, ref := range refs {
		i, ref := i, ref
		g.Go(func() error {
			results[i] = o.statusOne(ctx, ref, opts.Timeout)
			return nil
		})
	}
	_ = g.Wait()

	if opts.IncludeClean {
		return results, nil
	}
	filtered := make([]StatusResult, 0, len(results))
	for _, r := range results {
		if !r.Clean() {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

func (o *Orchestrator) statusOne(ctx context.Context, ref discover.Repo, timeout time.Duration) StatusResult {
	res := StatusResult{Repository: ref.Name, Path: ref.Path}

	tctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	st, err := o.run.Status(tctx, ref.Path)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			res.Error = fmt.Sprintf("timed out after %ds", int(timeout.Seconds()))
		} else {
			res.Error = err.Error()
		}
		res.Summary = res.Error
		return res
	}

	res.Branch = st.Branch
	res.Uncommitted = st.Uncommitted
	res.Ahead = st.Ahead
	res.Behind = st.Behind
	res.Summary = summarize(st)
	return res
}

// summarize joins the non-zero status components in the fixed order
// uncommitted, ahead, behind; all-zero yields exactly "Clean".
func summarize(st git.Status) string {
	var parts []string
	if st.Uncommitted > 0 {
		parts = append(parts, fmt.Sprintf("%d uncommitted", st.Uncommitted))
	}
	if st.Ahead > 0 {
		parts = append(parts, fmt.Sprintf("%d ahead", st.Ahead))
	}
	if st.Behind > 0 {
		parts = append(parts, fmt.Sprintf("%d behind", st.Behind))
	}
	if len(parts) == 0 {
		return "Clean"
	}
	return strings.Join(parts, ", ")
}
