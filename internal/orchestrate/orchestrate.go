// Package orchestrate runs fetch and status operations across a fleet of
// repositories with bounded concurrency and per-repository timeouts.
//
// Each repository operation is fully isolated: a timeout, command failure,
// or vanished path in one repository is captured in that repository's result
// record and never aborts or blocks siblings. Results are written into a
// pre-sized slice by index, so output always follows discovery order no
// matter which operation finishes first, and no shared state needs locking.
//
// There is deliberately no overall-success flag on a report: callers must
// inspect individual records to handle partial failure.
package orchestrate

import (
	"context"
	"errors"

	"github.com/nharms/gitfleet/internal/git"
)

// ErrNoTargets indicates an orchestration call received an empty
// repository list.
var ErrNoTargets = errors.New("no repositories to operate on")

// Runner abstracts the per-repository git operations. The production
// implementation shells out to the git binary; tests substitute stubs to
// exercise ordering, isolation, and timeout behavior without subprocesses.
type Runner interface {
	// Check verifies the underlying tool is available. It runs once per
	// orchestration call, before any task is scheduled.
	Check() error
	Fetch(ctx context.Context, repoPath string) error
	Status(ctx context.Context, repoPath string) (git.Status, error)
}

type gitRunner struct{}

func (gitRunner) Check() error { return git.CheckGit() }

func (gitRunner) Fetch(ctx context.Context, repoPath string) error {
	return git.Fetch(ctx, repoPath)
}

func (gitRunner) Status(ctx context.Context, repoPath string) (git.Status, error) {
	return git.ReadStatus(ctx, repoPath)
}

// Orchestrator coordinates batched repository operations.
type Orchestrator struct {
	run Runner
}

// New creates an orchestrator backed by the git CLI.
func New() *Orchestrator {
	return &Orchestrator{run: gitRunner{}}
}

// NewWithRunner creates an orchestrator with a custom runner.
func NewWithRunner(r Runner) *Orchestrator {
	return &Orchestrator{run: r}
}
