package discover

import (
	"errors"
	"fmt"
)

// ErrNoRepositories indicates discovery completed without finding any
// git repositories under the supplied roots.
var ErrNoRepositories = errors.New("no git repositories found")

var errNotDirectory = errors.New("not a directory")

// InvalidPathError indicates a supplied root path does not exist or is not
// a directory. It is raised before any scanning starts.
type InvalidPathError struct {
	Path string
	Err  error
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("invalid root path %q: %v", e.Path, e.Err)
}

func (e *InvalidPathError) Unwrap() error {
	return e.Err
}
