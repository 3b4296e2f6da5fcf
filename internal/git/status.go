package git

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Status is a lightweight snapshot of one repository's working tree.
type Status struct {
	Branch      string
	Uncommitted int
	Ahead       int
	Behind      int
}

// ReadStatus queries branch, uncommitted change count, and ahead/behind
// counts relative to the configured upstream. Ahead/behind are 0/0 when the
// current branch has no upstream.
func ReadStatus(ctx context.Context, repoPath string) (Status, error) {
	var st Status

	branch, detached, err := CurrentBranch(ctx, repoPath)
	if err != nil {
		return st, err
	}
	st.Branch = branch

	uncommitted, err := UncommittedCount(ctx, repoPath)
	if err != nil {
		return st, err
	}
	st.Uncommitted = uncommitted

	if detached {
		return st, nil
	}

	upstream, err := Upstream(ctx, repoPath, branch)
	if err != nil || upstream == "" {
		// No upstream configured is a normal state, not an error.
		return st, nil
	}

	ahead, behind, err := AheadBehind(ctx, repoPath, branch, upstream)
	if err != nil {
		return st, err
	}
	st.Ahead = ahead
	st.Behind = behind
	return st, nil
}

// CurrentBranch returns the current branch name. On a detached HEAD it
// returns the short hash in parens, e.g. "(a1b2c3d)", and detached=true.
func CurrentBranch(ctx context.Context, repoPath string) (branch string, detached bool, err error) {
	out, err := outputGit(ctx, repoPath, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", false, err
	}
	name := strings.TrimSpace(string(out))
	if name != "HEAD" {
		return name, false, nil
	}

	hash, err := outputGit(ctx, repoPath, "rev-parse", "--short", "HEAD")
	if err != nil {
		return "HEAD", true, nil
	}
	return fmt.Sprintf("(%s)", strings.TrimSpace(string(hash))), true, nil
}

// Upstream returns the upstream tracking ref for branch, or "" if none is
// configured.
func Upstream(ctx context.Context, repoPath, branch string) (string, error) {
	out, err := outputGit(ctx, repoPath, "rev-parse", "--abbrev-ref", branch+"@{upstream}")
	if err != nil {
		// git exits non-zero when no upstream is configured
		return "", nil
	}
	return strings.TrimSpace(string(out)), nil
}

// AheadBehind returns commits ahead of and behind the upstream ref.
func AheadBehind(ctx context.Context, repoPath, branch, upstream string) (ahead, behind int, err error) {
	out, err := outputGit(ctx, repoPath, "rev-list", "--left-right", "--count",
		fmt.Sprintf("%s...%s", branch, upstream))
	if err != nil {
		return 0, 0, err
	}
	return ParseAheadBehind(string(out))
}

// UncommittedCount returns the number of modified, staged, untracked, and
// conflicted entries in the working tree.
func UncommittedCount(ctx context.Context, repoPath string) (int, error) {
	out, err := outputGit(ctx, repoPath, "status", "--porcelain", "-z")
	if err != nil {
		return 0, err
	}
	return CountPorcelain(string(out)), nil
}

// ParseAheadBehind parses `git rev-list --left-right --count` output,
// two tab-separated integers: "<ahead>\t<behind>".
func ParseAheadBehind(out string) (ahead, behind int, err error) {
	parts := strings.Fields(out)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("unexpected rev-list output: %q", strings.TrimSpace(out))
	}
	ahead, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("unexpected rev-list output: %q", strings.TrimSpace(out))
	}
	behind, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("unexpected rev-list output: %q", strings.TrimSpace(out))
	}
	return ahead, behind, nil
}

// CountPorcelain counts entries in `git status --porcelain -z` output.
//
// Entries are NUL-terminated "XY <path>" records. Rename and copy entries
// carry the origin path as an extra NUL-terminated field, which must be
// skipped rather than counted as a separate entry.
func CountPorcelain(out string) int {
	entries := strings.Split(out, "\x00")
	count := 0
	for i := 0; i < len(entries); i++ {
		e := entries[i]
		if len(e) < 3 {
			continue
		}
		count++
		if e[0] == 'R' || e[0] == 'C' {
			i++ // skip the rename/copy origin path field
		}
	}
	return count
}
