package ui

import (
	"strings"
	"testing"

	"github.com/nharms/gitfleet/internal/discover"
	"github.com/nharms/gitfleet/internal/orchestrate"
)

func TestFormatFetchTable(t *testing.T) {
	t.Parallel()

	results := []orchestrate.FetchResult{
		{Repository: "alpha", Path: "/fleet/alpha", Success: true, Message: "Fetched from all remotes", DurationMs: 340},
		{Repository: "bravo", Path: "/fleet/bravo", Success: false, Message: "timed out after 300s", DurationMs: 300000},
	}

	out := FormatFetchTable(results, DefaultStyles(false))

	for _, want := range []string{"REPO", "alpha", "bravo", "ok", "failed", "timed out after 300s", "340ms", "300.0s"} {
		if !strings.Contains(out, want) {
			t.Errorf("fetch table missing %q:\n%s", want, out)
		}
	}
}

func TestFormatFetchTable_RowOrderMatchesInput(t *testing.T) {
	t.Parallel()

	results := []orchestrate.FetchResult{
		{Repository: "zulu", Success: true},
		{Repository: "alpha", Success: true},
	}

	out := FormatFetchTable(results, DefaultStyles(false))
	if strings.Index(out, "zulu") > strings.Index(out, "alpha") {
		t.Error("table rows reordered; must keep input (discovery) order")
	}
}

func TestFormatStatusTable(t *testing.T) {
	t.Parallel()

	results := []orchestrate.StatusResult{
		{Repository: "alpha", Branch: "main", Summary: "Clean"},
		{Repository: "bravo", Branch: "feature/x", Uncommitted: 3, Ahead: 2, Behind: 1, Summary: "3 uncommitted, 2 ahead, 1 behind"},
		{Repository: "charlie", Error: "fatal: not a git repository"},
	}

	out := FormatStatusTable(results, DefaultStyles(false))

	for _, want := range []string{"BRANCH", "Clean", "feature/x", "2/1", "error: fatal: not a git repository"} {
		if !strings.Contains(out, want) {
			t.Errorf("status table missing %q:\n%s", want, out)
		}
	}
}

func TestFormatRepoTable(t *testing.T) {
	t.Parallel()

	repos := []discover.Repo{
		{Name: "alpha", Path: "/fleet/alpha"},
		{Name: "bravo", Path: "/fleet/bravo"},
	}

	out := FormatRepoTable(repos, []string{"main", "(a1b2c3d)"}, DefaultStyles(false))

	for _, want := range []string{"REPO", "PATH", "alpha", "/fleet/bravo", "main", "(a1b2c3d)"} {
		if !strings.Contains(out, want) {
			t.Errorf("repo table missing %q:\n%s", want, out)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ms   int64
		want string
	}{
		{0, "0ms"},
		{999, "999ms"},
		{1000, "1.0s"},
		{2340, "2.3s"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.ms); got != tt.want {
			t.Errorf("formatDuration(%d) = %q, want %q", tt.ms, got, tt.want)
		}
	}
}
