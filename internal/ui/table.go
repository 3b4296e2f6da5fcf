// Package ui renders orchestration reports as styled tables.
//
// This package is a pure consumer of result records: it never touches git
// or the filesystem, and the core packages never import it.
package ui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/nharms/gitfleet/internal/discover"
	"github.com/nharms/gitfleet/internal/orchestrate"
)

// Styles bundles the lipgloss styles used by the report tables.
type Styles struct {
	Header lipgloss.Style
	Cell   lipgloss.Style
	OK     lipgloss.Style
	Fail   lipgloss.Style
	Border lipgloss.Style
}

// DefaultStyles returns the table styles. With colored false all styles are
// plain, for non-TTY output.
func DefaultStyles(colored bool) Styles {
	s := Styles{
		Header: lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Cell:   lipgloss.NewStyle().Padding(0, 1),
		OK:     lipgloss.NewStyle().Padding(0, 1),
		Fail:   lipgloss.NewStyle().Padding(0, 1),
		Border: lipgloss.NewStyle(),
	}
	if colored {
		s.OK = s.OK.Foreground(lipgloss.Color("42"))
		s.Fail = s.Fail.Foreground(lipgloss.Color("196"))
		s.Border = s.Border.Foreground(lipgloss.Color("240"))
	}
	return s
}

// FormatFetchTable renders fetch results; failed rows use the Fail style.
func FormatFetchTable(results []orchestrate.FetchResult, st Styles) string {
	rows := make([][]string, 0, len(results))
	failed := make(map[int]bool, len(results))
	for i, res := range results {
		state := "ok"
		if !res.Success {
			state = "failed"
			failed[i] = true
		}
		rows = append(rows, []string{res.Repository, state, formatDuration(res.DurationMs), res.Message})
	}

	t := table.New().
		Headers("REPO", "RESULT", "TIME", "MESSAGE").
		Rows(rows...).
		Border(lipgloss.NormalBorder()).
		BorderStyle(st.Border).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return st.Header
			case failed[row]:
				return st.Fail
			default:
				return st.Cell
			}
		})

	return t.String() + "\n"
}

// FormatStatusTable renders status results; failed queries use the Fail style.
func FormatStatusTable(results []orchestrate.StatusResult, st Styles) string {
	rows := make([][]string, 0, len(results))
	failed := make(map[int]bool, len(results))
	for i, res := range results {
		status := res.Summary
		if res.Error != "" {
			status = "error: " + res.Error
			failed[i] = true
		}
		rows = append(rows, []string{
			res.Repository,
			res.Branch,
			strconv.Itoa(res.Uncommitted),
			fmt.Sprintf("%d/%d", res.Ahead, res.Behind),
			status,
		})
	}

	t := table.New().
		Headers("REPO", "BRANCH", "CHANGES", "AHEAD/BEHIND", "STATUS").
		Rows(rows...).
		Border(lipgloss.NormalBorder()).
		BorderStyle(st.Border).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return st.Header
			case failed[row]:
				return st.Fail
			default:
				return st.Cell
			}
		})

	return t.String() + "\n"
}

// FormatRepoTable renders the repository listing. branches must be parallel
// to repos; an empty branch renders as an empty cell.
func FormatRepoTable(repos []discover.Repo, branches []string, st Styles) string {
	rows := make([][]string, 0, len(repos))
	for i, r := range repos {
		branch := ""
		if i < len(branches) {
			branch = branches[i]
		}
		rows = append(rows, []string{r.Name, branch, r.Path})
	}

	t := table.New().
		Headers("REPO", "BRANCH", "PATH").
		Rows(rows...).
		Border(lipgloss.NormalBorder()).
		BorderStyle(st.Border).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return st.Header
			}
			return st.Cell
		})

	return t.String() + "\n"
}

func formatDuration(ms int64) string {
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	return fmt.Sprintf("%.1fs", float64(ms)/1000)
}
