// Package git wraps the git CLI for repository inspection and fetching.
//
// All operations shell out to the git binary via the internal cmd package
// and take a context for cancellation and timeouts. Output parsing is
// isolated in dedicated functions ([CountPorcelain], [ParseAheadBehind])
// because git's text output is a versioned external contract: when a format
// changes across git versions, only the parser and its captured samples
// need to move.
package git
