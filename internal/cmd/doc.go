// Package cmd provides helpers for executing external commands with proper
// error handling.
//
// This package wraps [os/exec.Cmd] to capture stderr and include it in error
// messages, making command failures more informative for users.
//
// # Design Notes
//
// gitfleet shells out to the git CLI rather than using Go git libraries.
// This approach is simpler, more reliable, and ensures compatibility with
// user configurations (SSH keys, credential helpers, etc.). The subprocess
// boundary is deliberately narrow: run a command in a directory, get back
// output and an error.
package cmd
