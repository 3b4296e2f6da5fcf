package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const starterConfig = `# gitfleet configuration
#
# Roots scanned for git repositories when no --root flag is given.
# Paths must be absolute or start with ~.
# roots = ["~/code", "~/work"]

# Scan full subtrees instead of only immediate children of each root.
# recurse = false

# Maximum number of repository operations running at once.
# Unset, fetch uses 8 and status uses 4.
# max_parallel = 8

# Per-repository operation timeout in seconds.
# timeout_seconds = 300

# Keep clean repositories in status reports.
# include_clean = false
`

// WriteStarter writes a commented starter config file. Refuses to overwrite
// an existing file.
func WriteStarter(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(starterConfig), 0644)
}
