// Package env detects and loads the conventional environment-file artifact
// that seeds a freshly created workspace container with extra variables.
package env

import (
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// ArtifactName is the conventional file checked in the invoking working
// directory.
const ArtifactName = ".env"

// DetectAt reports whether an environment artifact is present at path.
// Checked once per invocation; only the create branch consumes the answer.
func DetectAt(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// Load parses the artifact into KEY=VALUE pairs for container creation.
// The pairs are sorted so the create request is deterministic. A present
// but malformed artifact is an error: silently launching without the
// operator's variables would be worse than failing.
func Load(path string) ([]string, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(values))
	for _, k := range keys {
		pairs = append(pairs, k+"="+values[k])
	}

	log.Debug("Loaded environment artifact", "path", path, "vars", len(pairs))
	return pairs, nil
}
