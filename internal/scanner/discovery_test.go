package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for FileDiscovery:
// - Include patterns select matching files, root-level included
// - Ignore patterns drop files and whole directories
// - The .docdex directory is always skipped
// - Invalid glob patterns fail construction

func TestDiscovery_IncludeAndIgnore(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	files := map[string]string{
		"main.c":             "int main(void) { return 0; }",
		"models.py":          "x = 1",
		"src/util.c":         "",
		"src/api.h":          "",
		"vendor/third.c":     "",
		"docs/notes.md":      "",
		".docdex/config.yml": "",
	}
	for name, content := range files {
		path := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	fd, err := NewFileDiscovery(tmpDir,
		[]string{"**/*.c", "**/*.h", "**/*.py"},
		[]string{"vendor/**"})
	require.NoError(t, err)

	found, err := fd.DiscoverFiles()
	require.NoError(t, err)

	rel := make([]string, 0, len(found))
	for _, f := range found {
		r, err := filepath.Rel(tmpDir, f)
		require.NoError(t, err)
		rel = append(rel, filepath.ToSlash(r))
	}

	assert.ElementsMatch(t, []string{"main.c", "models.py", "src/util.c", "src/api.h"}, rel)
}

func TestDiscovery_InvalidPattern(t *testing.T) {
	t.Parallel()

	_, err := NewFileDiscovery(t.TempDir(), []string{"[unclosed"}, nil)
	assert.Error(t, err)
}
