package crawler

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"confviz/internal/extractor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func TestCrawler_ScanTree(t *testing.T) {
	root := writeTree(t, map[string]string{
		"app.ini":           "[db]\nhost=localhost\n",
		"vars.properties":   "timeout = 30\n",
		"nested/config.yml": "server:\n  port: 8080\n",
		"templates/page.j2": "{{ username }}",
		"readme.md":         "not a config file",
		".git/ignored.yml":  "skipped: true\n",
		"broken.ini":        "no delimiter here\n",
	})

	c, err := NewCrawler(discardLogger(), []string{".git"})
	require.NoError(t, err)

	results := make(map[string]FileRelations)
	err = c.ScanTree(root, func(f FileRelations) {
		results[f.Name] = f
	})
	require.NoError(t, err)

	t.Run("Recognized files dispatched", func(t *testing.T) {
		assert.Len(t, results, 4)
		assert.Equal(t, extractor.FormatINI, results["app.ini"].Format)
		assert.Equal(t, extractor.FormatProperties, results["vars.properties"].Format)
		assert.Equal(t, extractor.FormatYAML, results["config.yml"].Format)
		assert.Equal(t, extractor.FormatJinja, results["page.j2"].Format)
	})

	t.Run("Relations extracted", func(t *testing.T) {
		assert.Equal(t, []extractor.Relation{
			{Scope: "db", Key: "host", Value: "localhost"},
		}, results["app.ini"].Relations)
		assert.Equal(t, []extractor.Relation{
			{Key: "username"},
		}, results["page.j2"].Relations)
	})

	t.Run("Unrecognized files skipped", func(t *testing.T) {
		_, ok := results["readme.md"]
		assert.False(t, ok)
	})

	t.Run("Ignored directories skipped", func(t *testing.T) {
		_, ok := results["ignored.yml"]
		assert.False(t, ok)
	})

	t.Run("Broken file skipped without aborting", func(t *testing.T) {
		_, ok := results["broken.ini"]
		assert.False(t, ok)
	})
}

func TestCrawler_EmptyDirectory(t *testing.T) {
	c, err := NewCrawler(discardLogger(), nil)
	require.NoError(t, err)

	var calls int
	err = c.ScanTree(t.TempDir(), func(FileRelations) { calls++ })
	require.NoError(t, err)
	assert.Zero(t, calls)
}

func TestCrawler_MissingRoot(t *testing.T) {
	c, err := NewCrawler(discardLogger(), nil)
	require.NoError(t, err)

	err = c.ScanTree(filepath.Join(t.TempDir(), "absent"), func(FileRelations) {})
	assert.Error(t, err)
}
