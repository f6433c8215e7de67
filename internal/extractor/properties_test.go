package extractor

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertiesExtractor_Extract(t *testing.T) {
	path := writeFile(t, "vars.properties", `timeout = 30
name=confviz
# a comment line without the delimiter is ignored
url=http://localhost:8080?a=b
blank line
`)

	ext := &PropertiesExtractor{}
	relations, err := ext.Extract(path)
	require.NoError(t, err)

	t.Run("Trimmed key and value", func(t *testing.T) {
		assert.Contains(t, relations, Relation{Key: "timeout", Value: "30"})
	})

	t.Run("Split on first delimiter only", func(t *testing.T) {
		assert.Contains(t, relations, Relation{Key: "url", Value: "http://localhost:8080?a=b"})
	})

	t.Run("Lines without delimiter ignored", func(t *testing.T) {
		assert.Len(t, relations, 3)
	})

	t.Run("No scope", func(t *testing.T) {
		for _, rel := range relations {
			assert.Empty(t, rel.Scope)
		}
	})
}

func TestPropertiesExtractor_MissingFile(t *testing.T) {
	ext := &PropertiesExtractor{}
	_, err := ext.Extract(filepath.Join(t.TempDir(), "absent.properties"))
	assert.Error(t, err)
}
