package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForFile_Classification(t *testing.T) {
	cases := []struct {
		name   string
		format Format
		ok     bool
	}{
		{"page.j2", FormatJinja, true},
		{"template.jinja", FormatJinja, true},
		{"config.yml", FormatYAML, true},
		{"config.yaml", FormatYAML, true},
		{"app.ini", FormatINI, true},
		{"vars.property", FormatProperties, true},
		{"vars.properties", FormatProperties, true},
		{"readme.md", "", false},
		{"noextension", "", false},
	}

	for _, tc := range cases {
		format, ok := ForFile(tc.name)
		assert.Equal(t, tc.ok, ok, tc.name)
		assert.Equal(t, tc.format, format, tc.name)
	}
}

func TestForFile_TemplatePrecedence(t *testing.T) {
	// A jinja-named file wins over its extension; classification is purely
	// syntactic on the name.
	format, ok := ForFile("jinja_vars.yml")
	require.True(t, ok)
	assert.Equal(t, FormatJinja, format)
}

func TestNew_AllFormats(t *testing.T) {
	for _, format := range []Format{FormatJinja, FormatYAML, FormatINI, FormatProperties} {
		ext, err := New(format)
		require.NoError(t, err)
		assert.Equal(t, format, ext.Format())
	}

	_, err := New("toml")
	assert.Error(t, err)
}
