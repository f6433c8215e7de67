package extractor

import (
	"fmt"
	"strings"
)

// FormatExtractor defines the interface that each format parser must implement.
// Implementations are stateless: path in, relations out. Parse failures are
// returned to the caller, which decides whether to skip the file or abort.
type FormatExtractor interface {
	Format() Format
	Extract(path string) ([]Relation, error)
}

// New creates an extractor for a given format.
func New(format Format) (FormatExtractor, error) {
	switch format {
	case FormatJinja:
		return &JinjaExtractor{}, nil
	case FormatYAML:
		return &YAMLExtractor{}, nil
	case FormatINI:
		return &INIExtractor{}, nil
	case FormatProperties:
		return &PropertiesExtractor{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// ForFile classifies a file by name alone; content is never sniffed.
// The precedence order matters: a file named "jinja_vars.yml" is a template.
func ForFile(name string) (Format, bool) {
	switch {
	case strings.HasSuffix(name, ".j2") || strings.Contains(name, "jinja"):
		return FormatJinja, true
	case strings.HasSuffix(name, ".yml") || strings.HasSuffix(name, ".yaml"):
		return FormatYAML, true
	case strings.HasSuffix(name, ".ini"):
		return FormatINI, true
	case strings.HasSuffix(name, ".property") || strings.HasSuffix(name, ".properties"):
		return FormatProperties, true
	default:
		return "", false
	}
}
