package extractor

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// PropertiesExtractor extracts key=value pairs from Java-style
// .property/.properties files.
type PropertiesExtractor struct{}

func (e *PropertiesExtractor) Format() Format { return FormatProperties }

// Extract splits every line containing '=' on the first occurrence and
// trims both halves. Lines without '=' are ignored. Properties files have
// no section concept, so every relation carries an empty scope.
func (e *PropertiesExtractor) Extract(path string) ([]Relation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open properties file %s: %w", path, err)
	}
	defer f.Close()

	var relations []Relation
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), "=")
		if !ok {
			continue
		}
		relations = append(relations, Relation{
			Key:   strings.TrimSpace(key),
			Value: strings.TrimSpace(value),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read properties file %s: %w", path, err)
	}
	return relations, nil
}
