package extractor

import (
	"fmt"

	"github.com/go-ini/ini"
)

// INIExtractor extracts section/key/value triples from .ini files.
type INIExtractor struct{}

func (e *INIExtractor) Format() Format { return FormatINI }

// Extract parses the file with a strict section/key/value grammar.
// Keys outside any section carry an empty scope; the assembler falls back
// to the file name for those.
func (e *INIExtractor) Extract(path string) ([]Relation, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ini file %s: %w", path, err)
	}

	var relations []Relation
	for _, section := range cfg.Sections() {
		scope := section.Name()
		if scope == ini.DefaultSection {
			scope = ""
		}
		for _, key := range section.Keys() {
			relations = append(relations, Relation{
				Scope: scope,
				Key:   key.Name(),
				Value: key.Value(),
			})
		}
	}
	return relations, nil
}
