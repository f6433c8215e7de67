package crawler

import (
	"io/fs"
	"log/slog"
	"path/filepath"

	"confviz/internal/extractor"
)

// FileRelations is the per-file result streamed back during a scan.
type FileRelations struct {
	Path      string
	Name      string // base name; the graph identity of the file
	Format    extractor.Format
	Relations []extractor.Relation
}

// Crawler scans a directory tree for configuration artifacts and
// dispatches each recognized file to its format extractor.
type Crawler struct {
	logger     *slog.Logger
	ignored    []string
	extractors map[extractor.Format]extractor.FormatExtractor
}

// NewCrawler creates a crawler with extractors for every supported format.
// Directory names in ignored are skipped entirely.
func NewCrawler(logger *slog.Logger, ignored []string) (*Crawler, error) {
	extractors := make(map[extractor.Format]extractor.FormatExtractor)
	for _, format := range []extractor.Format{
		extractor.FormatJinja,
		extractor.FormatYAML,
		extractor.FormatINI,
		extractor.FormatProperties,
	} {
		ext, err := extractor.New(format)
		if err != nil {
			return nil, err
		}
		extractors[format] = ext
	}
	return &Crawler{
		logger:     logger,
		ignored:    ignored,
		extractors: extractors,
	}, nil
}

// ScanTree walks the root directory and streams per-file relations through
// the callback. Unrecognized files are skipped without a trace; files that
// fail to read or parse are logged and skipped so one bad file never
// aborts the scan. Only traversal errors abort.
func (c *Crawler) ScanTree(root string, onFile func(FileRelations)) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			for _, ign := range c.ignored {
				if d.Name() == ign {
					return filepath.SkipDir
				}
			}
			return nil
		}

		name := d.Name()
		format, ok := extractor.ForFile(name)
		if !ok {
			return nil
		}

		c.logger.Info("processing file", "file", name, "format", format)

		relations, err := c.extractors[format].Extract(path)
		if err != nil {
			c.logger.Error("extraction failed, skipping file", "file", path, "error", err)
			return nil
		}

		onFile(FileRelations{
			Path:      path,
			Name:      name,
			Format:    format,
			Relations: relations,
		})
		return nil
	})
}
