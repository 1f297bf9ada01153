// Package fs stores CDP documentation corpora as plain text files.
package fs

import (
	"bufio"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/cdpdoc"
)

// maxLineSize bounds a single corpus line. Scraped pages can put a whole
// paragraph on one line, well past bufio's 64KiB default.
const maxLineSize = 1 << 20

// Ensure CorpusStore implements cdpdoc.CorpusService at compile time.
var _ cdpdoc.CorpusService = (*CorpusStore)(nil)

// CorpusStore implements cdpdoc.CorpusService over a directory holding one
// <cdp>.txt file per platform. Reads never block writers: ReplaceLines
// writes a temporary file and renames it over the old corpus.
type CorpusStore struct {
	dir string
}

// NewCorpusStore creates a CorpusStore rooted at dir.
func NewCorpusStore(dir string) *CorpusStore {
	return &CorpusStore{dir: dir}
}

// Dir returns the corpus directory.
func (s *CorpusStore) Dir() string { return s.dir }

// Path returns the corpus file for cdp.
func (s *CorpusStore) Path(cdp cdpdoc.CDP) string {
	return filepath.Join(s.dir, string(cdp)+".txt")
}

func (s *CorpusStore) Lines(ctx context.Context, cdp cdpdoc.CDP) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.Path(cdp))
	if errors.Is(err, os.ErrNotExist) {
		return nil, cdpdoc.Errorf(cdpdoc.ENOTFOUND, "documentation for %s not found", cdp)
	} else if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *CorpusStore) ReplaceLines(ctx context.Context, cdp cdpdoc.CDP, lines []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if cdp == "" {
		return cdpdoc.Errorf(cdpdoc.EINVALID, "cdp required")
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, string(cdp)+".*.tmp")
	if err != nil {
		return err
	}
	// Remove is a no-op once the rename succeeds.
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	for _, line := range cdpdoc.CleanLines(lines) {
		if _, err := w.WriteString(line + "\n"); err != nil {
			tmp.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), s.Path(cdp))
}
