package storage

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brick-duel/internal/config"
)

// FileStore keeps the high-score table in a text file, one score per line.
type FileStore struct {
	path   string
	logger *log.Logger
}

// NewFileStore creates a store backed by path. A leading ~ is expanded to
// the home directory. The file is not touched until the first load or save.
func NewFileStore(path string, opts ...Option) (*FileStore, error) {
	expanded, err := config.ExpandHome(path)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}
	o := buildOptions(opts)
	return &FileStore{path: expanded, logger: o.logger}, nil
}

// Path returns the file backing the store.
func (f *FileStore) Path() string {
	return f.path
}

// ReadHighScores parses the file. Lines may be in any order; blank lines
// are ignored.
func (f *FileStore) ReadHighScores() ([]int, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot read %s: %w", f.path, err)
	}

	var scores []int
	sc := bufio.NewScanner(bytes.NewReader(data))
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		n, err := strconv.Atoi(text)
		if err != nil {
			return nil, fmt.Errorf("storage: %s line %d: %w", f.path, line, err)
		}
		scores = append(scores, n)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("storage: cannot scan %s: %w", f.path, err)
	}
	return NormalizeHighScores(scores), nil
}

// LoadHighScores returns the stored table, or five zeros if the file is
// missing or corrupt.
func (f *FileStore) LoadHighScores() []int {
	scores, err := f.ReadHighScores()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			f.logger.Warn("high scores unreadable, starting fresh", "path", f.path, "err", err)
		}
		return DefaultHighScores()
	}
	return scores
}

// SaveHighScores writes the normalized table, creating parent directories
// as needed.
func (f *FileStore) SaveHighScores(scores []int) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory for %s: %w", f.path, err)
	}

	var buf bytes.Buffer
	for _, s := range NormalizeHighScores(scores) {
		buf.WriteString(strconv.Itoa(s))
		buf.WriteByte('\n')
	}
	if err := os.WriteFile(f.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("storage: cannot write %s: %w", f.path, err)
	}
	return nil
}
