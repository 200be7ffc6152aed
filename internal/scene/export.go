package scene

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"mazegen/internal/geometry"
)

// DefaultIndent matches the indentation the simulator's own config uses.
const DefaultIndent = 4

// WallSource is anything that can hand over a finished wall list.
type WallSource interface {
	Walls() []geometry.Wall
}

// Exporter merges generated walls into a scene document on disk.
type Exporter struct {
	Path   string // document to read
	Output string // destination; defaults to Path
	Indent int
	Logger *zap.Logger
}

// Export reads the document, replaces everything after the border entries
// with src's walls and atomically replaces the destination. Nothing is
// written when the document cannot be read.
func (e *Exporter) Export(src WallSource) error {
	logger := e.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	out := e.Output
	if out == "" {
		out = e.Path
	}
	indent := e.Indent
	if indent <= 0 {
		indent = DefaultIndent
	}

	doc, err := Read(e.Path)
	if err != nil {
		return err
	}
	walls := src.Walls()
	if err := doc.SetWalls(walls); err != nil {
		return writeError(out, err)
	}
	data, err := doc.Marshal(indent)
	if err != nil {
		return writeError(out, err)
	}
	if err := WriteFile(out, data); err != nil {
		return err
	}

	logger.Info("scene exported",
		zap.String("path", out),
		zap.Int("borders", BorderCount),
		zap.Int("walls", len(walls)))
	return nil
}

// Read loads and parses the scene document at path.
func Read(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, readError(path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, readError(path, err)
	}
	return doc, nil
}

// WriteFile replaces path with data via a temporary file in the same
// directory and a rename, so readers see either the old or the new
// document. An existing file's permissions are kept.
func WriteFile(path string, data []byte) error {
	perm := os.FileMode(0o644)
	if fi, err := os.Stat(path); err == nil {
		perm = fi.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return writeError(path, err)
	}
	tmpName := tmp.Name()
	fail := func(err error) error {
		tmp.Close()
		os.Remove(tmpName)
		return writeError(path, err)
	}

	if _, err := tmp.Write(data); err != nil {
		return fail(err)
	}
	if err := tmp.Sync(); err != nil {
		return fail(err)
	}
	if err := tmp.Chmod(perm); err != nil {
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return writeError(path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return writeError(path, err)
	}
	return nil
}
