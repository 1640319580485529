package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/user/esg-source-catalog/internal/entity"
	"github.com/user/esg-source-catalog/internal/repository"
)

const (
	indent   = "    "
	fileMode = 0644
)

var errMissingSources = errors.New(`"sources" must be an array`)

// CatalogRepoImpl stores the catalog document as a pretty-printed JSON file.
type CatalogRepoImpl struct {
	path   string
	atomic bool
}

// NewCatalogRepo creates a repository for the file at path. With atomic set,
// Save writes a temporary file next to path and renames it into place;
// otherwise the file is truncated and rewritten directly.
func NewCatalogRepo(path string, atomic bool) *CatalogRepoImpl {
	return &CatalogRepoImpl{path: path, atomic: atomic}
}

// Location returns the file path.
func (r *CatalogRepoImpl) Location() string {
	return r.path
}

// Load reads and decodes the file. A missing file yields an empty document.
func (r *CatalogRepoImpl) Load(ctx context.Context) (*entity.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return entity.NewDocument(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	doc, err := decodeDocument(data)
	if err != nil {
		return nil, &repository.ParseError{Path: r.path, Err: err}
	}
	return doc, nil
}

// Save encodes doc and replaces the file.
func (r *CatalogRepoImpl) Save(ctx context.Context, doc *entity.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := encodeDocument(doc)
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	if r.atomic {
		return writeFileAtomic(r.path, data)
	}
	if err := os.WriteFile(r.path, data, fileMode); err != nil {
		return fmt.Errorf("failed to write catalog file: %w", err)
	}
	return nil
}

func decodeDocument(data []byte) (*entity.Document, error) {
	var wire struct {
		UpdatedAt json.RawMessage  `json:"updated_at"`
		Sources   *[]entity.Source `json:"sources"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, err
	}
	if wire.Sources == nil {
		return nil, errMissingSources
	}

	doc := &entity.Document{Sources: *wire.Sources}
	var updatedAt string
	if len(wire.UpdatedAt) > 0 && json.Unmarshal(wire.UpdatedAt, &updatedAt) == nil {
		doc.UpdatedAt = &updatedAt
	}
	return doc, nil
}

func encodeDocument(doc *entity.Document) ([]byte, error) {
	out := entity.Document{UpdatedAt: doc.UpdatedAt, Sources: doc.Sources}
	if out.Sources == nil {
		out.Sources = []entity.Source{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(out); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeFileAtomic writes data to a temporary file in the target directory and
// renames it over path.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, fileMode); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to set temp file mode: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to move temp file into place: %w", err)
	}
	return nil
}
