// Package store persists documents and owns every mutation of one: load
// with schema validation, version migration and self-healing
// normalization, atomic save, path-addressed field updates and section and
// entry reordering. The layout engine reads content through here and never
// mutates it.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-studio/internal/schemas"
	"github.com/jonathan/resume-studio/internal/types"
)

// DocumentStore is the persistence interface the server accepts. Lookups
// return (nil, nil) when no document has the given id.
type DocumentStore interface {
	Get(ctx context.Context, id string) (*types.Document, error)
	List(ctx context.Context) ([]types.DocumentInfo, error)
	Create(ctx context.Context, doc *types.Document) error
	Save(ctx context.Context, doc *types.Document) error
	Delete(ctx context.Context, id string) error
}

// NewDocument returns a seeded empty document: fresh UUID, full canonical
// section order, default theme, current schema version.
func NewDocument(name string) *types.Document {
	now := time.Now().UTC()
	return &types.Document{
		ID:            uuid.New().String(),
		Name:          name,
		SectionOrder:  types.CanonicalSectionOrder(),
		SchemaVersion: CurrentSchemaVersion,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// LoadDocumentFile reads one document from a JSON file: schema validation
// when the schema file is resolvable, then unmarshal, migration and
// normalization. The returned document always satisfies the invariants the
// layout engine assumes, whatever the file held.
func LoadDocumentFile(path string) (*types.Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	// Validate against schema (if schema file exists)
	schemaPath := schemas.ResolveSchemaPath("schemas/document.schema.json")
	if schemaPath != "" {
		if err := schemas.ValidateJSONBytes(schemaPath, content); err != nil {
			var validationErr *schemas.ValidationError
			if errors.As(err, &validationErr) {
				return nil, &LoadError{
					Message: fmt.Sprintf("document %s does not validate against schema", path),
					Cause:   err,
				}
			}
			// Schema loading issues are not the document's fault; fall
			// through to structural parsing.
		}
	}

	var doc types.Document
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	Migrate(&doc)
	NormalizeDocument(&doc)

	return &doc, nil
}

// SaveDocumentFile writes a document to a JSON file atomically: bump
// updated_at, marshal pretty-printed, write a temp file in the same
// directory and rename it over the target.
func SaveDocumentFile(path string, doc *types.Document) error {
	doc.UpdatedAt = time.Now().UTC()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &SaveError{Message: "failed to marshal document", Cause: err}
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".document-*.json")
	if err != nil {
		return &SaveError{
			Message: fmt.Sprintf("failed to create temp file in %s", dir),
			Cause:   err,
		}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &SaveError{Message: "failed to write temp file", Cause: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &SaveError{Message: "failed to close temp file", Cause: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &SaveError{
			Message: fmt.Sprintf("failed to replace %s", path),
			Cause:   err,
		}
	}
	return nil
}

// FileStore keeps one pretty-printed JSON file per document in a single
// directory, named <id>.json. It serializes access with a mutex; the
// server runs one FileStore per process.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore opens (creating if needed) the documents directory.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to create documents directory %s", dir),
			Cause:   err,
		}
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(id string) string {
	return filepath.Join(s.dir, id+".json")
}

// Get loads one document by id, or (nil, nil) when it does not exist.
func (s *FileStore) Get(ctx context.Context, id string) (*types.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := LoadDocumentFile(s.path(id))
	if err != nil {
		var loadErr *LoadError
		if errors.As(err, &loadErr) && os.IsNotExist(loadErr.Cause) {
			return nil, nil
		}
		return nil, err
	}
	return doc, nil
}

// List returns the listing projection of every document in the store,
// sorted by most recently updated.
func (s *FileStore) List(ctx context.Context) ([]types.DocumentInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read documents directory %s", s.dir),
			Cause:   err,
		}
	}

	infos := make([]types.DocumentInfo, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") || strings.HasPrefix(name, ".") {
			continue
		}
		doc, err := LoadDocumentFile(filepath.Join(s.dir, name))
		if err != nil {
			// One corrupt file must not hide the rest of the store.
			continue
		}
		infos = append(infos, doc.Info())
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].UpdatedAt.After(infos[j].UpdatedAt)
	})
	return infos, nil
}

// Create writes a new document. The id must not already exist.
func (s *FileStore) Create(ctx context.Context, doc *types.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path(doc.ID)); err == nil {
		return &SaveError{Message: fmt.Sprintf("document %s already exists", doc.ID)}
	}
	return SaveDocumentFile(s.path(doc.ID), doc)
}

// Save writes an existing document back, bumping updated_at.
func (s *FileStore) Save(ctx context.Context, doc *types.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return SaveDocumentFile(s.path(doc.ID), doc)
}

// Delete removes a document. Deleting an absent id is a no-op.
func (s *FileStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(id))
	if err != nil && !os.IsNotExist(err) {
		return &SaveError{
			Message: fmt.Sprintf("failed to delete document %s", id),
			Cause:   err,
		}
	}
	return nil
}
