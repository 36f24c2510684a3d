package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-studio/internal/store"
	"github.com/jonathan/resume-studio/internal/types"
)

var _ store.DocumentStore = (*DB)(nil)

// Get retrieves a document by id, or (nil, nil) when no such row exists.
// Loaded documents run through the same migration and normalization chain
// as file-store loads, so the caller never sees pre-repair state.
func (db *DB) Get(ctx context.Context, id string) (*types.Document, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		// An id that is not a UUID cannot address a row.
		return nil, nil
	}

	var (
		doc          types.Document
		contentJSON  []byte
		themeJSON    []byte
		sectionOrder []string
	)
	err = db.pool.QueryRow(ctx,
		`SELECT id::text, name, content, theme, section_order, schema_version, created_at, updated_at
		 FROM documents WHERE id = $1`,
		uid,
	).Scan(&doc.ID, &doc.Name, &contentJSON, &themeJSON, &sectionOrder,
		&doc.SchemaVersion, &doc.CreatedAt, &doc.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	if err := json.Unmarshal(contentJSON, &doc.Content); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document content: %w", err)
	}
	if err := json.Unmarshal(themeJSON, &doc.Theme); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document theme: %w", err)
	}
	doc.SectionOrder = toSectionOrder(sectionOrder)

	store.Migrate(&doc)
	store.NormalizeDocument(&doc)

	return &doc, nil
}

// List returns the listing projection of every document, most recently
// updated first.
func (db *DB) List(ctx context.Context) ([]types.DocumentInfo, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id::text, name, updated_at FROM documents ORDER BY updated_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var infos []types.DocumentInfo
	for rows.Next() {
		var info types.DocumentInfo
		if err := rows.Scan(&info.ID, &info.Name, &info.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document row: %w", err)
		}
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read document rows: %w", err)
	}
	return infos, nil
}

// Create inserts a new document. The id must not already exist.
func (db *DB) Create(ctx context.Context, doc *types.Document) error {
	uid, err := uuid.Parse(doc.ID)
	if err != nil {
		return fmt.Errorf("document id must be a UUID: %w", err)
	}

	contentJSON, themeJSON, err := marshalDocument(doc)
	if err != nil {
		return err
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO documents (id, name, content, theme, section_order, schema_version, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		uid, doc.Name, contentJSON, themeJSON, fromSectionOrder(doc.SectionOrder),
		doc.SchemaVersion, doc.CreatedAt, doc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}
	return nil
}

// Save writes an existing document back, bumping updated_at so stale
// snapshots of it become detectable. The bump happens on the passed
// document, matching the file store, so callers can hand it straight to
// the layout engine afterwards.
func (db *DB) Save(ctx context.Context, doc *types.Document) error {
	uid, err := uuid.Parse(doc.ID)
	if err != nil {
		return fmt.Errorf("document id must be a UUID: %w", err)
	}

	contentJSON, themeJSON, err := marshalDocument(doc)
	if err != nil {
		return err
	}

	doc.UpdatedAt = time.Now().UTC()
	tag, err := db.pool.Exec(ctx,
		`UPDATE documents
		 SET name = $2, content = $3, theme = $4, section_order = $5, schema_version = $6, updated_at = $7
		 WHERE id = $1`,
		uid, doc.Name, contentJSON, themeJSON, fromSectionOrder(doc.SectionOrder),
		doc.SchemaVersion, doc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("document %s does not exist", doc.ID)
	}
	return nil
}

// Delete removes a document. Deleting an absent id is a no-op.
func (db *DB) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil
	}
	_, err = db.pool.Exec(ctx, `DELETE FROM documents WHERE id = $1`, uid)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}

func marshalDocument(doc *types.Document) (content, theme []byte, err error) {
	content, err = json.Marshal(doc.Content)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal document content: %w", err)
	}
	theme, err = json.Marshal(doc.Theme)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal document theme: %w", err)
	}
	return content, theme, nil
}

func toSectionOrder(tokens []string) []types.SectionKind {
	order := make([]types.SectionKind, len(tokens))
	for i, token := range tokens {
		order[i] = types.SectionKind(token)
	}
	return order
}

func fromSectionOrder(order []types.SectionKind) []string {
	tokens := make([]string, len(order))
	for i, kind := range order {
		tokens[i] = string(kind)
	}
	return tokens
}
