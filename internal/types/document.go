package types

import "time"

// Document is the persisted envelope around one résumé: the content tree
// plus the two persisted inputs that shape its layout (theme configuration,
// section order) and the schema version driving load-time migration.
type Document struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Content       Resume        `json:"content"`
	Theme         ThemeConfig   `json:"theme"`
	SectionOrder  []SectionKind `json:"section_order"`
	SchemaVersion int           `json:"schema_version"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// DocumentInfo is the listing projection of a document, returned by store
// List operations so callers never load full content trees to show a picker.
type DocumentInfo struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Info returns the listing projection of the document.
func (d *Document) Info() DocumentInfo {
	return DocumentInfo{ID: d.ID, Name: d.Name, UpdatedAt: d.UpdatedAt}
}
