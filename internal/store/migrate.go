package store

import "github.com/jonathan/resume-studio/internal/types"

// CurrentSchemaVersion is the document schema this build reads and writes.
//
// History:
//
//	0 — original format: no section order, no stable entry ids
//	1 — section_order persisted, entries carry uuid ids
//	2 — languages section added
const CurrentSchemaVersion = 2

// Migrate walks a document up the version chain to CurrentSchemaVersion.
// It returns true when the document changed. Migration runs once at load
// time; the layout engine never sees a pre-migration document.
func Migrate(doc *types.Document) bool {
	if doc.SchemaVersion >= CurrentSchemaVersion {
		return false
	}

	if doc.SchemaVersion < 1 {
		migrateV1(doc)
		doc.SchemaVersion = 1
	}
	if doc.SchemaVersion < 2 {
		migrateV2(doc)
		doc.SchemaVersion = 2
	}

	return true
}

// migrateV1 seeds the fields version 0 documents never stored: the
// persisted section order and stable entry ids.
func migrateV1(doc *types.Document) {
	if len(doc.SectionOrder) == 0 {
		doc.SectionOrder = types.CanonicalSectionOrder()
	}
	EnsureEntryIDs(&doc.Content)
}

// migrateV2 introduces the languages section. Existing documents get the
// section kind appended to their order; content stays empty until the user
// adds entries, so layouts are unchanged.
func migrateV2(doc *types.Document) {
	for _, kind := range doc.SectionOrder {
		if kind == types.SectionLanguages {
			return
		}
	}
	doc.SectionOrder = append(doc.SectionOrder, types.SectionLanguages)
}
