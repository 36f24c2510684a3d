package store

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/resume-studio/internal/types"
)

// ApplyField writes one value into the content tree at the given canonical
// path. This is the only channel through which content changes: the
// overlay commits the value of an edited zone here and then recomputes the
// layout from scratch.
//
// Aggregate paths take structured string values: "skills" a comma-separated
// list, "languages" a comma-separated list of "Name: Level" pairs, periods
// the machine form "2006-01 - 2006-01" (or "present" as the end). Writing
// an empty value to a task line removes it; writing to the index one past
// the last task appends a new line.
func ApplyField(doc *types.Document, path, value string) error {
	parts := strings.Split(path, ".")
	r := &doc.Content

	switch parts[0] {
	case "personal":
		return applyPersonal(&r.Personal, path, parts, value)
	case "summary":
		if len(parts) != 1 {
			return unknownPath(path)
		}
		r.Summary = value
		return nil
	case "skills":
		if len(parts) != 1 {
			return unknownPath(path)
		}
		r.Skills = splitList(value)
		NormalizeSkills(r)
		return nil
	case "languages":
		if len(parts) != 1 {
			return unknownPath(path)
		}
		r.Languages = parseLanguages(value, r.Languages)
		return nil
	case "experience":
		return applyExperience(r, path, parts, value)
	case "education":
		return applyEducation(r, path, parts, value)
	case "language":
		return applyLanguage(r, path, parts, value)
	}
	return unknownPath(path)
}

func applyPersonal(p *types.Personal, path string, parts []string, value string) error {
	if len(parts) == 2 {
		switch parts[1] {
		case "first_name":
			p.FirstName = value
		case "last_name":
			p.LastName = value
		case "title":
			p.Title = value
		case "photo":
			p.Photo = value
		default:
			return unknownPath(path)
		}
		return nil
	}
	if len(parts) == 3 && parts[1] == "contact" {
		switch parts[2] {
		case "email":
			p.Contact.Email = value
		case "phone":
			p.Contact.Phone = value
		case "location":
			p.Contact.Location = value
		case "website":
			p.Contact.Website = value
		default:
			return unknownPath(path)
		}
		return nil
	}
	return unknownPath(path)
}

func applyExperience(r *types.Resume, path string, parts []string, value string) error {
	if len(parts) < 3 {
		return unknownPath(path)
	}
	entry, ok := r.ExperienceByID(parts[1])
	if !ok {
		return &FieldError{Path: path, Message: "no experience entry with this id"}
	}

	switch {
	case len(parts) == 3 && parts[2] == "role":
		entry.Role = value
	case len(parts) == 3 && parts[2] == "company":
		entry.Company = value
	case len(parts) == 3 && parts[2] == "period":
		entry.Period = parsePeriod(value)
	case len(parts) == 4 && parts[2] == "period" && parts[3] == "start":
		entry.Period.Start = strings.TrimSpace(value)
	case len(parts) == 4 && parts[2] == "period" && parts[3] == "end":
		entry.Period.End = strings.TrimSpace(value)
	case len(parts) == 4 && parts[2] == "task":
		return applyTask(entry, path, parts[3], value)
	default:
		return unknownPath(path)
	}
	return nil
}

// applyTask edits one task line. An empty value deletes the line; the
// index one past the end appends, which is how new lines enter a document
// through the field-update channel.
func applyTask(entry *types.ExperienceEntry, path, index, value string) error {
	i, err := strconv.Atoi(index)
	if err != nil || i < 0 {
		return unknownPath(path)
	}

	trimmed := strings.TrimSpace(value)
	switch {
	case i < len(entry.Tasks) && trimmed == "":
		entry.Tasks = append(entry.Tasks[:i], entry.Tasks[i+1:]...)
	case i < len(entry.Tasks):
		entry.Tasks[i] = value
	case i == len(entry.Tasks) && trimmed != "":
		entry.Tasks = append(entry.Tasks, value)
	case i == len(entry.Tasks):
		// Deleting a line that does not exist is a no-op.
	default:
		return &FieldError{Path: path, Message: "task index out of range"}
	}
	return nil
}

func applyEducation(r *types.Resume, path string, parts []string, value string) error {
	if len(parts) < 3 {
		return unknownPath(path)
	}
	entry, ok := r.EducationByID(parts[1])
	if !ok {
		return &FieldError{Path: path, Message: "no education entry with this id"}
	}

	switch {
	case len(parts) == 3 && parts[2] == "degree":
		entry.Degree = value
	case len(parts) == 3 && parts[2] == "school":
		entry.School = value
	case len(parts) == 3 && parts[2] == "period":
		entry.Period = parsePeriod(value)
	case len(parts) == 4 && parts[2] == "period" && parts[3] == "start":
		entry.Period.Start = strings.TrimSpace(value)
	case len(parts) == 4 && parts[2] == "period" && parts[3] == "end":
		entry.Period.End = strings.TrimSpace(value)
	default:
		return unknownPath(path)
	}
	return nil
}

func applyLanguage(r *types.Resume, path string, parts []string, value string) error {
	if len(parts) != 3 {
		return unknownPath(path)
	}
	entry, ok := r.LanguageByID(parts[1])
	if !ok {
		return &FieldError{Path: path, Message: "no language entry with this id"}
	}

	switch parts[2] {
	case "name":
		entry.Name = value
	case "level":
		entry.Level = value
	default:
		return unknownPath(path)
	}
	return nil
}

// ResolveField reads the current value at a canonical path, in the same
// string form ApplyField accepts. The overlay seeds its editors with this.
func ResolveField(doc *types.Document, path string) (string, error) {
	parts := strings.Split(path, ".")
	r := &doc.Content

	switch parts[0] {
	case "personal":
		return resolvePersonal(&r.Personal, path, parts)
	case "summary":
		if len(parts) != 1 {
			return "", unknownPath(path)
		}
		return r.Summary, nil
	case "skills":
		if len(parts) != 1 {
			return "", unknownPath(path)
		}
		return strings.Join(r.Skills, ", "), nil
	case "languages":
		if len(parts) != 1 {
			return "", unknownPath(path)
		}
		return formatLanguages(r.Languages), nil
	case "experience":
		return resolveExperience(r, path, parts)
	case "education":
		return resolveEducation(r, path, parts)
	case "language":
		return resolveLanguage(r, path, parts)
	}
	return "", unknownPath(path)
}

func resolvePersonal(p *types.Personal, path string, parts []string) (string, error) {
	if len(parts) == 2 {
		switch parts[1] {
		case "first_name":
			return p.FirstName, nil
		case "last_name":
			return p.LastName, nil
		case "title":
			return p.Title, nil
		case "photo":
			return p.Photo, nil
		}
	}
	if len(parts) == 3 && parts[1] == "contact" {
		switch parts[2] {
		case "email":
			return p.Contact.Email, nil
		case "phone":
			return p.Contact.Phone, nil
		case "location":
			return p.Contact.Location, nil
		case "website":
			return p.Contact.Website, nil
		}
	}
	return "", unknownPath(path)
}

func resolveExperience(r *types.Resume, path string, parts []string) (string, error) {
	if len(parts) < 3 {
		return "", unknownPath(path)
	}
	entry, ok := r.ExperienceByID(parts[1])
	if !ok {
		return "", &FieldError{Path: path, Message: "no experience entry with this id"}
	}

	switch {
	case len(parts) == 3 && parts[2] == "role":
		return entry.Role, nil
	case len(parts) == 3 && parts[2] == "company":
		return entry.Company, nil
	case len(parts) == 3 && parts[2] == "period":
		return formatPeriod(entry.Period), nil
	case len(parts) == 4 && parts[2] == "period" && parts[3] == "start":
		return entry.Period.Start, nil
	case len(parts) == 4 && parts[2] == "period" && parts[3] == "end":
		return entry.Period.End, nil
	case len(parts) == 4 && parts[2] == "task":
		i, err := strconv.Atoi(parts[3])
		if err != nil || i < 0 || i >= len(entry.Tasks) {
			return "", &FieldError{Path: path, Message: "task index out of range"}
		}
		return entry.Tasks[i], nil
	}
	return "", unknownPath(path)
}

func resolveEducation(r *types.Resume, path string, parts []string) (string, error) {
	if len(parts) < 3 {
		return "", unknownPath(path)
	}
	entry, ok := r.EducationByID(parts[1])
	if !ok {
		return "", &FieldError{Path: path, Message: "no education entry with this id"}
	}

	switch {
	case len(parts) == 3 && parts[2] == "degree":
		return entry.Degree, nil
	case len(parts) == 3 && parts[2] == "school":
		return entry.School, nil
	case len(parts) == 3 && parts[2] == "period":
		return formatPeriod(entry.Period), nil
	case len(parts) == 4 && parts[2] == "period" && parts[3] == "start":
		return entry.Period.Start, nil
	case len(parts) == 4 && parts[2] == "period" && parts[3] == "end":
		return entry.Period.End, nil
	}
	return "", unknownPath(path)
}

func resolveLanguage(r *types.Resume, path string, parts []string) (string, error) {
	if len(parts) != 3 {
		return "", unknownPath(path)
	}
	entry, ok := r.LanguageByID(parts[1])
	if !ok {
		return "", &FieldError{Path: path, Message: "no language entry with this id"}
	}

	switch parts[2] {
	case "name":
		return entry.Name, nil
	case "level":
		return entry.Level, nil
	}
	return "", unknownPath(path)
}

// ReorderSection replaces the document's section order with the given one,
// normalized. Unknown tokens and duplicates are repaired rather than
// rejected; the applied order is returned.
func ReorderSection(doc *types.Document, order []types.SectionKind) []types.SectionKind {
	doc.SectionOrder = NormalizeSectionOrder(order)
	return doc.SectionOrder
}

// ReorderEntry moves the entry with the given stable ID to a new index
// within its section's list. The target index is the entry's final
// position and is clamped into range.
func ReorderEntry(doc *types.Document, kind types.SectionKind, id string, to int) error {
	switch kind {
	case types.SectionExperience:
		return reorderExperience(&doc.Content, id, to)
	case types.SectionEducation:
		return reorderEducation(&doc.Content, id, to)
	case types.SectionLanguages:
		return reorderLanguages(&doc.Content, id, to)
	}
	return &FieldError{Path: string(kind) + "." + id, Message: "section has no reorderable entries"}
}

func reorderExperience(r *types.Resume, id string, to int) error {
	from := -1
	for i := range r.Experience {
		if r.Experience[i].ID == id {
			from = i
			break
		}
	}
	if from == -1 {
		return &FieldError{Path: "experience." + id, Message: "no entry with this id"}
	}
	to = clampIndex(to, len(r.Experience))
	if to == from {
		return nil
	}
	entry := r.Experience[from]
	rest := append(r.Experience[:from], r.Experience[from+1:]...)
	rest = append(rest, types.ExperienceEntry{})
	copy(rest[to+1:], rest[to:])
	rest[to] = entry
	r.Experience = rest
	return nil
}

func reorderEducation(r *types.Resume, id string, to int) error {
	from := -1
	for i := range r.Education {
		if r.Education[i].ID == id {
			from = i
			break
		}
	}
	if from == -1 {
		return &FieldError{Path: "education." + id, Message: "no entry with this id"}
	}
	to = clampIndex(to, len(r.Education))
	if to == from {
		return nil
	}
	entry := r.Education[from]
	rest := append(r.Education[:from], r.Education[from+1:]...)
	rest = append(rest, types.EducationEntry{})
	copy(rest[to+1:], rest[to:])
	rest[to] = entry
	r.Education = rest
	return nil
}

func reorderLanguages(r *types.Resume, id string, to int) error {
	from := -1
	for i := range r.Languages {
		if r.Languages[i].ID == id {
			from = i
			break
		}
	}
	if from == -1 {
		return &FieldError{Path: "language." + id, Message: "no entry with this id"}
	}
	to = clampIndex(to, len(r.Languages))
	if to == from {
		return nil
	}
	entry := r.Languages[from]
	rest := append(r.Languages[:from], r.Languages[from+1:]...)
	rest = append(rest, types.LanguageEntry{})
	copy(rest[to+1:], rest[to:])
	rest[to] = entry
	r.Languages = rest
	return nil
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}

func unknownPath(path string) error {
	return &FieldError{Path: path, Message: "no field at this path"}
}

// parsePeriod reads the machine form "2006-01 - 2006-01". A single token
// is the start; "present" is a valid end.
func parsePeriod(value string) types.Period {
	value = strings.TrimSpace(value)
	if value == "" {
		return types.Period{}
	}
	parts := strings.SplitN(value, " - ", 2)
	p := types.Period{Start: strings.TrimSpace(parts[0])}
	if len(parts) == 2 {
		p.End = strings.TrimSpace(parts[1])
	}
	return p
}

func formatPeriod(p types.Period) string {
	switch {
	case p.Start == "" && p.End == "":
		return ""
	case p.End == "":
		return p.Start
	case p.Start == "":
		return p.End
	}
	return p.Start + " - " + p.End
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// parseLanguages reads "Name: Level, Name: Level". Entries whose name
// already exists keep their stable ID so zones and reorders addressing
// them stay valid; new names get fresh IDs.
func parseLanguages(value string, existing []types.LanguageEntry) []types.LanguageEntry {
	byName := make(map[string]string, len(existing))
	for _, l := range existing {
		byName[strings.ToLower(l.Name)] = l.ID
	}

	var out []types.LanguageEntry
	seen := make(map[string]struct{})
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, level := part, ""
		if i := strings.Index(part, ":"); i >= 0 {
			name = strings.TrimSpace(part[:i])
			level = strings.TrimSpace(part[i+1:])
		}
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		id := byName[key]
		if id == "" {
			id = uuid.New().String()
		}
		out = append(out, types.LanguageEntry{ID: id, Name: name, Level: level})
	}
	return out
}

// formatLanguages writes the "Name: Level, Name: Level" form parseLanguages
// reads; an entry without a level is just its name.
func formatLanguages(entries []types.LanguageEntry) string {
	parts := make([]string, 0, len(entries))
	for _, l := range entries {
		if l.Level == "" {
			parts = append(parts, l.Name)
			continue
		}
		parts = append(parts, l.Name+": "+l.Level)
	}
	return strings.Join(parts, ", ")
}
