package types

import "strconv"

// Canonical field paths. A path is the dot-separated address of one
// editable field in the content tree; zones carry the path of the field
// they cover and the store's update operation addresses fields by the same
// grammar, so a committed edit lands exactly where the user clicked.
const (
	PathFirstName = "personal.first_name"
	PathLastName  = "personal.last_name"
	PathTitle     = "personal.title"
	PathPhoto     = "personal.photo"
	PathEmail     = "personal.contact.email"
	PathPhone     = "personal.contact.phone"
	PathLocation  = "personal.contact.location"
	PathWebsite   = "personal.contact.website"
	PathSummary   = "summary"
	PathSkills    = "skills"
	PathLanguages = "languages"
)

// ExperienceFieldPath addresses one field of an experience entry by its
// stable ID. Field is one of "role", "company", "period".
func ExperienceFieldPath(id, field string) string {
	return "experience." + id + "." + field
}

// TaskPath addresses one task line of an experience entry.
func TaskPath(id string, index int) string {
	return "experience." + id + ".task." + strconv.Itoa(index)
}

// EducationFieldPath addresses one field of an education entry by its
// stable ID. Field is one of "degree", "school", "period".
func EducationFieldPath(id, field string) string {
	return "education." + id + "." + field
}

// LanguageFieldPath addresses one field of a language entry by its stable
// ID. Field is one of "name", "level".
func LanguageFieldPath(id, field string) string {
	return "language." + id + "." + field
}
