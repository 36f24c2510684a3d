package types

// Theme configuration token values. The theme resolver treats anything
// outside these sets as the corresponding default.
const (
	PaperA4     = "a4"
	PaperLetter = "letter"

	PairingModern  = "modern"
	PairingClassic = "classic"
	PairingMixed   = "mixed"

	SidebarLeft  = "left"
	SidebarRight = "right"
	SidebarNone  = "none"
)

// ThemeConfig is the small persisted visual configuration a user edits.
// Every field is optional; the theme resolver substitutes defaults and
// clamps numeric values, so resolving never fails. The validate tags are
// enforced only at the store and server boundaries to reject garbage early
// with a useful message.
type ThemeConfig struct {
	Paper       string  `json:"paper,omitempty" validate:"omitempty,oneof=a4 letter"`
	AccentColor string  `json:"accent_color,omitempty" validate:"omitempty,hexcolor"`
	FontPairing string  `json:"font_pairing,omitempty" validate:"omitempty,oneof=modern classic mixed"`
	FontScale   float64 `json:"font_scale,omitempty" validate:"omitempty,gt=0,lte=3"`
	LineHeight  float64 `json:"line_height,omitempty" validate:"omitempty,gt=0,lte=3"`
	SidebarSide string  `json:"sidebar_side,omitempty" validate:"omitempty,oneof=left right none"`
}
