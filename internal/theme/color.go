package theme

import "strings"

// normalizeHex canonicalizes a hex color to lowercase "#rrggbb". Three-digit
// shorthand is expanded; anything unparseable becomes the default accent.
func normalizeHex(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "#")

	if len(s) == 3 {
		expanded := make([]byte, 6)
		for i := 0; i < 3; i++ {
			expanded[2*i] = s[i]
			expanded[2*i+1] = s[i]
		}
		s = string(expanded)
	}

	if len(s) != 6 {
		return DefaultAccent
	}
	for i := 0; i < 6; i++ {
		if !isHexDigit(s[i]) {
			return DefaultAccent
		}
	}
	return "#" + s
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')
}

// AccentRGB returns the accent color's channels for renderers that take
// integer components.
func (r Resolved) AccentRGB() (red, green, blue int) {
	s := strings.TrimPrefix(r.Accent, "#")
	if len(s) != 6 {
		s = strings.TrimPrefix(DefaultAccent, "#")
	}
	return hexByte(s[0:2]), hexByte(s[2:4]), hexByte(s[4:6])
}

func hexByte(s string) int {
	v := 0
	for i := 0; i < len(s); i++ {
		v *= 16
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			v += int(c - '0')
		case c >= 'a' && c <= 'f':
			v += int(c-'a') + 10
		}
	}
	return v
}
