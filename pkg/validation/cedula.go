package validation

import "strings"

// ValidCedula reports whether cedula is a plausible Colombian cédula de
// ciudadanía. Spaces are stripped before checking; the remainder must be
// 6 to 10 ASCII digits and must not be a run of a single repeated digit.
func ValidCedula(cedula string) bool {
	cleaned := strings.ReplaceAll(cedula, " ", "")

	if len(cleaned) < 6 || len(cleaned) > 10 {
		return false
	}

	distinct := map[rune]bool{}
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return false
		}
		distinct[r] = true
	}

	// Sequences like "111111" pass the format check but are not real cédulas.
	return len(distinct) > 1
}
