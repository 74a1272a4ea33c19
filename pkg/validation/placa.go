package validation

import (
	"regexp"
	"strings"
)

// The six plate shapes issued in Colombia: three letters followed by three
// digits (cars), four digits (some motorcycles) or two digits and a letter
// (motorcycles), with an optional hyphen between the blocks.
var placaPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^[A-Z]{3}-\d{3}$`),      // ABC-123
	regexp.MustCompile(`^[A-Z]{3}\d{3}$`),       // ABC123
	regexp.MustCompile(`^[A-Z]{3}-\d{4}$`),      // ABC-1234
	regexp.MustCompile(`^[A-Z]{3}\d{4}$`),       // ABC1234
	regexp.MustCompile(`^[A-Z]{3}-\d{2}[A-Z]$`), // ABC-12A
	regexp.MustCompile(`^[A-Z]{3}\d{2}[A-Z]$`),  // ABC12A
}

var placaLetters = regexp.MustCompile(`[A-Z]`)

// ValidPlaca reports whether placa is a well-formed Colombian plate number.
// Spaces are stripped and the input is uppercased before matching, so
// "abc 123" is accepted. Plates whose three leading letters are all the same
// (e.g. "AAA123") are rejected.
func ValidPlaca(placa string) bool {
	cleaned := strings.ToUpper(strings.ReplaceAll(placa, " ", ""))

	matched := false
	for _, pattern := range placaPatterns {
		if pattern.MatchString(cleaned) {
			matched = true
			break
		}
	}
	if !matched {
		return false
	}

	letters := placaLetters.FindAllString(cleaned, -1)
	if len(letters) >= 3 {
		distinct := map[string]bool{}
		for _, l := range letters {
			distinct[l] = true
		}
		if len(distinct) == 1 {
			return false
		}
	}

	return true
}
