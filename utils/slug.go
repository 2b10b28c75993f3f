package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var polishLetters = strings.NewReplacer(
	"ł", "l", "Ł", "l",
)

// Slugify turns a display name into a lower-case, dash separated URL slug.
func Slugify(s string) string {
	s = polishLetters.Replace(s)

	var b strings.Builder
	dash := false
	for _, r := range norm.NFD.String(s) {
		switch {
		case unicode.Is(unicode.Mn, r):
			continue
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if r > unicode.MaxASCII {
				continue
			}
			b.WriteRune(unicode.ToLower(r))
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
