package convert

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// illegalChars are characters not allowed in filenames on common filesystems.
var illegalChars = regexp.MustCompile(`[<>:"/\\|?*\x00]`)

// multiSpace matches runs of whitespace.
var multiSpace = regexp.MustCompile(`\s+`)

// multiDot matches runs of consecutive dots.
var multiDot = regexp.MustCompile(`\.{2,}`)

// SanitizeBaseName makes a user-supplied base name safe to join into an
// output path: accents are stripped to ASCII, path separators and other
// illegal characters become spaces, and leading/trailing dots go away so the
// name cannot escape the target directory or hide itself.
func SanitizeBaseName(name string) string {
	name = removeAccents(name)

	name = strings.ReplaceAll(name, "\x00", "")
	name = strings.ReplaceAll(name, "/", " ")
	name = strings.ReplaceAll(name, "\\", " ")
	name = illegalChars.ReplaceAllString(name, " ")

	name = multiDot.ReplaceAllString(name, ".")
	name = multiSpace.ReplaceAllString(name, " ")
	return strings.Trim(name, " .")
}

// removeAccents decomposes characters and drops combining marks (é -> e).
func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
