package storage

import (
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// AllowedExtensions are the accepted image extensions, lowercase without the dot.
var AllowedExtensions = []string{"png", "jpg", "jpeg", "gif", "webp"}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// Extension returns the lowercase extension of name without the dot and
// whether it is in AllowedExtensions.
func Extension(name string) (string, bool) {
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return "", false
	}
	ext := strings.ToLower(name[i+1:])
	for _, allowed := range AllowedExtensions {
		if ext == allowed {
			return ext, true
		}
	}
	return ext, false
}

// SanitizeFilename reduces name to a safe ASCII filename: accents are folded,
// path separators and whitespace become underscores, anything outside
// [A-Za-z0-9_.-] is dropped and leading or trailing dots and underscores are
// trimmed. The result may be empty.
func SanitizeFilename(name string) string {
	decomposed := norm.NFKD.String(name)

	var b strings.Builder
	for _, r := range decomposed {
		if r < 128 {
			b.WriteRune(r)
		}
	}
	ascii := b.String()

	ascii = strings.NewReplacer("/", " ", "\\", " ").Replace(ascii)
	joined := strings.Join(strings.Fields(ascii), "_")
	return strings.Trim(unsafeFilenameChars.ReplaceAllString(joined, ""), "._")
}

// storedBase sanitizes name and guarantees the result keeps ext, falling back
// to "photo.<ext>" when sanitizing strips too much.
func storedBase(name, ext string) string {
	safe := SanitizeFilename(name)
	if safe == "" || !strings.EqualFold(strings.TrimPrefix(filepath.Ext(safe), "."), ext) {
		return "photo." + ext
	}
	return safe
}
