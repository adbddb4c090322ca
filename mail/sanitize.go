// SPDX-License-Identifier: GPL-3.0-or-later
package mail

import (
	"path/filepath"
	"strings"
	"unicode"
)

const replacementChar = '_'

// Sanitize replaces every rune that is not a letter or a digit with an
// underscore. The result has the same number of runes as text.
func Sanitize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(replacementChar)
		}
	}
	return b.String()
}

// SanitizeFilename sanitizes stem and extension of name separately so the
// extension survives. Returns an empty string if nothing usable is left.
func SanitizeFilename(name string) string {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	ext = strings.TrimPrefix(ext, ".")

	if stem == "" && ext == "" {
		return ""
	}
	if stem == "" {
		// dotfile, the "extension" is the name
		return Sanitize(ext)
	}
	if ext == "" {
		return Sanitize(stem)
	}
	return Sanitize(stem) + "." + Sanitize(ext)
}
