// SPDX-License-Identifier: GPL-3.0-or-later
package mail

import (
	"mime"
	"path"
	"strings"
	"unicode/utf8"

	"github.com/emersion/go-message/charset"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/simplifiedchinese"
)

func init() {
	// Chinese providers label GBK bodies and filenames as "gbk" which the charset table may not know.
	charset.RegisterEncoding("gbk", simplifiedchinese.GBK)
}

const fallbackFilename = "attachment"

// HeaderDecoder decodes RFC 2047 encoded header values.
type HeaderDecoder struct {
	dec *mime.WordDecoder
}

func NewHeaderDecoder() *HeaderDecoder {
	return &HeaderDecoder{
		dec: &mime.WordDecoder{
			CharsetReader: charset.Reader,
		},
	}
}

// Decode decodes every encoded word of value and concatenates the result with
// the unencoded text between them. Values that cannot be decoded, e.g. because
// of an unknown charset, are returned as they are.
func (hd *HeaderDecoder) Decode(value string) string {
	if !strings.Contains(value, "=?") {
		return value
	}

	decoded, err := hd.dec.DecodeHeader(value)
	if err != nil {
		return value
	}
	return decoded
}

// DecodeFilename is the fallback for attachment names that could not be
// written as they are. The result only contains letters, digits, underscores
// and at most one dot.
func (hd *HeaderDecoder) DecodeFilename(name string) string {
	decoded := hd.Decode(strings.TrimSpace(name))
	if !utf8.ValidString(decoded) {
		latin1, err := charmap.ISO8859_1.NewDecoder().String(decoded)
		if err == nil {
			decoded = latin1
		}
	}

	// Both separators count, the name may come from a windows client.
	decoded = strings.ReplaceAll(decoded, "\\", "/")
	decoded = path.Base(decoded)
	if decoded == "." || decoded == "/" || decoded == ".." {
		return fallbackFilename
	}

	sanitized := SanitizeFilename(decoded)
	if strings.Trim(sanitized, "_.") == "" {
		return fallbackFilename
	}
	return sanitized
}
