// Package speech renders spoken text in the markup envelope expected by the
// voice platform.
package speech

import "strings"

// markupEscaper escapes the characters that would break the SSML envelope.
// Spoken text includes user-influenced substrings (city names, currency
// codes), so they are sanitized before embedding.
var markupEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// Wrap returns the message wrapped in a speak envelope, with markup-sensitive
// characters in the message escaped.
func Wrap(message string) string {
	return "<speak>" + markupEscaper.Replace(message) + "</speak>"
}
