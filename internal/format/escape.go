package format

import "strings"

var htmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML makes untrusted text safe for interpolation into markup.
func EscapeHTML(s string) string {
	return htmlReplacer.Replace(s)
}
