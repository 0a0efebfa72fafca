package querydialect

import "strings"

// matchOperatorReplacer escapes quotes and backslashes and blanks out the
// full-text MATCH-expression operators that must be neutralized before a mark_text is placed into a query. This is defense
// in depth against backends whose MATCH parser treats these characters as
// operators even when the value arrives as a bound parameter — not a
// SQL-injection mitigation, since parameters already prevent that.
var matchOperatorReplacer = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	`'`, `\'`,
	"!", " ",
	"|", " ",
	"@", " ",
	"~", " ",
	"/", " ",
	"(", " ",
	")", " ",
)

// EscapeMatchText neutralizes quotes, backslashes, and full-text operator
// characters in s so it is safe to embed in a MATCH/AGAINST expression.
func EscapeMatchText(s string) string {
	return matchOperatorReplacer.Replace(s)
}
