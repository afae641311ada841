package sqlgen

import "regexp"

var numberToken = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

// FormatValue renders a raw wizard value as a SQL literal.
//
// Booleans and numbers pass through verbatim, as do values the user already
// quoted. Anything else is wrapped in single quotes. Empty input becomes the
// empty string literal.
func FormatValue(raw string) string {
	if raw == "" {
		return "''"
	}
	if raw == "true" || raw == "false" {
		return raw
	}
	if numberToken.MatchString(raw) {
		return raw
	}
	if isQuoted(raw) {
		return raw
	}
	return "'" + raw + "'"
}

// isQuoted reports whether s is fully wrapped in matching single or double
// quotes.
func isQuoted(s string) bool {
	if len(s) < 2 {
		return false
	}
	first, last := s[0], s[len(s)-1]
	return (first == '\'' && last == '\'') || (first == '"' && last == '"')
}

// unquote strips the outer quotes from a quoted value. Unquoted input is
// returned unchanged.
func unquote(s string) string {
	if isQuoted(s) {
		return s[1 : len(s)-1]
	}
	return s
}
