package sqlgen

import (
	"regexp"
	"strings"
)

// payloadExpr is the expression emitted for the pseudo-field "payload".
// It denotes the unparsed message body rather than a named field, so it is
// cast to a string before any comparison.
const payloadExpr = "CAST(self, 'string')"

// plainSegment matches path segments that need no quoting.
var plainSegment = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// reservedDisplay holds words the engine exposes as metadata columns; field
// references that collide with them must be backtick-quoted.
var reservedDisplay = map[string]struct{}{
	"timestamp": {},
	"topic":     {},
}

// FormatIdentifier rewrites a raw field reference into its SQL form.
//
// Function calls and "*" pass through verbatim. The pseudo-field "payload"
// becomes a string cast of the whole record. Everything else is treated as a
// dot-separated path whose segments are individually backtick-quoted when
// they contain non-identifier characters or collide with a reserved display
// word.
func FormatIdentifier(raw string) string {
	if raw == "" {
		return ""
	}
	if strings.Contains(raw, "(") || raw == "*" {
		return raw
	}
	if strings.EqualFold(raw, "payload") {
		return payloadExpr
	}

	segments := strings.Split(raw, ".")
	for i, seg := range segments {
		segments[i] = quoteSegment(seg)
	}
	return strings.Join(segments, ".")
}

func quoteSegment(seg string) string {
	if seg == "" {
		return seg
	}
	if len(seg) >= 2 && seg[0] == '`' && seg[len(seg)-1] == '`' {
		return seg
	}
	if _, reserved := reservedDisplay[strings.ToLower(seg)]; reserved {
		return "`" + seg + "`"
	}
	if !plainSegment.MatchString(seg) {
		return "`" + seg + "`"
	}
	return seg
}
