package sqlgen

import "regexp"

// The wizard lets users compare the raw payload against numeric literals.
// The payload reference is emitted as a string cast, so without correction
// such comparisons would be string-vs-number on the engine side. After the
// WHERE body is assembled, a second pass rewrites the cast to 'float'
// whenever the other operand is a bare number. The pass is intentionally
// narrow: it only targets the self reference, never arbitrary field casts.
var (
	selfCastLeft  = regexp.MustCompile(`CAST\(self, 'string'\)(\s*(?:>=|<=|!=|<>|=|>|<)\s*)(-?\d+(?:\.\d+)?)`)
	selfCastRight = regexp.MustCompile(`(-?\d+(?:\.\d+)?)(\s*(?:>=|<=|!=|<>|=|>|<)\s*)CAST\(self, 'string'\)`)
)

// fixSelfCasts applies the numeric-comparison correction to an assembled
// WHERE body.
func fixSelfCasts(where string) string {
	out := selfCastLeft.ReplaceAllString(where, "CAST(self, 'float')${1}${2}")
	out = selfCastRight.ReplaceAllString(out, "${1}${2}CAST(self, 'float')")
	return out
}
