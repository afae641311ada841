package sqlgen

import (
	"strconv"
	"strings"

	"github.com/edgewise-labs/rulewizard/pkg/wizard"
)

// Window argument defaults. A blank unit or length would be invalid SQL.
const (
	defaultWindowUnit   = "ss"
	defaultWindowLength = 10
)

// buildGroupBy assembles the GROUP BY clause. Emitted only when aggregation
// is enabled and at least one group-by field or a window is configured.
func buildGroupBy(state *wizard.WizardState) string {
	agg := state.Aggregation
	if !agg.Enabled {
		return ""
	}

	terms := make([]string, 0, len(agg.GroupByFields)+1)
	for _, field := range agg.GroupByFields {
		if field == "" {
			continue
		}
		terms = append(terms, FormatIdentifier(field))
	}

	if agg.WindowType != "" {
		terms = append(terms, windowCall(agg))
	}

	if len(terms) == 0 {
		return ""
	}
	return "GROUP BY " + strings.Join(terms, ", ")
}

// windowCall renders the window function with positional arguments
// (unit, length[, interval]).
func windowCall(agg wizard.AggregateConfig) string {
	unit := agg.WindowUnit
	if unit == "" {
		unit = defaultWindowUnit
	}
	length := agg.WindowLength
	if length <= 0 {
		length = defaultWindowLength
	}

	args := unit + ", " + strconv.Itoa(length)
	if agg.WindowInterval > 0 {
		args += ", " + strconv.Itoa(agg.WindowInterval)
	}
	return WindowFunc(agg.WindowType) + "(" + args + ")"
}
