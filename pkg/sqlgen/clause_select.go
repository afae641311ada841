package sqlgen

import (
	"strings"

	"github.com/edgewise-labs/rulewizard/pkg/wizard"
)

// implicitStreamFields are appended for stream-typed main sources so every
// rule output carries the originating topic and event time. They are only
// added when the user has not supplied an explicit projection list.
const implicitStreamFields = "meta(topic) AS topic, event_time() AS timestamp"

// buildSelect assembles the SELECT clause.
//
// Explicit selections win outright: the user owns the full projection list
// and no implicit fields are appended. Without selections, a known schema
// for the main source is expanded into an explicit column list; otherwise
// the clause degrades to SELECT *.
func buildSelect(state *wizard.WizardState) string {
	main := state.Sources[0]

	if len(state.Selections) > 0 {
		cols := make([]string, 0, len(state.Selections))
		for _, sel := range state.Selections {
			if sel.Field == "" {
				continue
			}
			col := FormatIdentifier(sel.Field)
			if sel.Alias != "" {
				col += " AS " + FormatIdentifier(sel.Alias)
			}
			cols = append(cols, col)
		}
		if len(cols) == 0 {
			return "SELECT *"
		}
		return "SELECT " + strings.Join(cols, ", ")
	}

	if fields := state.Fields[main.ID]; len(fields) > 0 {
		cols := make([]string, 0, len(fields)+1)
		for _, f := range fields {
			if f.Name == "" {
				continue
			}
			cols = append(cols, FormatIdentifier(f.Name))
		}
		if main.IsStream() {
			cols = append(cols, implicitStreamFields)
		}
		if len(cols) > 0 {
			return "SELECT " + strings.Join(cols, ", ")
		}
	}

	if main.IsStream() {
		return "SELECT *, " + implicitStreamFields
	}
	return "SELECT *"
}
