package sqlgen

import (
	"fmt"
	"strings"

	"github.com/edgewise-labs/rulewizard/pkg/wizard"
)

// buildFrom assembles the FROM clause from the main source.
func buildFrom(state *wizard.WizardState) string {
	main := state.Sources[0]
	clause := "FROM " + FormatIdentifier(main.ResourceName)
	if main.Alias != "" {
		clause += " AS " + FormatIdentifier(main.Alias)
	}
	return clause
}

// buildJoins assembles all JOIN fragments in declaration order.
//
// A join whose target source cannot be resolved is skipped with a warning;
// the UI is expected to keep references intact, so this is not an error.
// Conditions within one join are ANDed, and a condition missing either
// field is dropped.
func buildJoins(state *wizard.WizardState) (string, []string) {
	var fragments []string
	var warnings []string

	for _, join := range state.Joins {
		target := state.SourceByID(join.TargetSourceID)
		if target == nil {
			warnings = append(warnings, fmt.Sprintf("join target %q does not match any source, skipping", join.TargetSourceID))
			continue
		}

		joinType := strings.ToUpper(strings.TrimSpace(join.JoinType))
		if joinType == "" {
			joinType = "INNER"
		}

		frag := joinType + " JOIN " + FormatIdentifier(target.ResourceName)
		if target.Alias != "" {
			frag += " AS " + FormatIdentifier(target.Alias)
		}

		conds := make([]string, 0, len(join.Conditions))
		for _, cond := range join.Conditions {
			if cond.LeftField == "" || cond.RightField == "" {
				continue
			}
			op := cond.Operator
			if op == "" {
				op = "="
			}
			conds = append(conds, FormatIdentifier(cond.LeftField)+" "+op+" "+FormatIdentifier(cond.RightField))
		}
		if len(conds) > 0 {
			frag += " ON " + strings.Join(conds, " AND ")
		}

		fragments = append(fragments, frag)
	}

	return strings.Join(fragments, " "), warnings
}
