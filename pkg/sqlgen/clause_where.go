package sqlgen

import (
	"strings"

	"github.com/edgewise-labs/rulewizard/pkg/wizard"
)

// buildWhere assembles the WHERE clause from the ordered filter groups.
//
// Expressions within a group are ANDed and the group is parenthesized.
// Later groups are attached with their own connective; a group without any
// valid expression is dropped. The assembled body then goes through the
// self-cast correction pass (see autocast.go).
func buildWhere(state *wizard.WizardState) string {
	var groups []string

	for _, group := range state.Filters {
		exprs := make([]string, 0, len(group.Expressions))
		for _, expr := range group.Expressions {
			if expr.Field == "" || expr.Operator == "" {
				continue
			}
			exprs = append(exprs, buildComparison(expr))
		}
		if len(exprs) == 0 {
			continue
		}

		parenthesized := "(" + strings.Join(exprs, " AND ") + ")"
		if len(groups) == 0 {
			groups = append(groups, parenthesized)
			continue
		}
		logic := strings.ToUpper(strings.TrimSpace(group.Logic))
		if logic == "" {
			logic = "AND"
		}
		groups = append(groups, logic+" "+parenthesized)
	}

	if len(groups) == 0 {
		return ""
	}
	return "WHERE " + fixSelfCasts(strings.Join(groups, " "))
}

// buildComparison renders one filter expression, applying its cast policy.
func buildComparison(expr wizard.FilterExpression) string {
	field := FormatIdentifier(expr.Field)
	value := expr.Value

	switch expr.CastType {
	case wizard.CastNumber:
		if strings.HasPrefix(field, "CAST(") {
			field = strings.Replace(field, "'string')", "'float')", 1)
		} else {
			field = "CAST(" + field + ", 'float')"
		}
		value = unquote(value)
	case wizard.CastString:
		if !strings.HasPrefix(field, "CAST(") {
			field = "CAST(" + field + ", 'string')"
		}
		if !isQuoted(value) {
			value = "'" + value + "'"
		}
	default:
		value = FormatValue(value)
	}

	return field + " " + expr.Operator + " " + value
}
