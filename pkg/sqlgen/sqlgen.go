// Package sqlgen compiles wizard rule definitions into SQL statements for
// the rule engine's dialect.
//
// Compilation is a single synchronous pass with no side effects: the clause
// builders each render one fragment from the immutable wizard snapshot and
// the generator joins the non-empty fragments in fixed order. Malformed or
// missing pieces degrade to omission, never an error, so the compiler is
// safe to invoke on every keystroke of a live editor.
package sqlgen

import (
	"strings"

	"github.com/edgewise-labs/rulewizard/pkg/wizard"
)

// NoSourceSQL is returned when the wizard has no data source configured.
// An empty wizard is a normal mid-edit state, not an error.
const NoSourceSQL = "-- no data source configured"

// Result carries the generated SQL plus any non-fatal warnings collected
// while compiling, such as joins referencing unknown sources.
type Result struct {
	SQL      string   `json:"sql"`
	Warnings []string `json:"warnings,omitempty"`
}

// Compile generates the SQL statement for a wizard state.
//
// It never fails: an empty state yields the NoSourceSQL sentinel, and every
// malformed fragment is dropped from its clause. Identical input always
// produces an identical Result.
func Compile(state *wizard.WizardState) Result {
	if state == nil || len(state.Sources) == 0 {
		return Result{SQL: NoSourceSQL}
	}

	joins, warnings := buildJoins(state)
	clauses := []string{
		buildSelect(state),
		buildFrom(state),
		joins,
		buildWhere(state),
		buildGroupBy(state),
	}

	parts := make([]string, 0, len(clauses))
	for _, clause := range clauses {
		if strings.TrimSpace(clause) == "" {
			continue
		}
		parts = append(parts, clause)
	}

	sql := strings.TrimSpace(strings.Join(parts, "\n")) + ";"
	return Result{SQL: sql, Warnings: warnings}
}

// Generate is the plain-string form of Compile.
func Generate(state *wizard.WizardState) string {
	return Compile(state).SQL
}
