package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/edgewise-labs/rulewizard/pkg/sqlgen"
	"github.com/edgewise-labs/rulewizard/pkg/wizard"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <state.json>",
		Short: "Show a summary of a wizard rule definition",
		Long: `Render a human-readable summary of a wizard state file: its sources,
joins, filter groups and window, followed by the SQL it compiles to.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			state, err := wizard.Parse(data)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			renderSources(out, state)
			renderJoins(out, state)
			renderFilters(out, state)
			renderAggregation(out, state)

			result := sqlgen.Compile(state)
			fmt.Fprintln(out)
			fmt.Fprintln(out, "SQL:")
			fmt.Fprintln(out, result.SQL)
			for _, warning := range result.Warnings {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", warning)
			}
			return nil
		},
	}
}

func renderSources(w io.Writer, state *wizard.WizardState) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle("Sources")
	t.AppendHeader(table.Row{"ID", "Resource", "Type", "Alias"})
	for _, src := range state.Sources {
		t.AppendRow(table.Row{src.ID, src.ResourceName, src.ResourceType, src.Alias})
	}
	t.Render()
}

func renderJoins(w io.Writer, state *wizard.WizardState) {
	if len(state.Joins) == 0 {
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle("Joins")
	t.AppendHeader(table.Row{"Type", "Target", "Conditions"})
	for _, join := range state.Joins {
		conds := make([]string, 0, len(join.Conditions))
		for _, c := range join.Conditions {
			conds = append(conds, fmt.Sprintf("%s %s %s", c.LeftField, c.Operator, c.RightField))
		}
		t.AppendRow(table.Row{join.JoinType, join.TargetSourceID, strings.Join(conds, " AND ")})
	}
	t.Render()
}

func renderFilters(w io.Writer, state *wizard.WizardState) {
	if len(state.Filters) == 0 {
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle("Filters")
	t.AppendHeader(table.Row{"Group", "Logic", "Expression", "Cast"})
	for i, group := range state.Filters {
		for _, expr := range group.Expressions {
			t.AppendRow(table.Row{
				i + 1,
				group.Logic,
				fmt.Sprintf("%s %s %s", expr.Field, expr.Operator, expr.Value),
				expr.CastType,
			})
		}
	}
	t.Render()
}

func renderAggregation(w io.Writer, state *wizard.WizardState) {
	agg := state.Aggregation
	if !agg.Enabled {
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle("Aggregation")
	t.AppendHeader(table.Row{"Window", "Unit", "Length", "Interval", "Group By"})
	t.AppendRow(table.Row{
		agg.WindowType, agg.WindowUnit, agg.WindowLength, agg.WindowInterval,
		strings.Join(agg.GroupByFields, ", "),
	})
	t.Render()
}
