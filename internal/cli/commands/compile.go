package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/edgewise-labs/rulewizard/internal/config"
	"github.com/edgewise-labs/rulewizard/pkg/sqlgen"
	"github.com/edgewise-labs/rulewizard/pkg/wizard"
	"github.com/spf13/cobra"
)

// compileEnvelope is the JSON output form of one compiled file.
type compileEnvelope struct {
	File     string   `json:"file"`
	SQL      string   `json:"sql"`
	Warnings []string `json:"warnings,omitempty"`
}

// NewCompileCommand creates the compile command.
func NewCompileCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "compile <state.json> [more...]",
		Short: "Compile wizard rule definitions to SQL",
		Long: `Compile one or more wizard state JSON files into SQL statements.

A failure on one file does not stop the remaining files; all failures are
reported at the end.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromContext(cmd.Context())
			logger := config.GetLogger(cmd.Context())

			var errs []error
			for _, path := range args {
				result, err := compileFile(path)
				if err != nil {
					logger.Error("compile failed", "file", path, "error", err)
					errs = append(errs, fmt.Errorf("%s: %w", path, err))
					continue
				}

				if cfg.Output == config.OutputJSON {
					envelope := compileEnvelope{File: path, SQL: result.SQL, Warnings: result.Warnings}
					enc := json.NewEncoder(cmd.OutOrStdout())
					enc.SetIndent("", "  ")
					if err := enc.Encode(envelope); err != nil {
						errs = append(errs, err)
					}
					continue
				}

				for _, warning := range result.Warnings {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s: %s\n", path, warning)
				}
				fmt.Fprintln(cmd.OutOrStdout(), result.SQL)
			}

			return errors.Join(errs...)
		},
	}
}

// compileFile reads a wizard state file and compiles it.
func compileFile(path string) (sqlgen.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return sqlgen.Result{}, err
	}
	state, err := wizard.Parse(data)
	if err != nil {
		return sqlgen.Result{}, err
	}
	return sqlgen.Compile(state), nil
}
