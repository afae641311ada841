// Package config loads RuleWizard configuration from file, environment
// variables and CLI flags.
package config

// Config holds the resolved runtime configuration.
type Config struct {
	// Port is the HTTP API listen port for the serve command.
	Port int `koanf:"port"`

	// RulesDir is the default directory holding wizard state JSON files.
	RulesDir string `koanf:"rules_dir"`

	// Output selects the CLI output format (text or json).
	Output string `koanf:"output"`

	// Verbose enables debug logging.
	Verbose bool `koanf:"verbose"`
}
