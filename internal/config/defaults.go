package config

// Default configuration values.
const (
	DefaultPort     = 8085
	DefaultRulesDir = "rules"
	DefaultOutput   = "text"
)

// Config file names, checked in order.
const (
	ConfigFileName    = "rulewizard.yaml"
	ConfigFileNameAlt = "rulewizard.yml"
)

// Output format values.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Default returns a Config populated with defaults.
func Default() *Config {
	return &Config{
		Port:     DefaultPort,
		RulesDir: DefaultRulesDir,
		Output:   DefaultOutput,
	}
}
