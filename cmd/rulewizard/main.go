// Package main provides the RuleWizard CLI.
package main

import "github.com/edgewise-labs/rulewizard/internal/cli"

func main() {
	cli.Execute()
}
