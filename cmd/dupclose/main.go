// Package main provides the command-line interface for the dupclose application.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/lerenn/dup-closer/pkg/config"
	"github.com/lerenn/dup-closer/pkg/dependencies"
	dupcloser "github.com/lerenn/dup-closer/pkg/dup-closer"
	"github.com/lerenn/dup-closer/pkg/issue"
	"github.com/lerenn/dup-closer/pkg/logger"
	"github.com/lerenn/dup-closer/pkg/prompt"
	"github.com/spf13/cobra"
)

// assumeYesEnvVar bypasses the already-closed confirmation prompt so the
// tool can run headless.
const assumeYesEnvVar = "DUPCLOSE_ASSUME_YES"

var (
	quiet      bool
	configPath string
)

// defaultConfigPath returns the configuration file location.
func defaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".dupclose", "config.yaml")
}

// buildDependencies wires the production dependencies for a run.
func buildDependencies() *dependencies.Dependencies {
	path := configPath
	if path == "" {
		path = defaultConfigPath()
	}

	deps := dependencies.New().WithConfig(config.NewManager(path))

	if !quiet {
		deps = deps.WithLogger(logger.NewDefaultLogger())
	}

	switch strings.ToLower(os.Getenv(assumeYesEnvVar)) {
	case "1", "true", "yes", "y":
		deps = deps.WithPrompt(prompt.NewAutoPrompt(true))
	}

	return deps
}

// parseArgs validates and parses the positional issue references.
// Validation happens before any dependency is built or any network call is made.
func parseArgs(args []string) (dupcloser.CloseDuplicateParams, error) {
	target, err := issue.ParseRef(args[0])
	if err != nil {
		return dupcloser.CloseDuplicateParams{}, err
	}

	params := dupcloser.CloseDuplicateParams{
		Target: target,
	}

	if len(args) == 2 {
		duplicateOf, err := issue.ParseRef(args[1])
		if err != nil {
			return dupcloser.CloseDuplicateParams{}, err
		}
		params.DuplicateOf = &duplicateOf
	}

	return params, nil
}

// reportSuccess prints the final status lines.
func reportSuccess(result *issue.CloseResult, duplicateOf *issue.Ref) {
	green := color.New(color.FgGreen).SprintFunc()

	if duplicateOf != nil {
		fmt.Printf("%s Closed #%d as %s (duplicate of %s)\n",
			green("✓"), result.Number, result.StateReason, duplicateOf)
	} else {
		fmt.Printf("%s Closed #%d as %s\n",
			green("✓"), result.Number, result.StateReason)
	}
	fmt.Printf("  %s\n", result.URL)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dupclose <issue-to-close> [<duplicate-of-issue>]",
		Short: "Close a GitHub issue as a duplicate",
		Long: `Close a GitHub issue as a duplicate, optionally referencing the canonical issue.

Both arguments use the owner/repo#number format. When a duplicate reference
is given, the posted comment links to it; otherwise the comment records who
closed the issue and when.

Examples:
  dupclose octocat/Hello-World#42 octocat/Hello-World#15
  dupclose octocat/Hello-World#42`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Argument-count errors above still print usage; runtime
			// failures past this point only print the error line.
			cmd.SilenceUsage = true

			params, err := parseArgs(args)
			if err != nil {
				return err
			}

			closer, err := dupcloser.NewDupCloser(dupcloser.NewDupCloserParams{
				Dependencies: buildDependencies(),
			})
			if err != nil {
				return err
			}

			result, err := closer.CloseDuplicate(cmd.Context(), params)
			if err != nil {
				return err
			}

			reportSuccess(result, params.DuplicateOf)
			return nil
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Specify a custom config file path")

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
