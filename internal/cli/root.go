package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ccc [files...]",
		Short: "Extract code context with dependencies for AI assistants",
		Long: `ccc bundles source files and their import closure into a single
markdown prompt: primary files in full, transitive dependencies as
token-budgeted signature maps.

Output goes to stdout by default and can be redirected to a file.`,
		Args: cobra.ArbitraryArgs,
		RunE: RunCraft,
	}

	flags := rootCmd.Flags()
	flags.StringP("config", "c", "", "Path to .ccc.yaml configuration file")
	flags.StringArrayP("root", "r", nil, "Project root directory for resolving imports (repeatable, default: each file's own directory)")
	flags.StringP("output", "o", "", "Output file path (default: stdout)")
	flags.Int("sig-tokens", 0, "Maximum tokens for generated signatures (0 = unlimited detail)")
	flags.StringP("find-by", "f", "", `Shell command to find files (e.g., "find . -name '*.py'")`)
	flags.Int("dep-depth-max", -1, "Maximum depth for recursive dependency analysis (-1 = unlimited)")
	flags.BoolP("verbose", "v", false, "Enable detailed logging output")
	flags.Bool("sig-only", false, "Generate only signatures without full file content")
	flags.Bool("sig-detailed", false, "Include doc lines alongside signatures")

	depsCmd := &cobra.Command{
		Use:   "deps <file>",
		Short: "Show the resolved dependency closure of a file",
		Args:  cobra.ExactArgs(1),
		RunE:  RunDeps,
	}
	depsCmd.Flags().StringArrayP("root", "r", nil, "Project root directory for resolving imports (repeatable)")
	depsCmd.Flags().Int("dep-depth-max", -1, "Maximum traversal depth (-1 = unlimited)")
	depsCmd.Flags().String("format", "table", "Output format: table|json|yaml")
	depsCmd.Flags().BoolP("verbose", "v", false, "Enable detailed logging output")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("ccc %s\n", version)
		},
	}

	rootCmd.AddCommand(depsCmd, versionCmd)

	return rootCmd
}
