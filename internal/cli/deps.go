package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ccc-dev/ccc/internal/deps"
	"github.com/ccc-dev/ccc/internal/output"
)

// RunDeps prints the dependency closure of a single file.
func RunDeps(cmd *cobra.Command, args []string) error {
	entry, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolve path %s: %w", args[0], err)
	}

	rootArgs, err := cmd.Flags().GetStringArray("root")
	if err != nil {
		return fmt.Errorf("failed to read --root flag: %w", err)
	}
	roots, err := absAll(rootArgs)
	if err != nil {
		return err
	}

	maxDepth, err := cmd.Flags().GetInt("dep-depth-max")
	if err != nil {
		return fmt.Errorf("failed to read --dep-depth-max flag: %w", err)
	}

	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return fmt.Errorf("failed to read --verbose flag: %w", err)
	}

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to read --format flag: %w", err)
	}

	report := &output.DepsReport{Entry: entry}
	for _, dep := range deps.TraverseDepths(entry, deps.Options{
		Roots:    roots,
		MaxDepth: maxDepth,
		Verbose:  verbose,
	}) {
		report.Dependencies = append(report.Dependencies, output.DepEntry{
			Path:  dep.Path,
			Depth: dep.Depth,
		})
	}

	return report.Render(os.Stdout, format)
}
