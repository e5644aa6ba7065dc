package cli

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ccc-dev/ccc/internal/config"
	"github.com/ccc-dev/ccc/internal/deps"
	"github.com/ccc-dev/ccc/internal/fileutil"
	"github.com/ccc-dev/ccc/internal/languages"
	"github.com/ccc-dev/ccc/internal/output"
	"github.com/ccc-dev/ccc/internal/sigmap"
)

// ErrNoFiles is returned when neither arguments nor the find-by
// command selected anything to process.
var ErrNoFiles = errors.New("no files selected")

// RunCraft is the root command: collect files, resolve their
// dependency closure, and emit the assembled context prompt.
func RunCraft(cmd *cobra.Command, args []string) error {
	started := time.Now()

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	files, err := CollectFiles(args, cfg.FindBy)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		_ = cmd.Help()
		return ErrNoFiles
	}

	primary, signatureFiles, err := splitPrimaryAndSignatures(files, cfg)
	if err != nil {
		return err
	}

	output.Statusf("Generating file signatures for %d files...", len(signatureFiles))
	counter := sigmap.NewTokenCounter()
	generator := sigmap.NewGenerator(languages.NewDefaultRegistry(), counter, cfg.SigDetailed)
	signatures := generator.Generate(signatureFiles, cfg.SigTokens)

	output.Statusf("Generating final prompt...")
	prompt := output.BuildPrompt(primary, signatures, cfg.SigOnly)

	if cfg.Verbose {
		output.Statusf("Prompt size: %s, ~%s tokens (%d primary, %d signature files, %s)",
			humanize.Bytes(uint64(len(prompt))),
			humanize.Comma(int64(counter.Count(prompt))),
			len(primary), len(signatureFiles),
			time.Since(started).Round(time.Millisecond))
	}

	return output.WritePrompt(prompt, cfg.Output)
}

// splitPrimaryAndSignatures decides which files go in full and which
// get signatures only. In sig-only mode every file is a signature
// file; otherwise the inputs are primary and their transitive
// dependencies become signature files.
func splitPrimaryAndSignatures(files []string, cfg *config.Config) (primary, signatureFiles []string, err error) {
	if cfg.SigOnly {
		return nil, files, nil
	}

	output.Statusf("Processing %d primary files...", len(files))

	roots, err := absAll(cfg.Roots)
	if err != nil {
		return nil, nil, err
	}

	discovered := make(map[string]bool)
	for _, file := range files {
		for _, dep := range deps.Traverse(file, deps.Options{
			Roots:    roots,
			MaxDepth: cfg.DepDepthMax,
			Verbose:  cfg.Verbose,
		}) {
			discovered[dep] = true
		}
	}

	primarySet := fileutil.ToSet(files)
	signatureFiles = make([]string, 0, len(discovered))
	for dep := range discovered {
		if !primarySet[dep] {
			signatureFiles = append(signatureFiles, dep)
		}
	}
	sort.Strings(signatureFiles)

	return files, signatureFiles, nil
}

// resolveConfig loads the config file and applies explicit flag
// overrides on top.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to read --config flag: %w", err)
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("root") {
		cfg.Roots, _ = flags.GetStringArray("root")
	}
	if flags.Changed("output") {
		cfg.Output, _ = flags.GetString("output")
	}
	if flags.Changed("sig-tokens") {
		cfg.SigTokens, _ = flags.GetInt("sig-tokens")
	}
	if flags.Changed("find-by") {
		cfg.FindBy, _ = flags.GetString("find-by")
	}
	if flags.Changed("dep-depth-max") {
		cfg.DepDepthMax, _ = flags.GetInt("dep-depth-max")
	}
	if flags.Changed("verbose") {
		cfg.Verbose, _ = flags.GetBool("verbose")
	}
	if flags.Changed("sig-only") {
		cfg.SigOnly, _ = flags.GetBool("sig-only")
	}
	if flags.Changed("sig-detailed") {
		cfg.SigDetailed, _ = flags.GetBool("sig-detailed")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
