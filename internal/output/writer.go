package output

import (
	"fmt"

	"github.com/ccc-dev/ccc/internal/fileutil"
)

// WritePrompt sends the prompt to the given file, or stdout when no
// path is set. File writes are skipped when the content is unchanged.
func WritePrompt(prompt, outputPath string) error {
	prompt = fileutil.EnsureTrailingNewline(prompt)

	if outputPath == "" {
		fmt.Print(prompt)
		return nil
	}

	if err := fileutil.WriteIfChanged(outputPath, []byte(prompt)); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	Statusf("Prompt written to %s", outputPath)
	return nil
}
