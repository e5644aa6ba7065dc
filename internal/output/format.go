// Package output assembles the final context prompt and renders
// dependency reports.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/src-d/enry/v2"
)

// BuildPrompt formats the final markdown prompt combining primary file
// contents and the signature map. When sigOnly is set the primary
// section is skipped and the signature section is retitled.
func BuildPrompt(primaryFiles []string, signatures string, sigOnly bool) string {
	var b strings.Builder
	b.WriteString("# Context\n\n")

	if !sigOnly && len(primaryFiles) > 0 {
		b.WriteString("## Primary Files (Full Content)\n\n")

		sorted := make([]string, len(primaryFiles))
		copy(sorted, primaryFiles)
		sort.Strings(sorted)

		for _, path := range sorted {
			content := readSourceFile(path)
			fmt.Fprintf(&b, "### %s\n```%s\n%s\n```\n\n", path, fenceLanguage(path, content), content)
		}
	}

	if signatures != "" {
		title := "Dependencies (Signatures)"
		if sigOnly {
			title = "File Signatures"
		}
		fmt.Fprintf(&b, "## %s\n\n", title)
		b.WriteString(signatures)
	}

	return b.String()
}

// readSourceFile returns the file content, or an inline error marker so
// a single unreadable file does not abort the whole prompt.
func readSourceFile(path string) string {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Sprintf("Error reading %s: %v", path, err)
	}
	return string(content)
}

// fenceLanguage picks the code fence language tag for a file.
func fenceLanguage(path, content string) string {
	lang := enry.GetLanguage(filepath.Base(path), []byte(content))
	return strings.ToLower(lang)
}
