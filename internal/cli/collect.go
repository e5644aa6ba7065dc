package cli

import (
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/ccc-dev/ccc/internal/deps"
	"github.com/ccc-dev/ccc/internal/fileutil"
	"github.com/ccc-dev/ccc/internal/ignore"
	"github.com/ccc-dev/ccc/internal/languages"
)

// ignoreFileName is the per-project exclusion file read during
// directory scans.
const ignoreFileName = ".cccignore"

// CollectFiles gathers the files to process: output of the find-by
// shell command first, then positional arguments. Directory arguments
// are scanned recursively for supported file types. The result is
// deduplicated in order and converted to absolute paths.
func CollectFiles(args []string, findBy string) ([]string, error) {
	collected := make([]string, 0, len(args))

	if findBy != "" {
		found, err := runFindCommand(findBy)
		if err != nil {
			return nil, err
		}
		collected = append(collected, found...)
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err == nil && info.IsDir() {
			scanned, err := scanDirectory(arg)
			if err != nil {
				return nil, err
			}
			collected = append(collected, scanned...)
			continue
		}
		// Nonexistent paths stay in the list; unreadable primaries are
		// reported inline in the prompt rather than aborting the run.
		collected = append(collected, arg)
	}

	collected = fileutil.DedupeStrings(collected)

	absolute := make([]string, 0, len(collected))
	for _, path := range collected {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("resolve path %s: %w", path, err)
		}
		absolute = append(absolute, abs)
	}

	return absolute, nil
}

func runFindCommand(findBy string) ([]string, error) {
	out, err := exec.Command("sh", "-c", findBy).Output()
	if err != nil {
		return nil, fmt.Errorf("find command failed: %w", err)
	}

	files := make([]string, 0)
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			files = append(files, line)
		}
	}
	return files, nil
}

// scanDirectory walks root collecting supported source files, honoring
// .cccignore rules found at the scan root.
func scanDirectory(root string) ([]string, error) {
	matcher := ignore.NewMatcher(loadIgnoreRules(root))
	supported := supportedExtensions()

	files := make([]string, 0)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil || rel == "." {
			return nil
		}

		if d.IsDir() {
			if matcher.ShouldIgnore(rel, true) {
				return filepath.SkipDir
			}
			return nil
		}

		if matcher.ShouldIgnore(rel, false) {
			return nil
		}
		if supported[strings.ToLower(filepath.Ext(path))] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	return files, nil
}

func loadIgnoreRules(root string) []string {
	content, err := os.ReadFile(filepath.Join(root, ignoreFileName))
	if err != nil {
		return nil
	}
	return strings.Split(string(content), "\n")
}

// supportedExtensions joins the parser registry's extensions with the
// extensions the dependency resolver probes.
func supportedExtensions() map[string]bool {
	set := make(map[string]bool)
	for _, ext := range languages.NewDefaultRegistry().SupportedExtensions() {
		set[ext] = true
	}
	for _, ext := range deps.Extensions {
		set["."+ext] = true
	}
	return set
}
