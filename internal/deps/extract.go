package deps

import (
	"regexp"
	"sort"
	"strings"
)

// Import-reference patterns, one per language family. Every pattern runs on
// every input regardless of the file's extension; the extractor is
// deliberately extension-agnostic.
var (
	plainImportPattern      = regexp.MustCompile(`(?m)^\s*import\s+([^\n#;/]+)`)
	fromImportPattern       = regexp.MustCompile(`(?m)^\s*from\s+([a-zA-Z0-9_.]+)\s+import`)
	javaImportPattern       = regexp.MustCompile(`(?m)^\s*import\s+((?:[a-zA-Z_]\w*\.)+[A-Za-z_]\w*)\s*;`)
	javaStaticImportPattern = regexp.MustCompile(`(?m)^\s*import\s+static\s+((?:[a-zA-Z_]\w*\.)+[A-Za-z_]\w*)\.[A-Za-z_]\w*\s*;`)
	moduleImportPattern     = regexp.MustCompile(`(?m)^\s*import(?:\s+type)?\s+(?:\{[^}]*\}|\*\s+as\s+\w+|\w+)?(?:\s+from)?\s*['"]([^'"]+)["']`)
	requireCallPattern      = regexp.MustCompile(`require\s*\(\s*['"]([^'"]+)["']\s*\)`)
)

// Extract returns the raw import references found in text, deduplicated and
// sorted. It never fails: malformed or empty input yields an empty or partial
// result. The returned strings are unresolved; they may or may not correspond
// to files on disk.
func Extract(text string) []string {
	names := plainImports(text)

	capturing := []*regexp.Regexp{
		fromImportPattern,
		javaImportPattern,
		javaStaticImportPattern,
		moduleImportPattern,
		requireCallPattern,
	}
	for _, pattern := range capturing {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			names = append(names, match[1])
		}
	}

	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if strings.Contains(name, "*") {
			continue
		}
		name = strings.Trim(strings.TrimSpace(name), `"'`)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// plainImports handles bare "import a, b, c" lines. Captures that are really
// from-imports, Java static imports, or brace-style JS imports are dropped
// here; the dedicated patterns pick those up instead.
func plainImports(text string) []string {
	matches := plainImportPattern.FindAllStringSubmatch(text, -1)
	out := make([]string, 0, len(matches))
	for _, match := range matches {
		raw := match[1]
		if strings.Contains(raw, " from ") ||
			strings.HasPrefix(strings.TrimSpace(raw), "static ") ||
			strings.ContainsAny(raw, "{}") {
			continue
		}
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if idx := strings.Index(part, "}"); idx != -1 {
				part = strings.TrimSpace(part[:idx])
			}
			if part == "" ||
				strings.HasPrefix(part, `"`) ||
				strings.HasPrefix(part, "'") ||
				strings.Contains(part, "*") {
				continue
			}
			out = append(out, part)
		}
	}
	return out
}
