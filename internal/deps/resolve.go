package deps

import (
	"os"
	"path/filepath"
	"strings"
)

// Extensions is the fixed probe list for reference resolution, in priority
// order. A candidate path is probed bare first, then with each extension.
var Extensions = []string{"py", "js", "mjs", "ts", "java", "json"}

// Resolve maps a raw import reference to the first existing regular file
// under the given roots. Roots are tried strictly in order: a hit under an
// earlier root always wins, regardless of what later roots contain. An
// already-absolute reference resolves to itself, bypassing the roots. The
// returned path is absolute. The second return value reports whether any
// root/extension combination matched.
func Resolve(roots []string, ref string) (string, bool) {
	pathRef := ref
	if !isRelativeFragment(ref) {
		pathRef = strings.ReplaceAll(ref, ".", string(filepath.Separator))
	}

	for _, root := range roots {
		candidate := pathRef
		if !filepath.IsAbs(candidate) {
			candidate = filepath.Join(root, candidate)
		}
		candidate = filepath.Clean(candidate)

		probes := make([]string, 0, len(Extensions)+1)
		probes = append(probes, candidate)
		for _, ext := range Extensions {
			probes = append(probes, candidate+"."+ext)
		}

		for _, probe := range probes {
			info, err := os.Stat(probe)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
			abs, err := filepath.Abs(probe)
			if err != nil {
				continue
			}
			return abs, true
		}
	}

	return "", false
}

// ResolveIn resolves a reference against a single root directory.
func ResolveIn(root, ref string) (string, bool) {
	return Resolve([]string{root}, ref)
}

// isRelativeFragment reports whether ref is already a filesystem fragment.
// Anything else is treated as a dotted module path.
func isRelativeFragment(ref string) bool {
	return strings.HasPrefix(ref, "/") ||
		strings.HasPrefix(ref, "./") ||
		strings.HasPrefix(ref, "../")
}
