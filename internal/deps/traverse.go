// Package deps discovers the transitive set of local source files a given
// file depends on, without a full language parser. Import-like references are
// extracted heuristically from raw text, resolved against an ordered list of
// root directories, and expanded breadth-first with cycle-safe dedup and an
// optional depth bound.
package deps

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/fatih/color"
)

// NoDepthLimit disables the traversal depth gate.
const NoDepthLimit = -1

// Options configures a single traversal.
//
// The zero value gates expansion at depth 0, i.e. only the entry file's
// direct references are returned; set MaxDepth to NoDepthLimit for an
// unbounded traversal.
type Options struct {
	// Roots are the directories references are resolved against, in priority
	// order. When empty, each file's references resolve against that file's
	// own containing directory.
	Roots []string

	// MaxDepth bounds expansion, not membership: files discovered at depth
	// MaxDepth+1 still appear in the result, but are never read themselves.
	// Negative values disable the bound.
	MaxDepth int

	// Verbose enables per-file diagnostics on stderr. It has no effect on
	// the returned set.
	Verbose bool
}

// Dependency pairs a resolved path with the BFS depth it was first
// discovered at.
type Dependency struct {
	Path  string
	Depth int
}

type queueItem struct {
	path  string
	depth int
}

var verboseLine = color.New(color.FgHiBlack)

// Traverse returns the absolute paths of every local file transitively
// reachable from entry, excluding entry itself. Unreadable files contribute
// zero references and unresolvable references are silently dropped, so the
// traversal always completes; there is no error path.
func Traverse(entry string, opts Options) []string {
	discovered := traverse(entry, opts)

	out := make([]string, 0, len(discovered))
	for path := range discovered {
		out = append(out, path)
	}
	sort.Strings(out)
	return out
}

// TraverseDepths is Traverse with each dependency's discovery depth attached,
// sorted by depth then path.
func TraverseDepths(entry string, opts Options) []Dependency {
	discovered := traverse(entry, opts)

	out := make([]Dependency, 0, len(discovered))
	for path, depth := range discovered {
		out = append(out, Dependency{Path: path, Depth: depth})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Depth != out[j].Depth {
			return out[i].Depth < out[j].Depth
		}
		return out[i].Path < out[j].Path
	})
	return out
}

func traverse(entry string, opts Options) map[string]int {
	absEntry, err := filepath.Abs(entry)
	if err != nil {
		absEntry = entry
	}

	visited := map[string]bool{absEntry: true}
	discovered := make(map[string]int)
	frontier := []queueItem{{path: absEntry, depth: 0}}

	for len(frontier) > 0 {
		cur := frontier[0]
		frontier = frontier[1:]

		// Gate expansion only; cur may already be in the result.
		if opts.MaxDepth >= 0 && cur.depth > opts.MaxDepth {
			continue
		}

		if opts.Verbose {
			verboseLine.Fprintf(os.Stderr, "processing %s (depth %d)\n", cur.path, cur.depth)
		}

		content, err := os.ReadFile(cur.path)
		if err != nil {
			if opts.Verbose {
				verboseLine.Fprintf(os.Stderr, "skipping %s: %v\n", cur.path, err)
			}
			continue
		}

		roots := opts.Roots
		if len(roots) == 0 {
			roots = []string{filepath.Dir(cur.path)}
		}

		for _, ref := range Extract(string(content)) {
			resolved, ok := Resolve(roots, ref)
			if !ok {
				continue
			}
			if resolved == absEntry {
				continue
			}

			if _, seen := discovered[resolved]; !seen {
				discovered[resolved] = cur.depth + 1
			}
			if !visited[resolved] {
				visited[resolved] = true
				frontier = append(frontier, queueItem{path: resolved, depth: cur.depth + 1})
			}
		}
	}

	return discovered
}
