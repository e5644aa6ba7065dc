// Package sigmap renders condensed signature maps of source files,
// sized to fit a token budget.
package sigmap

import (
	"os"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ccc-dev/ccc/internal/parser"
)

const cacheSize = 512

type detailLevel int

const (
	levelDetailed detailLevel = iota // signatures with doc lines
	levelSignatures
	levelNames
	levelFileList
)

// Generator produces signature maps from parsed source files. Parse
// results are cached by content hash so repeated files are cheap.
type Generator struct {
	registry *parser.Registry
	cache    *lru.Cache[string, *parser.FileSummary]
	counter  TokenCounter
	detailed bool
}

// NewGenerator creates a signature map generator. When detailed is set,
// doc lines are included alongside signatures if the budget allows.
func NewGenerator(registry *parser.Registry, counter TokenCounter, detailed bool) *Generator {
	cache, _ := lru.New[string, *parser.FileSummary](cacheSize)
	return &Generator{
		registry: registry,
		cache:    cache,
		counter:  counter,
		detailed: detailed,
	}
}

// Generate renders a signature map for the given files, degrading the
// level of detail until the output fits tokenBudget. A budget of zero
// or less means no limit. Unreadable files are skipped; files with no
// parser are listed by path only.
func (g *Generator) Generate(files []string, tokenBudget int) string {
	summaries := g.summarize(files)
	if len(summaries) == 0 {
		return ""
	}

	levels := []detailLevel{levelSignatures, levelNames, levelFileList}
	if g.detailed {
		levels = append([]detailLevel{levelDetailed}, levels...)
	}

	rendered := ""
	for _, level := range levels {
		rendered = render(summaries, level)
		if tokenBudget <= 0 || g.counter.Count(rendered) <= tokenBudget {
			return rendered
		}
	}

	// Even the bare file list is over budget; return it anyway rather
	// than dropping files silently.
	return rendered
}

func (g *Generator) summarize(files []string) []*parser.FileSummary {
	sorted := make([]string, len(files))
	copy(sorted, files)
	sort.Strings(sorted)

	summaries := make([]*parser.FileSummary, 0, len(sorted))
	for _, path := range sorted {
		content, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		key := path + "|" + parser.HashContent(content)
		if cached, ok := g.cache.Get(key); ok {
			summaries = append(summaries, cached)
			continue
		}

		summary, err := g.registry.Parse(path, content)
		if err != nil {
			continue
		}
		if summary == nil {
			// No parser for this file type; keep the path visible.
			summary = &parser.FileSummary{Path: path}
		}

		g.cache.Add(key, summary)
		summaries = append(summaries, summary)
	}

	return summaries
}

func render(summaries []*parser.FileSummary, level detailLevel) string {
	var b strings.Builder

	for i, summary := range summaries {
		if i > 0 {
			b.WriteString("\n")
		}

		if level == levelFileList || len(summary.Symbols) == 0 {
			b.WriteString(summary.Path)
			b.WriteString("\n")
			continue
		}

		b.WriteString(summary.Path)
		b.WriteString(":\n")
		for _, sym := range summary.Symbols {
			switch level {
			case levelNames:
				b.WriteString("  " + sym.Kind.String() + " " + sym.Name + "\n")
			default:
				b.WriteString("  " + sym.Signature + "\n")
				if level == levelDetailed && sym.Doc != "" {
					b.WriteString("    " + sym.Doc + "\n")
				}
			}
		}
	}

	return b.String()
}
