package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"
)

// DepEntry is one discovered dependency with its traversal distance
// from the entry file.
type DepEntry struct {
	Path  string `json:"path" yaml:"path"`
	Depth int    `json:"depth" yaml:"depth"`
}

// DepsReport summarizes a dependency traversal for one entry file.
type DepsReport struct {
	Entry        string     `json:"entry" yaml:"entry"`
	Dependencies []DepEntry `json:"dependencies" yaml:"dependencies"`
}

// RenderTable writes the report as a plain text table.
func (r *DepsReport) RenderTable(w io.Writer) error {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.SeparateColumns = false
	tbl.Style().Options.DrawBorder = false

	tbl.AppendHeader(table.Row{"DEPTH", "PATH"})
	for _, dep := range r.Dependencies {
		tbl.AppendRow(table.Row{dep.Depth, dep.Path})
	}
	tbl.AppendFooter(table.Row{"", fmt.Sprintf("Total: %d files", len(r.Dependencies))})

	_, err := fmt.Fprintf(w, "%s:\n%s\n", r.Entry, tbl.Render())
	return err
}

// RenderJSON writes the report as indented JSON.
func (r *DepsReport) RenderJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// RenderYAML writes the report as YAML.
func (r *DepsReport) RenderYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(r)
}

// Render dispatches on the requested format.
func (r *DepsReport) Render(w io.Writer, format string) error {
	switch format {
	case "", "table":
		return r.RenderTable(w)
	case "json":
		return r.RenderJSON(w)
	case "yaml":
		return r.RenderYAML(w)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
