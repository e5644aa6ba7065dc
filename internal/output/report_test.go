package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func sampleReport() *DepsReport {
	return &DepsReport{
		Entry: "/src/main.py",
		Dependencies: []DepEntry{
			{Path: "/src/util.py", Depth: 1},
			{Path: "/src/deep/helper.py", Depth: 2},
		},
	}
}

func TestRenderTableListsDependencies(t *testing.T) {
	var buf bytes.Buffer
	if err := sampleReport().RenderTable(&buf); err != nil {
		t.Fatalf("RenderTable failed: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "/src/main.py:") {
		t.Fatalf("missing entry header:\n%s", out)
	}
	for _, want := range []string{"/src/util.py", "/src/deep/helper.py", "Total: 2 files"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in table:\n%s", want, out)
		}
	}
}

func TestRenderJSONRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	if err := sampleReport().RenderJSON(&buf); err != nil {
		t.Fatalf("RenderJSON failed: %v", err)
	}

	var decoded DepsReport
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if decoded.Entry != "/src/main.py" || len(decoded.Dependencies) != 2 {
		t.Fatalf("unexpected decoded report: %#v", decoded)
	}
	if decoded.Dependencies[1].Depth != 2 {
		t.Fatalf("depth lost in JSON output: %#v", decoded.Dependencies)
	}
}

func TestRenderDispatch(t *testing.T) {
	var buf bytes.Buffer
	if err := sampleReport().Render(&buf, "yaml"); err != nil {
		t.Fatalf("yaml render failed: %v", err)
	}
	if !strings.Contains(buf.String(), "entry: /src/main.py") {
		t.Fatalf("unexpected yaml output:\n%s", buf.String())
	}

	if err := sampleReport().Render(&buf, "csv"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
