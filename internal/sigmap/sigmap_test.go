package sigmap

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ccc-dev/ccc/internal/languages"
)

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestGenerateRendersSignatures(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, filepath.Join(dir, "util.py"), `def load(path: str) -> dict:
    """Load a file."""
    return {}
`)

	gen := NewGenerator(languages.NewDefaultRegistry(), estimateCounter{}, false)
	out := gen.Generate([]string{path}, 0)

	if !strings.Contains(out, path+":") {
		t.Fatalf("expected file header in output:\n%s", out)
	}
	if !strings.Contains(out, "def load(path: str) -> dict") {
		t.Fatalf("expected signature in output:\n%s", out)
	}
	if strings.Contains(out, "Load a file.") {
		t.Fatalf("doc line should only appear in detailed mode:\n%s", out)
	}
}

func TestGenerateDetailedIncludesDocLines(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, filepath.Join(dir, "util.py"), `def load(path: str) -> dict:
    """Load a file."""
    return {}
`)

	gen := NewGenerator(languages.NewDefaultRegistry(), estimateCounter{}, true)
	out := gen.Generate([]string{path}, 0)

	if !strings.Contains(out, "Load a file.") {
		t.Fatalf("expected doc line in detailed output:\n%s", out)
	}
}

func TestGenerateDegradesToFileListUnderTightBudget(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, filepath.Join(dir, "big.py"), `def first(alpha, beta, gamma) -> str:
    return ""

def second(delta, epsilon) -> int:
    return 0

class Widget(Base):
    def render(self, surface, options):
        pass
`)

	gen := NewGenerator(languages.NewDefaultRegistry(), estimateCounter{}, false)

	full := gen.Generate([]string{path}, 0)
	if !strings.Contains(full, "def first(alpha, beta, gamma) -> str") {
		t.Fatalf("expected full signatures with no budget:\n%s", full)
	}

	// Budget big enough only for the bare path.
	tight := gen.Generate([]string{path}, estimateCounter{}.Count(path+"\n"))
	if tight != path+"\n" {
		t.Fatalf("expected bare file list under tight budget, got:\n%s", tight)
	}
}

func TestGenerateListsUnsupportedFilesByPath(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, filepath.Join(dir, "data.json"), `{"a": 1}`)

	gen := NewGenerator(languages.NewDefaultRegistry(), estimateCounter{}, false)
	out := gen.Generate([]string{path}, 0)

	if strings.TrimSpace(out) != path {
		t.Fatalf("expected bare path for unsupported file, got:\n%s", out)
	}
}

func TestGenerateSkipsUnreadableFiles(t *testing.T) {
	dir := t.TempDir()
	readable := writeFile(t, filepath.Join(dir, "ok.py"), "def ok():\n    pass\n")
	missing := filepath.Join(dir, "gone.py")

	gen := NewGenerator(languages.NewDefaultRegistry(), estimateCounter{}, false)
	out := gen.Generate([]string{missing, readable}, 0)

	if strings.Contains(out, "gone.py") {
		t.Fatalf("missing file should be skipped:\n%s", out)
	}
	if !strings.Contains(out, "def ok()") {
		t.Fatalf("readable file should still render:\n%s", out)
	}
}

func TestGenerateEmptyInput(t *testing.T) {
	gen := NewGenerator(languages.NewDefaultRegistry(), estimateCounter{}, false)
	if out := gen.Generate(nil, 0); out != "" {
		t.Fatalf("expected empty output, got %q", out)
	}
}
