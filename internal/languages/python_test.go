package languages

import "testing"

func TestPythonSignaturesIncludeReturnType(t *testing.T) {
	parser := NewPythonParser()
	file, err := parser.Parse("main.py", []byte(`def run(count: int) -> str:
    """Run the pipeline."""
    return str(count)
`))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	sig := findSignatureByName(file.Symbols, "run")
	if sig != "def run(count: int) -> str" {
		t.Fatalf("unexpected function signature: %q", sig)
	}

	for _, sym := range file.Symbols {
		if sym.Name == "run" && sym.Doc != "Run the pipeline." {
			t.Fatalf("unexpected docstring: %q", sym.Doc)
		}
	}
}

func TestPythonClassMethodsMarkedAsMethods(t *testing.T) {
	parser := NewPythonParser()
	file, err := parser.Parse("box.py", []byte(`class Box(Base):
    def value(self):
        return self._v

def helper():
    pass
`))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	classSig := findSignatureByName(file.Symbols, "Box")
	if classSig != "class Box(Base)" {
		t.Fatalf("unexpected class signature: %q", classSig)
	}

	for _, sym := range file.Symbols {
		switch sym.Name {
		case "value":
			if sym.Kind.String() != "method" {
				t.Fatalf("expected value to be a method, got %s", sym.Kind)
			}
		case "helper":
			if sym.Kind.String() != "func" {
				t.Fatalf("expected helper to be a function, got %s", sym.Kind)
			}
		}
	}
}
