package parser

import "testing"

type fakeParser struct{}

func (fakeParser) Language() string     { return "fake" }
func (fakeParser) Extensions() []string { return []string{".fake"} }
func (fakeParser) Parse(filename string, content []byte) (*FileSummary, error) {
	return &FileSummary{Path: filename, Language: "fake"}, nil
}

func TestRegistryDispatchesByExtension(t *testing.T) {
	r := NewRegistry()
	r.Register(fakeParser{})

	if _, ok := r.GetParserForFile("thing.fake"); !ok {
		t.Fatal("expected parser for registered extension")
	}
	if _, ok := r.GetParserForFile("THING.FAKE"); !ok {
		t.Fatal("extension matching should be case-insensitive")
	}
	if _, ok := r.GetParserForFile("thing.other"); ok {
		t.Fatal("expected no parser for unregistered extension")
	}
}

func TestParseUnsupportedReturnsNil(t *testing.T) {
	r := NewRegistry()
	summary, err := r.Parse("data.bin", []byte{0x00})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary != nil {
		t.Fatalf("expected nil summary for unsupported file, got %#v", summary)
	}
}

func TestParseSetsContentHash(t *testing.T) {
	r := NewRegistry()
	r.Register(fakeParser{})

	summary, err := r.Parse("thing.fake", []byte("content"))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if summary.Hash == "" || len(summary.Hash) != 16 {
		t.Fatalf("expected 16-char content hash, got %q", summary.Hash)
	}
	if summary.Hash != HashContent([]byte("content")) {
		t.Fatal("hash should be deterministic for identical content")
	}
}
