package languages

import "github.com/ccc-dev/ccc/internal/parser"

// NewDefaultRegistry creates a registry with all supported language parsers
func NewDefaultRegistry() *parser.Registry {
	r := parser.NewRegistry()

	r.Register(NewPythonParser())
	r.Register(NewTypeScriptParser())
	r.Register(NewJavaParser())
	r.Register(NewGoParser())

	return r
}
