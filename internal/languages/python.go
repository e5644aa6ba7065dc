package languages

import (
	"context"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/ccc-dev/ccc/internal/parser"
)

// PythonParser implements parsing for Python source files
type PythonParser struct {
	parser *sitter.Parser
}

// NewPythonParser creates a new Python parser
func NewPythonParser() *PythonParser {
	p := sitter.NewParser()
	p.SetLanguage(python.GetLanguage())
	return &PythonParser{parser: p}
}

func (p *PythonParser) Language() string {
	return "python"
}

func (p *PythonParser) Extensions() []string {
	return []string{".py", ".pyw"}
}

func (p *PythonParser) Parse(filename string, content []byte) (*parser.FileSummary, error) {
	tree, err := p.parser.ParseCtx(context.Background(), nil, content)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	result := &parser.FileSummary{
		Path:     filename,
		Language: "python",
		Symbols:  make([]parser.Symbol, 0),
	}

	root := tree.RootNode()
	p.extractSymbols(root, content, result, "")

	return result, nil
}

func (p *PythonParser) extractSymbols(node *sitter.Node, content []byte, result *parser.FileSummary, className string) {
	switch node.Type() {
	case "function_definition":
		sym := p.extractFunction(node, content, className)
		if sym != nil {
			result.Symbols = append(result.Symbols, *sym)
		}
		// Skip nested functions
		return

	case "class_definition":
		sym := p.extractClass(node, content)
		if sym != nil {
			result.Symbols = append(result.Symbols, *sym)
			// Recurse into class body to get methods
			bodyNode := node.ChildByFieldName("body")
			if bodyNode != nil {
				for i := 0; i < int(bodyNode.ChildCount()); i++ {
					p.extractSymbols(bodyNode.Child(i), content, result, sym.Name)
				}
			}
		}
		return
	}

	// Recurse into children
	for i := 0; i < int(node.ChildCount()); i++ {
		p.extractSymbols(node.Child(i), content, result, className)
	}
}

func (p *PythonParser) extractFunction(node *sitter.Node, content []byte, className string) *parser.Symbol {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}

	kind := parser.SymbolFunction
	if className != "" {
		kind = parser.SymbolMethod
	}

	return &parser.Symbol{
		Name:      nameNode.Content(content),
		Kind:      kind,
		Signature: p.buildFunctionSignature(node, content),
		Line:      int(node.StartPoint().Row) + 1,
		Doc:       p.docstring(node, content),
	}
}

func (p *PythonParser) extractClass(node *sitter.Node, content []byte) *parser.Symbol {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}

	return &parser.Symbol{
		Name:      nameNode.Content(content),
		Kind:      parser.SymbolClass,
		Signature: p.buildClassSignature(node, content),
		Line:      int(node.StartPoint().Row) + 1,
		Doc:       p.docstring(node, content),
	}
}

// docstring returns the first line of a function or class docstring.
func (p *PythonParser) docstring(node *sitter.Node, content []byte) string {
	bodyNode := node.ChildByFieldName("body")
	if bodyNode == nil || bodyNode.ChildCount() == 0 {
		return ""
	}
	firstStmt := bodyNode.Child(0)
	if firstStmt.Type() != "expression_statement" || firstStmt.ChildCount() == 0 {
		return ""
	}
	expr := firstStmt.Child(0)
	if expr.Type() != "string" {
		return ""
	}
	return extractDocstring(expr.Content(content))
}

func (p *PythonParser) buildFunctionSignature(node *sitter.Node, content []byte) string {
	nameNode := node.ChildByFieldName("name")
	paramsNode := node.ChildByFieldName("parameters")
	returnNode := node.ChildByFieldName("return_type")

	sig := "def"
	if nameNode != nil {
		sig += " " + nameNode.Content(content)
	}
	if paramsNode != nil {
		sig += paramsNode.Content(content)
	}
	if returnNode != nil {
		sig += " -> " + returnNode.Content(content)
	}

	return sig
}

func (p *PythonParser) buildClassSignature(node *sitter.Node, content []byte) string {
	nameNode := node.ChildByFieldName("name")
	superclassNode := node.ChildByFieldName("superclasses")

	sig := "class"
	if nameNode != nil {
		sig += " " + nameNode.Content(content)
	}
	if superclassNode != nil {
		sig += superclassNode.Content(content)
	}

	return sig
}
