package languages

import (
	"context"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"

	"github.com/ccc-dev/ccc/internal/parser"
)

// GoParser implements parsing for Go source files
type GoParser struct {
	parser *sitter.Parser
}

// NewGoParser creates a new Go parser
func NewGoParser() *GoParser {
	p := sitter.NewParser()
	p.SetLanguage(golang.GetLanguage())
	return &GoParser{parser: p}
}

func (g *GoParser) Language() string {
	return "go"
}

func (g *GoParser) Extensions() []string {
	return []string{".go"}
}

func (g *GoParser) Parse(filename string, content []byte) (*parser.FileSummary, error) {
	tree, err := g.parser.ParseCtx(context.Background(), nil, content)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	result := &parser.FileSummary{
		Path:     filename,
		Language: "go",
		Symbols:  make([]parser.Symbol, 0),
	}

	root := tree.RootNode()
	g.extractSymbols(root, content, result)

	return result, nil
}

func (g *GoParser) extractSymbols(node *sitter.Node, content []byte, result *parser.FileSummary) {
	switch node.Type() {
	case "function_declaration":
		if sym := g.extractFunction(node, content); sym != nil {
			result.Symbols = append(result.Symbols, *sym)
		}

	case "method_declaration":
		if sym := g.extractMethod(node, content); sym != nil {
			result.Symbols = append(result.Symbols, *sym)
		}

	case "type_declaration":
		result.Symbols = append(result.Symbols, g.extractTypeDecl(node, content)...)
	}

	// Recurse into children
	for i := 0; i < int(node.ChildCount()); i++ {
		g.extractSymbols(node.Child(i), content, result)
	}
}

func (g *GoParser) extractFunction(node *sitter.Node, content []byte) *parser.Symbol {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}

	return &parser.Symbol{
		Name:      nameNode.Content(content),
		Kind:      parser.SymbolFunction,
		Signature: g.buildFunctionSignature(node, content),
		Line:      int(node.StartPoint().Row) + 1,
		Doc:       g.docComment(node, content),
	}
}

func (g *GoParser) extractMethod(node *sitter.Node, content []byte) *parser.Symbol {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}

	sig := "func"
	if receiverNode := node.ChildByFieldName("receiver"); receiverNode != nil {
		sig += " " + receiverNode.Content(content)
	}
	sig += " " + nameNode.Content(content)
	if paramsNode := node.ChildByFieldName("parameters"); paramsNode != nil {
		sig += paramsNode.Content(content)
	}
	if resultNode := node.ChildByFieldName("result"); resultNode != nil {
		sig += " " + resultNode.Content(content)
	}

	return &parser.Symbol{
		Name:      nameNode.Content(content),
		Kind:      parser.SymbolMethod,
		Signature: sig,
		Line:      int(node.StartPoint().Row) + 1,
		Doc:       g.docComment(node, content),
	}
}

func (g *GoParser) extractTypeDecl(node *sitter.Node, content []byte) []parser.Symbol {
	symbols := make([]parser.Symbol, 0)

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Type() != "type_spec" {
			continue
		}
		nameNode := child.ChildByFieldName("name")
		typeNode := child.ChildByFieldName("type")
		if nameNode == nil {
			continue
		}

		kind := parser.SymbolStruct
		if typeNode != nil && typeNode.Type() == "interface_type" {
			kind = parser.SymbolInterface
		}

		symbols = append(symbols, parser.Symbol{
			Name:      nameNode.Content(content),
			Kind:      kind,
			Signature: g.buildTypeSignature(child, content),
			Line:      int(child.StartPoint().Row) + 1,
		})
	}

	return symbols
}

// docComment returns the first line of the comment block immediately above
// a declaration.
func (g *GoParser) docComment(node *sitter.Node, content []byte) string {
	prev := node.PrevSibling()
	if prev == nil || prev.Type() != "comment" {
		return ""
	}
	if int(node.StartPoint().Row)-int(prev.EndPoint().Row) > 1 {
		return ""
	}
	return firstCommentLine(prev.Content(content))
}

func (g *GoParser) buildFunctionSignature(node *sitter.Node, content []byte) string {
	nameNode := node.ChildByFieldName("name")
	paramsNode := node.ChildByFieldName("parameters")
	resultNode := node.ChildByFieldName("result")

	sig := "func"
	if nameNode != nil {
		sig += " " + nameNode.Content(content)
	}
	if paramsNode != nil {
		sig += paramsNode.Content(content)
	}
	if resultNode != nil {
		sig += " " + resultNode.Content(content)
	}

	return sig
}

func (g *GoParser) buildTypeSignature(node *sitter.Node, content []byte) string {
	nameNode := node.ChildByFieldName("name")
	typeNode := node.ChildByFieldName("type")

	if nameNode == nil {
		return ""
	}

	sig := "type " + nameNode.Content(content)
	if typeNode != nil {
		switch typeNode.Type() {
		case "struct_type":
			sig += " struct"
		case "interface_type":
			sig += " interface"
		default:
			sig += " " + typeNode.Content(content)
		}
	}

	return sig
}
