package languages

import (
	"context"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"

	"github.com/ccc-dev/ccc/internal/parser"
)

// JavaParser implements parsing for Java source files
type JavaParser struct {
	parser *sitter.Parser
}

// NewJavaParser creates a new Java parser
func NewJavaParser() *JavaParser {
	p := sitter.NewParser()
	p.SetLanguage(java.GetLanguage())
	return &JavaParser{parser: p}
}

func (j *JavaParser) Language() string {
	return "java"
}

func (j *JavaParser) Extensions() []string {
	return []string{".java"}
}

func (j *JavaParser) Parse(filename string, content []byte) (*parser.FileSummary, error) {
	tree, err := j.parser.ParseCtx(context.Background(), nil, content)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	result := &parser.FileSummary{
		Path:     filename,
		Language: "java",
		Symbols:  make([]parser.Symbol, 0),
	}

	root := tree.RootNode()
	j.extractSymbols(root, content, result)

	return result, nil
}

func (j *JavaParser) extractSymbols(node *sitter.Node, content []byte, result *parser.FileSummary) {
	switch node.Type() {
	case "class_declaration":
		if sym := j.extractType(node, content, parser.SymbolClass, "class"); sym != nil {
			result.Symbols = append(result.Symbols, *sym)
		}

	case "interface_declaration":
		if sym := j.extractType(node, content, parser.SymbolInterface, "interface"); sym != nil {
			result.Symbols = append(result.Symbols, *sym)
		}

	case "enum_declaration":
		if sym := j.extractType(node, content, parser.SymbolClass, "enum"); sym != nil {
			result.Symbols = append(result.Symbols, *sym)
		}

	case "method_declaration":
		if sym := j.extractMethod(node, content); sym != nil {
			result.Symbols = append(result.Symbols, *sym)
		}

	case "constructor_declaration":
		if sym := j.extractConstructor(node, content); sym != nil {
			result.Symbols = append(result.Symbols, *sym)
		}
	}

	// Recurse into children
	for i := 0; i < int(node.ChildCount()); i++ {
		j.extractSymbols(node.Child(i), content, result)
	}
}

func (j *JavaParser) extractType(node *sitter.Node, content []byte, kind parser.SymbolKind, keyword string) *parser.Symbol {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}

	sig := keyword + " " + nameNode.Content(content)
	if superNode := node.ChildByFieldName("superclass"); superNode != nil {
		sig += " " + superNode.Content(content)
	}
	if interfacesNode := node.ChildByFieldName("interfaces"); interfacesNode != nil {
		sig += " " + interfacesNode.Content(content)
	}

	return &parser.Symbol{
		Name:      nameNode.Content(content),
		Kind:      kind,
		Signature: sig,
		Line:      int(node.StartPoint().Row) + 1,
		Doc:       j.docComment(node, content),
	}
}

func (j *JavaParser) extractMethod(node *sitter.Node, content []byte) *parser.Symbol {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}

	sig := ""
	if typeNode := node.ChildByFieldName("type"); typeNode != nil {
		sig = typeNode.Content(content) + " "
	}
	sig += nameNode.Content(content)
	if paramsNode := node.ChildByFieldName("parameters"); paramsNode != nil {
		sig += paramsNode.Content(content)
	}

	return &parser.Symbol{
		Name:      nameNode.Content(content),
		Kind:      parser.SymbolMethod,
		Signature: sig,
		Line:      int(node.StartPoint().Row) + 1,
		Doc:       j.docComment(node, content),
	}
}

func (j *JavaParser) extractConstructor(node *sitter.Node, content []byte) *parser.Symbol {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}

	sig := nameNode.Content(content)
	if paramsNode := node.ChildByFieldName("parameters"); paramsNode != nil {
		sig += paramsNode.Content(content)
	}

	return &parser.Symbol{
		Name:      nameNode.Content(content),
		Kind:      parser.SymbolMethod,
		Signature: sig,
		Line:      int(node.StartPoint().Row) + 1,
		Doc:       j.docComment(node, content),
	}
}

// docComment returns the first line of the block comment preceding a
// declaration, typically a Javadoc comment.
func (j *JavaParser) docComment(node *sitter.Node, content []byte) string {
	prev := node.PrevSibling()
	if prev == nil {
		return ""
	}
	if prev.Type() != "block_comment" && prev.Type() != "line_comment" && prev.Type() != "comment" {
		return ""
	}
	return firstCommentLine(prev.Content(content))
}
