package languages

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/ccc-dev/ccc/internal/parser"
)

// TypeScriptParser implements parsing for TypeScript/JavaScript source files
type TypeScriptParser struct {
	tsParser *sitter.Parser
	jsParser *sitter.Parser
}

// NewTypeScriptParser creates a new TypeScript/JavaScript parser
func NewTypeScriptParser() *TypeScriptParser {
	ts := sitter.NewParser()
	ts.SetLanguage(typescript.GetLanguage())

	js := sitter.NewParser()
	js.SetLanguage(javascript.GetLanguage())

	return &TypeScriptParser{
		tsParser: ts,
		jsParser: js,
	}
}

func (t *TypeScriptParser) Language() string {
	return "typescript"
}

func (t *TypeScriptParser) Extensions() []string {
	return []string{".ts", ".tsx", ".js", ".jsx", ".mjs", ".cjs"}
}

func (t *TypeScriptParser) Parse(filename string, content []byte) (*parser.FileSummary, error) {
	// Choose parser based on extension
	p := t.tsParser
	lang := "typescript"
	if strings.HasSuffix(filename, ".js") || strings.HasSuffix(filename, ".jsx") ||
		strings.HasSuffix(filename, ".mjs") || strings.HasSuffix(filename, ".cjs") {
		p = t.jsParser
		lang = "javascript"
	}

	tree, err := p.ParseCtx(context.Background(), nil, content)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	result := &parser.FileSummary{
		Path:     filename,
		Language: lang,
		Symbols:  make([]parser.Symbol, 0),
	}

	root := tree.RootNode()
	t.extractSymbols(root, content, result, "")

	return result, nil
}

func (t *TypeScriptParser) extractSymbols(node *sitter.Node, content []byte, result *parser.FileSummary, className string) {
	switch node.Type() {
	case "function_declaration":
		sym := t.extractFunction(node, content)
		if sym != nil {
			result.Symbols = append(result.Symbols, *sym)
		}
		return

	case "method_definition":
		sym := t.extractMethod(node, content)
		if sym != nil {
			result.Symbols = append(result.Symbols, *sym)
		}
		return

	case "class_declaration":
		sym := t.extractClass(node, content)
		if sym != nil {
			result.Symbols = append(result.Symbols, *sym)
			// Recurse into class body
			bodyNode := node.ChildByFieldName("body")
			if bodyNode != nil {
				for i := 0; i < int(bodyNode.ChildCount()); i++ {
					t.extractSymbols(bodyNode.Child(i), content, result, sym.Name)
				}
			}
		}
		return

	case "interface_declaration":
		if sym := t.extractNamed(node, content, parser.SymbolInterface, "interface"); sym != nil {
			result.Symbols = append(result.Symbols, *sym)
		}
		return

	case "type_alias_declaration":
		if sym := t.extractNamed(node, content, parser.SymbolStruct, "type"); sym != nil {
			result.Symbols = append(result.Symbols, *sym)
		}
		return

	case "lexical_declaration", "variable_declaration":
		// Arrow functions and function expressions bound to names
		result.Symbols = append(result.Symbols, t.extractVariableDeclarations(node, content)...)
		return

	case "export_statement":
		for i := 0; i < int(node.ChildCount()); i++ {
			t.extractSymbols(node.Child(i), content, result, className)
		}
		return
	}

	// Recurse into children
	for i := 0; i < int(node.ChildCount()); i++ {
		t.extractSymbols(node.Child(i), content, result, className)
	}
}

func (t *TypeScriptParser) extractFunction(node *sitter.Node, content []byte) *parser.Symbol {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}

	return &parser.Symbol{
		Name:      nameNode.Content(content),
		Kind:      parser.SymbolFunction,
		Signature: t.buildFunctionSignature(node, content),
		Line:      int(node.StartPoint().Row) + 1,
	}
}

func (t *TypeScriptParser) extractMethod(node *sitter.Node, content []byte) *parser.Symbol {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}

	return &parser.Symbol{
		Name:      nameNode.Content(content),
		Kind:      parser.SymbolMethod,
		Signature: t.buildMethodSignature(node, content),
		Line:      int(node.StartPoint().Row) + 1,
	}
}

func (t *TypeScriptParser) extractClass(node *sitter.Node, content []byte) *parser.Symbol {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}

	return &parser.Symbol{
		Name:      nameNode.Content(content),
		Kind:      parser.SymbolClass,
		Signature: t.buildClassSignature(node, content),
		Line:      int(node.StartPoint().Row) + 1,
	}
}

func (t *TypeScriptParser) extractNamed(node *sitter.Node, content []byte, kind parser.SymbolKind, keyword string) *parser.Symbol {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}

	name := nameNode.Content(content)
	return &parser.Symbol{
		Name:      name,
		Kind:      kind,
		Signature: keyword + " " + name,
		Line:      int(node.StartPoint().Row) + 1,
	}
}

func (t *TypeScriptParser) extractVariableDeclarations(node *sitter.Node, content []byte) []parser.Symbol {
	symbols := make([]parser.Symbol, 0)

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Type() != "variable_declarator" {
			continue
		}
		nameNode := child.ChildByFieldName("name")
		valueNode := child.ChildByFieldName("value")
		if nameNode == nil || valueNode == nil {
			continue
		}

		if valueNode.Type() == "arrow_function" || valueNode.Type() == "function" {
			symbols = append(symbols, parser.Symbol{
				Name:      nameNode.Content(content),
				Kind:      parser.SymbolFunction,
				Signature: t.buildArrowFunctionSignature(nameNode, valueNode, content),
				Line:      int(child.StartPoint().Row) + 1,
			})
		}
	}

	return symbols
}

func (t *TypeScriptParser) buildFunctionSignature(node *sitter.Node, content []byte) string {
	nameNode := node.ChildByFieldName("name")
	paramsNode := node.ChildByFieldName("parameters")
	returnNode := node.ChildByFieldName("return_type")

	sig := "function"
	if nameNode != nil {
		sig += " " + nameNode.Content(content)
	}
	if paramsNode != nil {
		sig += paramsNode.Content(content)
	}
	if returnNode != nil {
		sig += formatReturnType(returnNode.Content(content))
	}

	return sig
}

func (t *TypeScriptParser) buildMethodSignature(node *sitter.Node, content []byte) string {
	nameNode := node.ChildByFieldName("name")
	paramsNode := node.ChildByFieldName("parameters")
	returnNode := node.ChildByFieldName("return_type")

	sig := ""
	if nameNode != nil {
		sig = nameNode.Content(content)
	}
	if paramsNode != nil {
		sig += paramsNode.Content(content)
	}
	if returnNode != nil {
		sig += formatReturnType(returnNode.Content(content))
	}

	return sig
}

func (t *TypeScriptParser) buildClassSignature(node *sitter.Node, content []byte) string {
	nameNode := node.ChildByFieldName("name")

	sig := "class"
	if nameNode != nil {
		sig += " " + nameNode.Content(content)
	}

	// Look for extends/implements
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Type() == "class_heritage" {
			sig += " " + child.Content(content)
			break
		}
	}

	return sig
}

func (t *TypeScriptParser) buildArrowFunctionSignature(nameNode, valueNode *sitter.Node, content []byte) string {
	paramsNode := valueNode.ChildByFieldName("parameters")
	returnNode := valueNode.ChildByFieldName("return_type")

	sig := "const " + nameNode.Content(content) + " = "
	if paramsNode != nil {
		sig += paramsNode.Content(content)
	}
	sig += " =>"
	if returnNode != nil {
		sig += " " + returnNode.Content(content)
	}

	return sig
}

func formatReturnType(raw string) string {
	value := strings.TrimSpace(raw)
	value = strings.TrimSpace(strings.TrimPrefix(value, ":"))
	if value == "" {
		return ""
	}
	return ": " + value
}
