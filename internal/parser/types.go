package parser

// SymbolKind represents the type of code symbol
type SymbolKind int

const (
	SymbolFunction SymbolKind = iota
	SymbolMethod
	SymbolClass
	SymbolStruct
	SymbolInterface
	SymbolConstant
	SymbolVariable
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolFunction:
		return "func"
	case SymbolMethod:
		return "method"
	case SymbolClass:
		return "class"
	case SymbolStruct:
		return "struct"
	case SymbolInterface:
		return "interface"
	case SymbolConstant:
		return "const"
	case SymbolVariable:
		return "var"
	default:
		return "unknown"
	}
}

// Symbol represents a code symbol (function, class, etc.)
type Symbol struct {
	Name      string
	Kind      SymbolKind
	Signature string // e.g., "def resolve(roots, ref) -> str"
	Line      int    // line number
	Doc       string // first docstring/comment line if available
}

// FileSummary holds the condensed structure extracted from a single file
type FileSummary struct {
	Path     string
	Language string
	Symbols  []Symbol
	Hash     string // content hash, used as a signature-cache key
}
