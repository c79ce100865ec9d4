package asm

// Symbol is a label, possibly declared before it is defined.
type Symbol struct {
	Name     string
	Address  uint32
	Resolved bool
	Global   bool
	External bool
	Kind     SymbolKind
}

// SourceLine is one line of source after Pass 1.
type SourceLine struct {
	LineNo    int
	Text      string
	Kind      LineKind
	Labels    []string
	Mnemonic  string
	Operands  []string
	Address   uint32
	Size      uint32
	Section   Section
	Directive Directive // Set for LINE_DIRECTIVE.
	Pseudo    Pseudo    // Set for LINE_PSEUDO.
}
