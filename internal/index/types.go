package index

// LeafRecord holds the documentation payload of one concrete symbol
// definition. It is attached at the most specific non-branching point
// of a symbol's tree and never mutated after creation.
type LeafRecord struct {
	Type      string // symbol kind tag (e.g. "function", "struct", "method")
	Prototype string // declaration text, empty if the scanner found none
	Summary   string // first sentence of the symbol's documentation
}

// ReferenceTarget identifies a cross-reference destination resolved
// from the finished index. Renderers consume it to emit links; the
// index itself never stores one.
type ReferenceTarget struct {
	Class     string // owning class, GlobalScope for class-less symbols
	Symbol    string
	File      string
	Type      string
	Prototype string
	Summary   string
}
