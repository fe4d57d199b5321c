package index

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Builder owns the index for one generation run. Facts are applied
// one at a time by a single goroutine; once Sort has run the finished
// elements are handed to the renderer and only read from then on.
type Builder struct {
	cmp      Comparator
	elements map[string]*IndexElement // symbol -> tree
	symbols  []string                 // insertion order until Sort
	facts    int
	runID    string
	started  time.Time
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithComparator overrides the ordering used by Sort.
func WithComparator(cmp Comparator) BuilderOption {
	return func(b *Builder) {
		b.cmp = cmp
	}
}

// NewBuilder creates an empty index builder.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{
		cmp:      DefaultComparator(),
		elements: make(map[string]*IndexElement),
		runID:    uuid.NewString(),
		started:  time.Now(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Add applies one scanner fact: the first occurrence of a symbol
// creates its tree, later occurrences merge into it.
func (b *Builder) Add(symbol, class, file, typ, prototype, summary string) {
	b.facts++
	if elem, ok := b.elements[symbol]; ok {
		elem.Merge(class, file, typ, prototype, summary)
		return
	}
	b.elements[symbol] = NewLeaf(symbol, class, file, typ, prototype, summary)
	b.symbols = append(b.symbols, symbol)
}

// Sort orders the symbol list and every element subtree. Idempotent;
// must run after the last Add and before Elements is rendered.
func (b *Builder) Sort() {
	sort.SliceStable(b.symbols, func(i, j int) bool {
		return b.cmp(b.symbols[i], b.symbols[j]) < 0
	})
	for _, symbol := range b.symbols {
		b.elements[symbol].Sort(b.cmp)
	}
}

// Elements returns the symbol-level elements, in sorted order after
// Sort and in insertion order before it.
func (b *Builder) Elements() []*IndexElement {
	out := make([]*IndexElement, 0, len(b.symbols))
	for _, symbol := range b.symbols {
		out = append(out, b.elements[symbol])
	}
	return out
}

// Symbol returns the element for one symbol, or nil.
func (b *Builder) Symbol(name string) *IndexElement {
	return b.elements[name]
}

// Lookup resolves (symbol, class) to a concrete reference target: the
// definition under that class, from its first file when several files
// define it. Returns nil when the symbol is unknown or the class does
// not define it.
func (b *Builder) Lookup(symbol, class string) *ReferenceTarget {
	elem := b.elements[symbol]
	if elem == nil {
		return nil
	}

	scope := elem
	switch elem.ClassKind() {
	case SlotSingle:
		if elem.Class() != class {
			return nil
		}
	case SlotMultiple:
		scope = nil
		for _, child := range elem.Classes() {
			if child.Class() == class {
				scope = child
				break
			}
		}
		if scope == nil {
			return nil
		}
	}

	leaf := scope
	if scope.FileKind() == SlotMultiple {
		leaf = scope.Files()[0]
	}

	return &ReferenceTarget{
		Class:     class,
		Symbol:    symbol,
		File:      leaf.File(),
		Type:      leaf.Type(),
		Prototype: leaf.Prototype(),
		Summary:   leaf.Summary(),
	}
}

// BuildStats summarizes one index build.
type BuildStats struct {
	RunID    string        // unique ID for this build
	Symbols  int           // distinct symbols indexed
	Facts    int           // facts applied, duplicates included
	Duration time.Duration // since the builder was created
}

// Stats reports counters for the run so far.
func (b *Builder) Stats() BuildStats {
	return BuildStats{
		RunID:    b.runID,
		Symbols:  len(b.symbols),
		Facts:    b.facts,
		Duration: time.Since(b.started),
	}
}
