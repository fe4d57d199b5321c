package index

import "sort"

// SlotKind describes the shape of one dimension (class or file) of an
// IndexElement. A slot is Absent when an ancestor already fixed that
// dimension, Single while only one distinct value has been seen, and
// Multiple once a second distinct value forced a promotion into child
// elements.
type SlotKind int

const (
	SlotAbsent SlotKind = iota
	SlotSingle
	SlotMultiple
)

// GlobalScope is the class name recorded for symbols defined outside
// any class. It is a valid Single value, distinct from an absent slot.
const GlobalScope = ""

// IndexElement is one node of the symbol index tree. The tree stays as
// flat as possible: a dimension fans out into children only when a
// second distinct value arrives at that level.
//
// Shape invariants, maintained by Merge and MergeFile:
//   - a node never holds both a definition and a Multiple slot
//   - promotion children carry no symbol, and drop whichever dimension
//     the parent fixed
//   - keys within a Multiple list are unique
//
// Callers must branch on ClassKind/FileKind before reading the scalar
// accessors; reading a scalar from a Multiple slot is a contract
// violation, not a recoverable condition.
type IndexElement struct {
	symbol string // set only on symbol-level nodes

	classKind SlotKind
	class     string          // valid when classKind == SlotSingle
	classes   []*IndexElement // valid when classKind == SlotMultiple, unique class keys

	fileKind SlotKind
	file     string
	files    []*IndexElement // valid when fileKind == SlotMultiple, unique file keys

	def *LeafRecord // non-nil only while neither dimension branched
}

// NewLeaf creates the symbol-level node for a symbol's first
// occurrence. class may be GlobalScope.
func NewLeaf(symbol, class, file, typ, prototype, summary string) *IndexElement {
	return &IndexElement{
		symbol:    symbol,
		classKind: SlotSingle,
		class:     class,
		fileKind:  SlotSingle,
		file:      file,
		def:       &LeafRecord{Type: typ, Prototype: prototype, Summary: summary},
	}
}

// Merge folds a new occurrence of this node's symbol into the tree.
// A repeated class delegates to the file dimension; a new class
// promotes the node into a class list or extends an existing one.
func (e *IndexElement) Merge(class, file, typ, prototype, summary string) {
	switch e.classKind {
	case SlotSingle:
		if class == e.class {
			e.MergeFile(file, typ, prototype, summary)
			return
		}
		// Promote: the existing class keeps its file shape as-is, the
		// incoming class starts as a fresh leaf. Neither child repeats
		// the symbol.
		existing := &IndexElement{
			classKind: SlotSingle,
			class:     e.class,
			fileKind:  e.fileKind,
			file:      e.file,
			files:     e.files,
			def:       e.def,
		}
		incoming := newClassChild(class, file, typ, prototype, summary)
		e.classKind = SlotMultiple
		e.classes = []*IndexElement{existing, incoming}
		e.class = ""
		e.fileKind = SlotAbsent
		e.file = ""
		e.files = nil
		e.def = nil
	case SlotMultiple:
		for _, child := range e.classes {
			if child.class == class {
				child.MergeFile(file, typ, prototype, summary)
				return
			}
		}
		e.classes = append(e.classes, newClassChild(class, file, typ, prototype, summary))
	}
}

// MergeFile folds a new occurrence within the scope of one class. A
// repeated file is a duplicate definition and is dropped: the first
// definition per (class, file) pair wins, its record is never
// overwritten.
func (e *IndexElement) MergeFile(file, typ, prototype, summary string) {
	switch e.fileKind {
	case SlotSingle:
		if file == e.file {
			return // first definition wins
		}
		existing := &IndexElement{
			fileKind: SlotSingle,
			file:     e.file,
			def:      e.def,
		}
		incoming := newFileChild(file, typ, prototype, summary)
		e.fileKind = SlotMultiple
		e.files = []*IndexElement{existing, incoming}
		e.file = ""
		e.def = nil
	case SlotMultiple:
		for _, child := range e.files {
			if child.file == file {
				return // first definition wins
			}
		}
		e.files = append(e.files, newFileChild(file, typ, prototype, summary))
	}
}

// newClassChild builds a class-list child: it fixes its own class and
// starts with a single file, but carries no symbol.
func newClassChild(class, file, typ, prototype, summary string) *IndexElement {
	return &IndexElement{
		classKind: SlotSingle,
		class:     class,
		fileKind:  SlotSingle,
		file:      file,
		def:       &LeafRecord{Type: typ, Prototype: prototype, Summary: summary},
	}
}

// newFileChild builds a file-list child: class and symbol are implied
// by the ancestors.
func newFileChild(file, typ, prototype, summary string) *IndexElement {
	return &IndexElement{
		fileKind: SlotSingle,
		file:     file,
		def:      &LeafRecord{Type: typ, Prototype: prototype, Summary: summary},
	}
}

// Sort orders every Multiple list in this subtree with cmp, in place.
// Merges never maintain order incrementally, so Sort must run once
// after all merges and before rendering. It is idempotent.
func (e *IndexElement) Sort(cmp Comparator) {
	if e.fileKind == SlotMultiple {
		sort.SliceStable(e.files, func(i, j int) bool {
			return cmp(e.files[i].file, e.files[j].file) < 0
		})
	}
	if e.classKind == SlotMultiple {
		sort.SliceStable(e.classes, func(i, j int) bool {
			return cmp(e.classes[i].class, e.classes[j].class) < 0
		})
		for _, child := range e.classes {
			child.Sort(cmp)
		}
	}
}

// Symbol returns the symbol name. Empty on promotion children.
func (e *IndexElement) Symbol() string { return e.symbol }

// ClassKind reports the shape of the class dimension.
func (e *IndexElement) ClassKind() SlotKind { return e.classKind }

// Class returns the single class name. Valid only when ClassKind is
// SlotSingle; GlobalScope means the symbol is class-less.
func (e *IndexElement) Class() string { return e.class }

// Classes returns the class children. Valid only when ClassKind is
// SlotMultiple. The returned slice is owned by the element.
func (e *IndexElement) Classes() []*IndexElement { return e.classes }

// FileKind reports the shape of the file dimension.
func (e *IndexElement) FileKind() SlotKind { return e.fileKind }

// File returns the single defining file. Valid only when FileKind is
// SlotSingle.
func (e *IndexElement) File() string { return e.file }

// Files returns the file children. Valid only when FileKind is
// SlotMultiple.
func (e *IndexElement) Files() []*IndexElement { return e.files }

// Definition returns the leaf record, or nil on branching nodes.
func (e *IndexElement) Definition() *LeafRecord { return e.def }

// Type returns the definition's type tag, or "" on branching nodes.
func (e *IndexElement) Type() string {
	if e.def == nil {
		return ""
	}
	return e.def.Type
}

// Prototype returns the definition's prototype, or "" on branching nodes.
func (e *IndexElement) Prototype() string {
	if e.def == nil {
		return ""
	}
	return e.def.Prototype
}

// Summary returns the definition's summary, or "" on branching nodes.
func (e *IndexElement) Summary() string {
	if e.def == nil {
		return ""
	}
	return e.def.Summary
}
