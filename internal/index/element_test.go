package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for IndexElement:
// - Single (class, file) pair keeps scalar shapes and a readable definition
// - Second distinct class promotes the class slot into a two-element list
// - Second distinct file under one class promotes only the file slot
// - Duplicate (class, file) facts are dropped, first definition wins
// - Promotion children never repeat the symbol or the fixed dimensions
// - Multiple lists never hold two children with the same key
// - Sort orders every list at every depth and is idempotent
// - Global-scope symbols behave like any other single class value

func TestElement_SingleDefinitionStaysFlat(t *testing.T) {
	t.Parallel()

	// Scenario A: one global fact, everything stays scalar
	elem := NewLeaf("foo", GlobalScope, "a.c", "function", "void foo()", "Does foo.")

	assert.Equal(t, "foo", elem.Symbol())
	assert.Equal(t, SlotSingle, elem.ClassKind())
	assert.Equal(t, GlobalScope, elem.Class())
	assert.Equal(t, SlotSingle, elem.FileKind())
	assert.Equal(t, "a.c", elem.File())

	require.NotNil(t, elem.Definition())
	assert.Equal(t, "function", elem.Type())
	assert.Equal(t, "void foo()", elem.Prototype())
	assert.Equal(t, "Does foo.", elem.Summary())
}

func TestElement_ClassPromotion(t *testing.T) {
	t.Parallel()

	// Scenario B: two distinct classes yield a two-element class list,
	// each element keeping a scalar file
	elem := NewLeaf("foo", "Widget", "w.c", "method", "", "")
	elem.Merge("Gadget", "g.c", "method", "", "")

	require.Equal(t, SlotMultiple, elem.ClassKind())
	require.Len(t, elem.Classes(), 2)
	assert.Equal(t, SlotAbsent, elem.FileKind(), "promoted node must not keep a file")
	assert.Nil(t, elem.Definition(), "promoted node must not keep a definition")

	byClass := map[string]*IndexElement{}
	for _, child := range elem.Classes() {
		assert.Empty(t, child.Symbol(), "children must not repeat the symbol")
		require.Equal(t, SlotSingle, child.ClassKind())
		byClass[child.Class()] = child
	}
	require.Contains(t, byClass, "Widget")
	require.Contains(t, byClass, "Gadget")

	assert.Equal(t, SlotSingle, byClass["Widget"].FileKind())
	assert.Equal(t, "w.c", byClass["Widget"].File())
	assert.Equal(t, SlotSingle, byClass["Gadget"].FileKind())
	assert.Equal(t, "g.c", byClass["Gadget"].File())
}

func TestElement_FilePromotionUnderOneClass(t *testing.T) {
	t.Parallel()

	// Two files within the same class: class stays scalar, file branches
	elem := NewLeaf("foo", "Widget", "w1.c", "method", "p1", "s1")
	elem.Merge("Widget", "w2.c", "method", "p2", "s2")

	assert.Equal(t, SlotSingle, elem.ClassKind())
	assert.Equal(t, "Widget", elem.Class())

	require.Equal(t, SlotMultiple, elem.FileKind())
	require.Len(t, elem.Files(), 2)
	assert.Nil(t, elem.Definition())

	for _, child := range elem.Files() {
		assert.Empty(t, child.Symbol())
		assert.Equal(t, SlotAbsent, child.ClassKind(), "file children must not repeat the class")
		require.Equal(t, SlotSingle, child.FileKind())
		require.NotNil(t, child.Definition())
	}
}

func TestElement_FilePromotionPreservesExistingFileShape(t *testing.T) {
	t.Parallel()

	// A class that already branched on files keeps that shape when the
	// class dimension promotes around it
	elem := NewLeaf("foo", "Widget", "w1.c", "method", "", "")
	elem.Merge("Widget", "w2.c", "method", "", "")
	elem.Merge("Gadget", "g.c", "method", "", "")

	require.Equal(t, SlotMultiple, elem.ClassKind())
	require.Len(t, elem.Classes(), 2)

	var widget *IndexElement
	for _, child := range elem.Classes() {
		if child.Class() == "Widget" {
			widget = child
		}
	}
	require.NotNil(t, widget)
	require.Equal(t, SlotMultiple, widget.FileKind())
	assert.Len(t, widget.Files(), 2)
}

func TestElement_DuplicateDefinitionFirstWins(t *testing.T) {
	t.Parallel()

	elem := NewLeaf("foo", "Widget", "w.c", "method", "proto1", "sum1")

	// Same (class, file) with different payload: dropped entirely
	elem.Merge("Widget", "w.c", "function", "proto2", "sum2")

	assert.Equal(t, SlotSingle, elem.FileKind())
	assert.Equal(t, "method", elem.Type())
	assert.Equal(t, "proto1", elem.Prototype())
	assert.Equal(t, "sum1", elem.Summary())

	// Same rule once the file slot branched
	elem.Merge("Widget", "other.c", "method", "", "")
	elem.Merge("Widget", "w.c", "function", "proto3", "sum3")

	require.Equal(t, SlotMultiple, elem.FileKind())
	for _, child := range elem.Files() {
		if child.File() == "w.c" {
			assert.Equal(t, "proto1", child.Prototype())
		}
	}
}

func TestElement_KeysStayUnique(t *testing.T) {
	t.Parallel()

	elem := NewLeaf("foo", "A", "a.c", "method", "", "")
	facts := []struct{ class, file string }{
		{"B", "b.c"}, {"A", "a2.c"}, {"B", "b.c"}, {"C", "c.c"},
		{"A", "a.c"}, {"C", "c2.c"}, {"B", "b2.c"}, {"A", "a2.c"},
	}
	for _, f := range facts {
		elem.Merge(f.class, f.file, "method", "", "")
	}

	require.Equal(t, SlotMultiple, elem.ClassKind())
	seenClasses := map[string]bool{}
	for _, child := range elem.Classes() {
		assert.False(t, seenClasses[child.Class()], "duplicate class key %q", child.Class())
		seenClasses[child.Class()] = true

		if child.FileKind() == SlotMultiple {
			seenFiles := map[string]bool{}
			for _, fc := range child.Files() {
				assert.False(t, seenFiles[fc.File()], "duplicate file key %q", fc.File())
				seenFiles[fc.File()] = true
			}
		}
	}
	assert.Len(t, elem.Classes(), 3)
}

func TestElement_SortOrdersAllDepths(t *testing.T) {
	t.Parallel()

	elem := NewLeaf("foo", "zeta", "z2.c", "method", "", "")
	elem.Merge("zeta", "z1.c", "method", "", "")
	elem.Merge("alpha", "a.c", "method", "", "")
	elem.Merge("Mid", "m.c", "method", "", "")

	cmp := DefaultComparator()
	elem.Sort(cmp)

	require.Equal(t, SlotMultiple, elem.ClassKind())
	classes := elem.Classes()
	for i := 1; i < len(classes); i++ {
		assert.LessOrEqual(t, cmp(classes[i-1].Class(), classes[i].Class()), 0,
			"classes out of order: %q > %q", classes[i-1].Class(), classes[i].Class())
	}

	// zeta branched on files; after sort z1.c precedes z2.c
	var zeta *IndexElement
	for _, child := range classes {
		if child.Class() == "zeta" {
			zeta = child
		}
	}
	require.NotNil(t, zeta)
	require.Equal(t, SlotMultiple, zeta.FileKind())
	assert.Equal(t, "z1.c", zeta.Files()[0].File())
	assert.Equal(t, "z2.c", zeta.Files()[1].File())

	// Idempotent: a second sort changes nothing
	before := make([]string, len(classes))
	for i, c := range classes {
		before[i] = c.Class()
	}
	elem.Sort(cmp)
	for i, c := range elem.Classes() {
		assert.Equal(t, before[i], c.Class())
	}
}

func TestElement_SortIsCaseAware(t *testing.T) {
	t.Parallel()

	// Scenario C plus case mixing: collation ignores case differences
	// instead of splitting on ASCII order
	elem := NewLeaf("foo", "Widget", "w1.c", "method", "", "")
	elem.Merge("Widget", "W2.c", "method", "", "")
	elem.Sort(DefaultComparator())

	require.Equal(t, SlotMultiple, elem.FileKind())
	assert.Equal(t, "w1.c", elem.Files()[0].File())
	assert.Equal(t, "W2.c", elem.Files()[1].File())
}

func TestElement_GlobalScopeIsAValue(t *testing.T) {
	t.Parallel()

	// Global scope promotes like any other class value
	elem := NewLeaf("foo", GlobalScope, "a.c", "function", "", "")
	elem.Merge("Widget", "w.c", "method", "", "")

	require.Equal(t, SlotMultiple, elem.ClassKind())
	require.Len(t, elem.Classes(), 2)

	kinds := map[string]SlotKind{}
	for _, child := range elem.Classes() {
		kinds[child.Class()] = child.ClassKind()
	}
	assert.Equal(t, SlotSingle, kinds[GlobalScope], "global child keeps a Single class slot")
	assert.Equal(t, SlotSingle, kinds["Widget"])
}
