package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for Resolver:
// - Registries from several files fold into one graph
// - Duplicate class/parent declarations across files merge cleanly
// - Replacing a file's registry replaces its contribution
// - ParentsOf/ChildrenOf/AncestorsOf answer direct and transitive queries
// - Unknown classes yield empty results, not errors
// - Inheritance loops are reported by HasCycle

func TestResolver_FoldsRegistries(t *testing.T) {
	t.Parallel()

	base := NewClassRegistry()
	base.AddClass("Base")

	widgets := NewClassRegistry()
	widgets.AddParent("Widget", "Base")
	widgets.AddParent("Gadget", "Widget")

	r := NewResolver()
	r.SetFile("base.py", base)
	r.SetFile("widgets.py", widgets)

	h, err := r.Resolve()
	require.NoError(t, err)

	classes, err := h.Classes()
	require.NoError(t, err)
	assert.Equal(t, []string{"Base", "Gadget", "Widget"}, classes)

	parents, err := h.ParentsOf("Gadget")
	require.NoError(t, err)
	assert.Equal(t, []string{"Widget"}, parents)

	children, err := h.ChildrenOf("Base")
	require.NoError(t, err)
	assert.Equal(t, []string{"Widget"}, children)

	ancestors, err := h.AncestorsOf("Gadget")
	require.NoError(t, err)
	assert.Equal(t, []string{"Base", "Widget"}, ancestors)
}

func TestResolver_DuplicateDeclarationsAcrossFiles(t *testing.T) {
	t.Parallel()

	a := NewClassRegistry()
	a.AddParent("Widget", "Base")

	b := NewClassRegistry()
	b.AddParent("Widget", "Base") // same edge declared in a second file

	r := NewResolver()
	r.SetFile("a.py", a)
	r.SetFile("b.py", b)

	h, err := r.Resolve()
	require.NoError(t, err)

	parents, err := h.ParentsOf("Widget")
	require.NoError(t, err)
	assert.Equal(t, []string{"Base"}, parents)
}

func TestResolver_ReplaceFileContribution(t *testing.T) {
	t.Parallel()

	old := NewClassRegistry()
	old.AddParent("Widget", "Legacy")

	r := NewResolver()
	r.SetFile("w.py", old)

	updated := NewClassRegistry()
	updated.AddParent("Widget", "Base")
	r.SetFile("w.py", updated)

	h, err := r.Resolve()
	require.NoError(t, err)

	parents, err := h.ParentsOf("Widget")
	require.NoError(t, err)
	assert.Equal(t, []string{"Base"}, parents)
}

func TestResolver_UnknownClassQueries(t *testing.T) {
	t.Parallel()

	r := NewResolver()
	h, err := r.Resolve()
	require.NoError(t, err)

	parents, err := h.ParentsOf("Ghost")
	require.NoError(t, err)
	assert.Empty(t, parents)

	ancestors, err := h.AncestorsOf("Ghost")
	require.NoError(t, err)
	assert.Empty(t, ancestors)
}

func TestResolver_CycleDetection(t *testing.T) {
	t.Parallel()

	reg := NewClassRegistry()
	reg.AddParent("A", "B")
	reg.AddParent("B", "A")

	r := NewResolver()
	r.SetFile("loop.py", reg)

	h, err := r.Resolve()
	require.NoError(t, err)

	cyclic, err := h.HasCycle()
	require.NoError(t, err)
	assert.True(t, cyclic)
}

func TestResolver_AcyclicHierarchy(t *testing.T) {
	t.Parallel()

	reg := NewClassRegistry()
	reg.AddParent("Widget", "Base")
	reg.AddParent("Gadget", "Base")

	r := NewResolver()
	r.SetFile("w.py", reg)

	h, err := r.Resolve()
	require.NoError(t, err)

	cyclic, err := h.HasCycle()
	require.NoError(t, err)
	assert.False(t, cyclic)
}
