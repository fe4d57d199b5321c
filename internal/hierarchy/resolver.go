package hierarchy

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dominikbraun/graph"
)

// Resolver aggregates per-file class registries into a whole-program
// inheritance graph. Registries are keyed by file path; re-adding a
// file replaces its prior contribution.
type Resolver struct {
	registries map[string]*ClassRegistry
}

// NewResolver creates an empty resolver.
func NewResolver() *Resolver {
	return &Resolver{
		registries: make(map[string]*ClassRegistry),
	}
}

// SetFile records the registry scanned from one file, replacing any
// previous registry for that path.
func (r *Resolver) SetFile(file string, registry *ClassRegistry) {
	r.registries[file] = registry
}

// RemoveFile drops a file's contribution.
func (r *Resolver) RemoveFile(file string) {
	delete(r.registries, file)
}

// Resolve folds every registry into a directed class → parent graph.
func (r *Resolver) Resolve() (*Hierarchy, error) {
	g := graph.New(graph.StringHash, graph.Directed())

	for file, registry := range r.registries {
		for _, class := range registry.Classes() {
			if err := g.AddVertex(class); err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
				return nil, fmt.Errorf("failed to add class %q from %s: %w", class, file, err)
			}
			for _, parent := range registry.ParentsOf(class) {
				if err := g.AddVertex(parent); err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
					return nil, fmt.Errorf("failed to add parent %q from %s: %w", parent, file, err)
				}
				err := g.AddEdge(class, parent)
				if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
					return nil, fmt.Errorf("failed to link %q -> %q from %s: %w", class, parent, file, err)
				}
			}
		}
	}

	return &Hierarchy{g: g}, nil
}

// Hierarchy is the resolved whole-program inheritance graph. Edges
// point from a class to its declared parents.
type Hierarchy struct {
	g graph.Graph[string, string]
}

// Classes returns every known class name, sorted.
func (h *Hierarchy) Classes() ([]string, error) {
	adjacency, err := h.g.AdjacencyMap()
	if err != nil {
		return nil, fmt.Errorf("failed to read hierarchy: %w", err)
	}
	classes := make([]string, 0, len(adjacency))
	for class := range adjacency {
		classes = append(classes, class)
	}
	sort.Strings(classes)
	return classes, nil
}

// ParentsOf returns the direct parents of a class, sorted. Empty for
// unknown or parentless classes.
func (h *Hierarchy) ParentsOf(class string) ([]string, error) {
	adjacency, err := h.g.AdjacencyMap()
	if err != nil {
		return nil, fmt.Errorf("failed to read hierarchy: %w", err)
	}
	edges, ok := adjacency[class]
	if !ok {
		return nil, nil
	}
	parents := make([]string, 0, len(edges))
	for parent := range edges {
		parents = append(parents, parent)
	}
	sort.Strings(parents)
	return parents, nil
}

// ChildrenOf returns the classes that declare class as a parent, sorted.
func (h *Hierarchy) ChildrenOf(class string) ([]string, error) {
	predecessors, err := h.g.PredecessorMap()
	if err != nil {
		return nil, fmt.Errorf("failed to read hierarchy: %w", err)
	}
	edges, ok := predecessors[class]
	if !ok {
		return nil, nil
	}
	children := make([]string, 0, len(edges))
	for child := range edges {
		children = append(children, child)
	}
	sort.Strings(children)
	return children, nil
}

// AncestorsOf returns every transitive parent of a class, sorted.
// The class itself is excluded.
func (h *Hierarchy) AncestorsOf(class string) ([]string, error) {
	adjacency, err := h.g.AdjacencyMap()
	if err != nil {
		return nil, fmt.Errorf("failed to read hierarchy: %w", err)
	}
	if _, ok := adjacency[class]; !ok {
		return nil, nil
	}

	ancestors := make([]string, 0)
	if err := graph.DFS(h.g, class, func(v string) bool {
		if v != class {
			ancestors = append(ancestors, v)
		}
		return false
	}); err != nil {
		return nil, fmt.Errorf("failed to walk ancestors of %q: %w", class, err)
	}
	sort.Strings(ancestors)
	return ancestors, nil
}

// HasCycle reports whether any inheritance loop exists.
func (h *Hierarchy) HasCycle() (bool, error) {
	_, err := graph.TopologicalSort(h.g)
	if err != nil {
		// TopologicalSort only fails on cyclic graphs.
		return true, nil
	}
	return false, nil
}
