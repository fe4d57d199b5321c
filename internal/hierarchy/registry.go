// Package hierarchy tracks class/parent relationships: a ClassRegistry
// per source file during scanning, and a Resolver that folds all
// registries into one cross-file inheritance graph.
package hierarchy

// ClassRegistry records which classes one source file defines and the
// parents each class declares. A class with an empty parent set stays
// registered: "registered with no parents" and "not a class of this
// file" are distinct states, and only DeleteClass removes a class.
type ClassRegistry struct {
	parents map[string]map[string]struct{}
}

// NewClassRegistry creates an empty registry.
func NewClassRegistry() *ClassRegistry {
	return &ClassRegistry{
		parents: make(map[string]map[string]struct{}),
	}
}

// AddClass registers a class. No-op when already present.
func (r *ClassRegistry) AddClass(name string) {
	if _, ok := r.parents[name]; !ok {
		r.parents[name] = make(map[string]struct{})
	}
}

// DeleteClass removes a class and its parent set entirely.
func (r *ClassRegistry) DeleteClass(name string) {
	delete(r.parents, name)
}

// AddParent records parent for class, registering the class first if
// needed. Idempotent.
func (r *ClassRegistry) AddParent(class, parent string) {
	r.AddClass(class)
	r.parents[class][parent] = struct{}{}
}

// DeleteParent removes one parent. The class stays registered even
// when its last parent is removed.
func (r *ClassRegistry) DeleteParent(class, parent string) {
	if set, ok := r.parents[class]; ok {
		delete(set, parent)
	}
}

// Classes returns the registered class names, in no defined order.
func (r *ClassRegistry) Classes() []string {
	names := make([]string, 0, len(r.parents))
	for name := range r.parents {
		names = append(names, name)
	}
	return names
}

// HasClass reports whether this file registered the class.
func (r *ClassRegistry) HasClass(name string) bool {
	_, ok := r.parents[name]
	return ok
}

// ParentsOf returns the declared parents of a class, in no defined
// order. Empty both for a parentless class and for an unknown one;
// use HasClass to tell those apart.
func (r *ClassRegistry) ParentsOf(name string) []string {
	set, ok := r.parents[name]
	if !ok {
		return nil
	}
	parents := make([]string, 0, len(set))
	for parent := range set {
		parents = append(parents, parent)
	}
	return parents
}

// HasParent reports whether class declares parent in this file.
// False when the class itself is absent.
func (r *ClassRegistry) HasParent(class, parent string) bool {
	set, ok := r.parents[class]
	if !ok {
		return false
	}
	_, ok = set[parent]
	return ok
}
