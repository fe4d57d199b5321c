// Package render turns a finished, sorted index tree into HTML. It is
// the read-only consumer of the tree: the shape of each element (a
// Single value versus a Multiple child list) decides between an inline
// entry and a nested sub-listing, and an absent definition on a
// branching node always means "descend", never missing data.
package render

import (
	"fmt"
	"html/template"
	"io"

	"github.com/mvp-joe/docdex/internal/index"
)

// HTMLRenderer writes the symbol index as a standalone HTML document.
type HTMLRenderer struct {
	title string
	tmpl  *template.Template
}

// NewHTML creates a renderer with the given page title.
func NewHTML(title string) (*HTMLRenderer, error) {
	tmpl, err := template.New("index").Parse(indexTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse index template: %w", err)
	}
	return &HTMLRenderer{title: title, tmpl: tmpl}, nil
}

// symbolEntry is the flattened render model for one symbol.
type symbolEntry struct {
	Symbol string
	Scopes []scopeEntry
	Nested bool // true when the symbol branched on classes
}

// scopeEntry lists the defining files of one class scope.
type scopeEntry struct {
	Class   string // display name, "Global" for class-less symbols
	Targets []targetEntry
	Nested  bool // true when this scope branched on files
}

// targetEntry is one concrete definition.
type targetEntry struct {
	File      string
	Type      string
	Prototype string
	Summary   string
}

// Render writes the HTML index for the given sorted elements.
func (r *HTMLRenderer) Render(w io.Writer, elements []*index.IndexElement) error {
	entries := make([]symbolEntry, 0, len(elements))
	for _, elem := range elements {
		entries = append(entries, buildSymbolEntry(elem))
	}

	data := struct {
		Title   string
		Entries []symbolEntry
	}{
		Title:   r.title,
		Entries: entries,
	}

	if err := r.tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render index: %w", err)
	}
	return nil
}

// buildSymbolEntry flattens one symbol-level element, branching on the
// class slot's shape.
func buildSymbolEntry(elem *index.IndexElement) symbolEntry {
	entry := symbolEntry{Symbol: elem.Symbol()}

	switch elem.ClassKind() {
	case index.SlotSingle:
		entry.Scopes = []scopeEntry{buildScopeEntry(elem.Class(), elem)}
	case index.SlotMultiple:
		entry.Nested = true
		for _, child := range elem.Classes() {
			entry.Scopes = append(entry.Scopes, buildScopeEntry(child.Class(), child))
		}
	}
	return entry
}

// buildScopeEntry flattens the file dimension of one class scope.
func buildScopeEntry(class string, elem *index.IndexElement) scopeEntry {
	scope := scopeEntry{Class: displayClass(class)}

	switch elem.FileKind() {
	case index.SlotSingle:
		scope.Targets = []targetEntry{{
			File:      elem.File(),
			Type:      elem.Type(),
			Prototype: elem.Prototype(),
			Summary:   elem.Summary(),
		}}
	case index.SlotMultiple:
		scope.Nested = true
		for _, child := range elem.Files() {
			scope.Targets = append(scope.Targets, targetEntry{
				File:      child.File(),
				Type:      child.Type(),
				Prototype: child.Prototype(),
				Summary:   child.Summary(),
			})
		}
	}
	return scope
}

// displayClass maps the global-scope marker to its display name.
func displayClass(class string) string {
	if class == index.GlobalScope {
		return "Global"
	}
	return class
}

const indexTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<h1>{{.Title}}</h1>
<ul class="symbol-index">
{{- range .Entries}}
<li class="symbol"><span class="name">{{.Symbol}}</span>
{{- if .Nested}}
<ul class="scopes">
{{- range .Scopes}}
<li class="scope">{{.Class}}
{{- template "scope" .}}
</li>
{{- end}}
</ul>
{{- else}}
{{- range .Scopes}}{{template "scope" .}}{{end}}
{{- end}}
</li>
{{- end}}
</ul>
</body>
</html>
{{- define "scope"}}
{{- if .Nested}}
<ul class="files">
{{- range .Targets}}
<li class="file"><a href="{{.File}}">{{.File}}</a>{{if .Summary}} &mdash; {{.Summary}}{{end}}</li>
{{- end}}
</ul>
{{- else}}
{{- range .Targets}}
<span class="target">{{if .Prototype}}<code>{{.Prototype}}</code> {{end}}<a href="{{.File}}">{{.File}}</a>{{if .Summary}} &mdash; {{.Summary}}{{end}}</span>
{{- end}}
{{- end}}
{{- end}}
`
