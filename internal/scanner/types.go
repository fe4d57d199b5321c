// Package scanner extracts documented-symbol facts from source files
// using tree-sitter. Each fact feeds the index tree; class
// declarations feed the per-file hierarchy registries.
package scanner

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/mvp-joe/docdex/internal/hierarchy"
)

// Fact is one documented-symbol occurrence found in a source file.
type Fact struct {
	Symbol    string // symbol name, never empty
	Class     string // owning class, "" for global scope
	File      string // file the definition was found in
	Type      string // e.g. "function", "method", "class", "struct", "enum", "typedef"
	Prototype string // declaration text, may be empty
	Summary   string // first sentence of the attached documentation, may be empty
}

// FileScan holds everything extracted from one source file.
type FileScan struct {
	Language string
	FilePath string
	Facts    []Fact
	Registry *hierarchy.ClassRegistry // classes this file defines, with parents
}

// Parser extracts facts from one language.
type Parser interface {
	// ParseFile parses a source file. A nil result with nil error
	// means the file could not be parsed and should be skipped.
	ParseFile(ctx context.Context, filePath string) (*FileScan, error)
}

// ParserForFile returns a parser for the file's extension, or nil for
// unsupported files.
func ParserForFile(path string) Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".c", ".h":
		return NewCParser()
	case ".py":
		return NewPythonParser()
	default:
		return nil
	}
}
