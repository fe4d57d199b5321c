package scanner

import (
	"context"
	"os"
	"strings"

	"github.com/mvp-joe/docdex/internal/hierarchy"
	sitter "github.com/tree-sitter/go-tree-sitter"
	python "github.com/tree-sitter/tree-sitter-python/bindings/go"
)

// pythonParser scans Python files. Classes contribute both an index
// fact and a registry entry with their declared superclasses; methods
// are scoped to their enclosing class.
type pythonParser struct {
	*treeSitterParser
}

// NewPythonParser creates a new Python scanner.
func NewPythonParser() *pythonParser {
	lang := sitter.NewLanguage(python.Language())
	return &pythonParser{
		treeSitterParser: newTreeSitterParser(lang, "python"),
	}
}

// ParseFile scans a Python source file for documented symbols.
func (p *pythonParser) ParseFile(ctx context.Context, filePath string) (*FileScan, error) {
	source, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(p.language)

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, nil // skip unparseable files
	}
	defer tree.Close()

	scan := &FileScan{
		Language: p.lang,
		FilePath: filePath,
		Facts:    []Fact{},
		Registry: hierarchy.NewClassRegistry(),
	}

	walkTree(tree.RootNode(), func(n *sitter.Node) bool {
		switch n.Kind() {
		case "class_definition":
			p.extractClass(n, source, scan)
			return false // methods handled inside
		case "function_definition":
			if isModuleLevel(n) {
				p.extractCallable(n, source, scan, "", "function")
			}
		}
		return true
	})

	return scan, nil
}

// isModuleLevel reports whether a node sits outside any class or
// function.
func isModuleLevel(node *sitter.Node) bool {
	parent := node.Parent()
	for parent != nil {
		kind := parent.Kind()
		if kind == "class_definition" || kind == "function_definition" {
			return false
		}
		if kind == "module" {
			return true
		}
		parent = parent.Parent()
	}
	return true
}

// extractClass records a class fact, its superclasses, and its methods.
func (p *pythonParser) extractClass(node *sitter.Node, source []byte, scan *FileScan) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return
	}
	name := extractNodeText(nameNode, source)

	scan.Registry.AddClass(name)
	for _, parent := range p.superclasses(node, source) {
		scan.Registry.AddParent(name, parent)
	}

	prototype := ""
	body := node.ChildByFieldName("body")
	if body != nil {
		prototype = collapseWhitespace(strings.TrimSuffix(
			strings.TrimSpace(string(source[node.StartByte():body.StartByte()])), ":"))
	}

	scan.Facts = append(scan.Facts, Fact{
		Symbol:    name,
		File:      scan.FilePath,
		Type:      "class",
		Prototype: prototype,
		Summary:   firstSentence(docstring(body, source)),
	})

	if body == nil {
		return
	}
	for i := 0; i < int(body.ChildCount()); i++ {
		child := body.Child(uint(i))
		switch child.Kind() {
		case "function_definition":
			p.extractCallable(child, source, scan, name, "method")
		case "decorated_definition":
			if fn := child.ChildByFieldName("definition"); fn != nil && fn.Kind() == "function_definition" {
				p.extractCallable(fn, source, scan, name, "method")
			}
		}
	}
}

// extractCallable records a function or method fact.
func (p *pythonParser) extractCallable(node *sitter.Node, source []byte, scan *FileScan, class, typ string) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return
	}
	name := extractNodeText(nameNode, source)

	prototype := "def " + name
	if params := node.ChildByFieldName("parameters"); params != nil {
		prototype += collapseWhitespace(extractNodeText(params, source))
	} else {
		prototype += "()"
	}
	if ret := node.ChildByFieldName("return_type"); ret != nil {
		prototype += " -> " + extractNodeText(ret, source)
	}

	scan.Facts = append(scan.Facts, Fact{
		Symbol:    name,
		Class:     class,
		File:      scan.FilePath,
		Type:      typ,
		Prototype: prototype,
		Summary:   firstSentence(docstring(node.ChildByFieldName("body"), source)),
	})
}

// superclasses collects the plain base-class names from a class
// definition's argument list. Keyword arguments (metaclass=...) are
// not parents.
func (p *pythonParser) superclasses(node *sitter.Node, source []byte) []string {
	args := node.ChildByFieldName("superclasses")
	if args == nil {
		return nil
	}

	var parents []string
	for i := 0; i < int(args.NamedChildCount()); i++ {
		arg := args.NamedChild(uint(i))
		switch arg.Kind() {
		case "identifier", "attribute":
			parents = append(parents, extractNodeText(arg, source))
		}
	}
	return parents
}

// docstring returns the docstring of a block node, unquoted, or "".
func docstring(body *sitter.Node, source []byte) string {
	if body == nil || body.NamedChildCount() == 0 {
		return ""
	}
	first := body.NamedChild(0)
	if first.Kind() != "expression_statement" || first.NamedChildCount() == 0 {
		return ""
	}
	str := first.NamedChild(0)
	if str.Kind() != "string" {
		return ""
	}

	text := extractNodeText(str, source)
	for _, quote := range []string{`"""`, `'''`, `"`, `'`} {
		if strings.HasPrefix(text, quote) && strings.HasSuffix(text, quote) && len(text) >= 2*len(quote) {
			return strings.TrimSpace(text[len(quote) : len(text)-len(quote)])
		}
	}
	return strings.TrimSpace(text)
}
