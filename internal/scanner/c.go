package scanner

import (
	"context"
	"os"

	"github.com/mvp-joe/docdex/internal/hierarchy"
	sitter "github.com/tree-sitter/go-tree-sitter"
	c "github.com/tree-sitter/tree-sitter-c/bindings/go"
)

// cParser scans C files. Everything in C lives in the global scope,
// so every fact carries an empty class and the registry stays empty.
type cParser struct {
	*treeSitterParser
}

// NewCParser creates a new C scanner.
func NewCParser() *cParser {
	lang := sitter.NewLanguage(c.Language())
	return &cParser{
		treeSitterParser: newTreeSitterParser(lang, "c"),
	}
}

// ParseFile scans a C source file for documented symbols.
func (p *cParser) ParseFile(ctx context.Context, filePath string) (*FileScan, error) {
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
		case "function_definition":
			p.extractFunction(n, source, scan)
			return false
		case "type_definition":
			p.extractTypedef(n, source, scan)
			return false
		case "struct_specifier":
			p.extractRecord(n, source, scan, "struct")
		case "union_specifier":
			p.extractRecord(n, source, scan, "union")
		case "enum_specifier":
			p.extractRecord(n, source, scan, "enum")
		}
		return true
	})

	return scan, nil
}

// extractFunction records a function definition: prototype is the
// declaration up to the body, summary comes from the comment block
// directly above.
func (p *cParser) extractFunction(node *sitter.Node, source []byte, scan *FileScan) {
	name := declaratorName(node.ChildByFieldName("declarator"), source)
	if name == "" {
		return
	}

	prototype := ""
	if body := node.ChildByFieldName("body"); body != nil {
		prototype = collapseWhitespace(string(source[node.StartByte():body.StartByte()]))
	}

	scan.Facts = append(scan.Facts, Fact{
		Symbol:    name,
		File:      scan.FilePath,
		Type:      "function",
		Prototype: prototype,
		Summary:   firstSentence(leadingComment(node, source)),
	})
}

// extractTypedef records the name introduced by a typedef.
func (p *cParser) extractTypedef(node *sitter.Node, source []byte, scan *FileScan) {
	name := declaratorName(node.ChildByFieldName("declarator"), source)
	if name == "" {
		return
	}

	scan.Facts = append(scan.Facts, Fact{
		Symbol:  name,
		File:    scan.FilePath,
		Type:    "typedef",
		Summary: firstSentence(leadingComment(node, source)),
	})
}

// extractRecord records a named struct/union/enum definition. Bare
// references without a body ("struct user u;") are skipped.
func (p *cParser) extractRecord(node *sitter.Node, source []byte, scan *FileScan, kind string) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil || node.ChildByFieldName("body") == nil {
		return
	}

	name := extractNodeText(nameNode, source)
	summary := firstSentence(leadingComment(node, source))
	if summary == "" && node.Parent() != nil {
		// typedef struct {...} comments sit above the enclosing node
		summary = firstSentence(leadingComment(node.Parent(), source))
	}

	scan.Facts = append(scan.Facts, Fact{
		Symbol:    name,
		File:      scan.FilePath,
		Type:      kind,
		Prototype: kind + " " + name,
		Summary:   summary,
	})
}

// declaratorName descends nested declarators (pointers, functions,
// parenthesized forms) to the declared identifier.
func declaratorName(node *sitter.Node, source []byte) string {
	for node != nil {
		switch node.Kind() {
		case "identifier", "type_identifier", "field_identifier":
			return extractNodeText(node, source)
		}
		inner := node.ChildByFieldName("declarator")
		if inner == nil {
			return ""
		}
		node = inner
	}
	return ""
}
