package scanner

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// treeSitterParser provides shared parsing state for the per-language
// scanners.
type treeSitterParser struct {
	language *sitter.Language
	lang     string
}

// newTreeSitterParser creates a parser wrapper for the given language.
func newTreeSitterParser(language *sitter.Language, lang string) *treeSitterParser {
	return &treeSitterParser{
		language: language,
		lang:     lang,
	}
}

// extractNodeText extracts the text content of a tree-sitter node.
func extractNodeText(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	return string(source[node.StartByte():node.EndByte()])
}

// walkTree recursively walks a tree-sitter tree and calls the visitor
// for each node. Returning false skips the node's children.
func walkTree(node *sitter.Node, visitor func(*sitter.Node) bool) {
	if node == nil {
		return
	}

	if !visitor(node) {
		return
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(uint(i))
		walkTree(child, visitor)
	}
}

// leadingComment returns the text of the comment block immediately
// preceding node, or "" when the previous sibling is not a comment.
func leadingComment(node *sitter.Node, source []byte) string {
	prev := node.PrevNamedSibling()
	if prev == nil || prev.Kind() != "comment" {
		return ""
	}

	// Collect a run of adjacent comment lines above the node.
	var parts []string
	for prev != nil && prev.Kind() == "comment" {
		parts = append([]string{extractNodeText(prev, source)}, parts...)
		prev = prev.PrevNamedSibling()
	}
	return cleanComment(strings.Join(parts, "\n"))
}

// cleanComment strips comment markers and surrounding whitespace.
func cleanComment(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "/**")
		line = strings.TrimPrefix(line, "/*")
		line = strings.TrimSuffix(line, "*/")
		line = strings.TrimPrefix(line, "//")
		line = strings.TrimPrefix(line, "#")
		line = strings.TrimPrefix(line, "*")
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, " ")
}

// firstSentence trims a documentation block to its first sentence.
func firstSentence(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.Index(text, ". "); idx != -1 {
		return text[:idx+1]
	}
	if idx := strings.Index(text, "\n"); idx != -1 {
		return strings.TrimSpace(text[:idx])
	}
	return text
}

// collapseWhitespace folds runs of whitespace into single spaces, for
// prototypes spanning several source lines.
func collapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
