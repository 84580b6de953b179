// Package parser wraps tree-sitter parsing of JavaScript and TypeScript
// behind a small node model. Callers see only the node shapes the miner
// consumes (function-like nodes with a parameter list), never the grammar's
// own representation.
package parser

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// Kind tags the subset of syntax shapes the miner understands.
type Kind int

const (
	KindOther Kind = iota
	KindArrowFunction
)

// Node is a parser-independent view of one syntax node. Params holds the
// parameter names of function-like nodes; a parameter that is not a simple
// identifier contributes an empty name.
type Node struct {
	Kind   Kind
	Params []string
	Source string // re-serialized source text of the node
}

// Parser parses JavaScript and TypeScript source files. It is not safe for
// concurrent use.
type Parser struct {
	js *sitter.Parser
	ts *sitter.Parser
}

// New creates a parser with the JavaScript and TypeScript grammars loaded.
func New() *Parser {
	js := sitter.NewParser()
	js.SetLanguage(javascript.GetLanguage())
	ts := sitter.NewParser()
	ts.SetLanguage(typescript.GetLanguage())
	return &Parser{js: js, ts: ts}
}

// Close releases the underlying tree-sitter parsers.
func (p *Parser) Close() {
	p.js.Close()
	p.ts.Close()
}

// Walk parses source (grammar chosen by the path's extension, TypeScript by
// default) and calls visit for every named node in depth-first pre-order.
// Every node's children are visited unconditionally.
func (p *Parser) Walk(ctx context.Context, path string, source []byte, visit func(Node)) error {
	sp := p.ts
	switch strings.ToLower(filepath.Ext(path)) {
	case ".js", ".jsx", ".mjs", ".cjs":
		sp = p.js
	}

	tree, err := sp.ParseCtx(ctx, nil, source)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	defer tree.Close()

	walk(tree.RootNode(), source, visit)
	return nil
}

func walk(n *sitter.Node, source []byte, visit func(Node)) {
	visit(convert(n, source))
	for i := 0; i < int(n.NamedChildCount()); i++ {
		walk(n.NamedChild(i), source, visit)
	}
}

func convert(n *sitter.Node, source []byte) Node {
	if n.Type() == "arrow_function" {
		return Node{
			Kind:   KindArrowFunction,
			Params: paramNames(n, source),
			Source: Print(n.Content(source)),
		}
	}
	return Node{Kind: KindOther, Source: Print(n.Content(source))}
}

// paramNames extracts the parameter names of a function-like node.
func paramNames(n *sitter.Node, source []byte) []string {
	// Bare single parameter, as in `x => x`.
	if ident := n.ChildByFieldName("parameter"); ident != nil {
		return []string{ident.Content(source)}
	}

	params := n.ChildByFieldName("parameters")
	if params == nil {
		return nil
	}

	names := []string{}
	for i := 0; i < int(params.NamedChildCount()); i++ {
		names = append(names, identifierName(params.NamedChild(i), source))
	}
	return names
}

// identifierName returns the simple identifier naming a parameter, or ""
// when the parameter is destructured or defaulted.
func identifierName(n *sitter.Node, source []byte) string {
	switch n.Type() {
	case "identifier":
		return n.Content(source)
	case "required_parameter", "optional_parameter":
		// TypeScript wraps each parameter; the name sits in the pattern field.
		if pat := n.ChildByFieldName("pattern"); pat != nil && pat.Type() == "identifier" {
			return pat.Content(source)
		}
	}
	return ""
}

// Print re-serializes node source text the way a printer would: each line is
// trimmed and non-empty lines are joined with single spaces. Single-line
// nodes come back unchanged; multi-line bodies flatten. The normalization is
// lossy on purpose.
func Print(text string) string {
	lines := strings.Split(text, "\n")
	out := lines[:0]
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, " ")
}
