// Package miner walks parsed source files and emits heuristic
// prompt/completion training examples.
package miner

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"codetune/internal/dataset"
	"codetune/internal/parser"
)

// Rule pairs a node predicate with a prompt generator. Rules are consulted
// in order for every visited node; a matching rule may emit any number of
// prompts, all sharing the node's re-serialized source as their completion.
type Rule struct {
	Match   func(parser.Node) bool
	Prompts func(parser.Node) []string
}

// Rules is the ordered heuristic table. Supporting a new node shape means
// adding a row here, not touching the traversal.
var Rules = []Rule{
	{Match: isArrowFunction, Prompts: arrowFunctionPrompts},
}

func isArrowFunction(n parser.Node) bool {
	return n.Kind == parser.KindArrowFunction
}

func arrowFunctionPrompts(n parser.Node) []string {
	switch len(n.Params) {
	case 0:
		return []string{"function", "function with no parameters"}
	case 1:
		return []string{fmt.Sprintf("function with %s parameter", n.Params[0])}
	default:
		return []string{fmt.Sprintf("function with %s parameters", strings.Join(n.Params, ", "))}
	}
}

// MineSource walks the parsed source and returns every example the rule
// table generates, in visit order. Non-matching nodes contribute nothing but
// their children are still visited.
func MineSource(ctx context.Context, p *parser.Parser, path string, source []byte) ([]dataset.Example, error) {
	var examples []dataset.Example
	err := p.Walk(ctx, path, source, func(n parser.Node) {
		for _, rule := range Rules {
			if !rule.Match(n) {
				continue
			}
			for _, prompt := range rule.Prompts(n) {
				examples = append(examples, dataset.Example{
					Prompt:     prompt,
					Completion: n.Source,
				})
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return examples, nil
}

// MineFile reads and mines a single source file.
func MineFile(ctx context.Context, p *parser.Parser, path string) ([]dataset.Example, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return MineSource(ctx, p, path, source)
}

// WriteQuoted writes examples as always-quoted two-column CSV lines, ready
// to be hand-merged into the dataset file. Internal quotes are doubled.
func WriteQuoted(w io.Writer, examples []dataset.Example) error {
	for _, ex := range examples {
		if _, err := fmt.Fprintf(w, "%s,%s\n", quote(ex.Prompt), quote(ex.Completion)); err != nil {
			return fmt.Errorf("writing example: %w", err)
		}
	}
	return nil
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
