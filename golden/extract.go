// Package golden extracts literate Markdown test cases for tokcore:
// each "Test: Name" heading introduces one case built from a
// tokcore-input fence plus one or both of a tokcore-tokens /
// tokcore-simplified expectation fence. Adapted from the Zong
// compiler's sexy.ExtractTestCases, trimmed to tokcore's two pipeline
// stages instead of Sexy-expression assertions.
package golden

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

const (
	fenceInput      = "tokcore-input"
	fenceTokens     = "tokcore-tokens"
	fenceSimplified = "tokcore-simplified"
)

// Case is one end-to-end scenario extracted from a literate Markdown
// fixture.
type Case struct {
	Name          string
	Input         string
	Tokens        string
	HasTokens     bool
	Simplified    string
	HasSimplified bool
}

// ExtractCases parses markdownContent and returns every test case it
// defines, in document order.
func ExtractCases(markdownContent string) ([]Case, error) {
	md := goldmark.New()
	source := []byte(markdownContent)
	doc := md.Parser().Parse(text.NewReader(source))

	var cases []Case
	var current *Case

	err := ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n := node.(type) {
		case *ast.Heading:
			if n.Level < 1 || n.Level > 6 {
				break
			}
			headingText := extractText(n, source)
			if !strings.HasPrefix(headingText, "Test: ") {
				break
			}
			if current != nil {
				if err := validate(current); err != nil {
					return ast.WalkStop, err
				}
				cases = append(cases, *current)
			}
			current = &Case{Name: strings.TrimPrefix(headingText, "Test: ")}

		case *ast.FencedCodeBlock:
			language := string(n.Language(source))
			content := strings.TrimRight(extractCodeBlockContent(n, source), "\n")
			lineNum := lineNumber(n, source)

			if current == nil {
				if language == fenceInput || language == fenceTokens || language == fenceSimplified {
					return ast.WalkStop, fmt.Errorf("line %d: %s fence found outside of test case", lineNum, language)
				}
				return ast.WalkContinue, nil
			}

			switch language {
			case fenceInput:
				if current.Input != "" {
					return ast.WalkStop, fmt.Errorf("line %d: multiple input fences in test %q", lineNum, current.Name)
				}
				current.Input = content
			case fenceTokens:
				if current.HasTokens {
					return ast.WalkStop, fmt.Errorf("line %d: multiple tokens fences in test %q", lineNum, current.Name)
				}
				current.Tokens = content
				current.HasTokens = true
			case fenceSimplified:
				if current.HasSimplified {
					return ast.WalkStop, fmt.Errorf("line %d: multiple simplified fences in test %q", lineNum, current.Name)
				}
				current.Simplified = content
				current.HasSimplified = true
			case "":
				// untagged fence, ignore (commentary)
			default:
				return ast.WalkStop, fmt.Errorf("line %d: unknown fence language %q in test %q", lineNum, language, current.Name)
			}
		}

		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking markdown AST: %w", err)
	}

	if current != nil {
		if err := validate(current); err != nil {
			return nil, err
		}
		cases = append(cases, *current)
	}

	return cases, nil
}

func validate(c *Case) error {
	if c.Input == "" {
		return fmt.Errorf("test %q has no input fence", c.Name)
	}
	if !c.HasTokens && !c.HasSimplified {
		return fmt.Errorf("test %q has no tokcore-tokens or tokcore-simplified fence", c.Name)
	}
	return nil
}

func extractText(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if t, ok := n.(*ast.Text); ok {
				buf.Write(t.Segment.Value(source))
			}
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}

func extractCodeBlockContent(block *ast.FencedCodeBlock, source []byte) string {
	var buf bytes.Buffer
	for i := 0; i < block.Lines().Len(); i++ {
		line := block.Lines().At(i)
		buf.Write(line.Value(source))
	}
	return buf.String()
}

func lineNumber(node ast.Node, source []byte) int {
	if node.Lines().Len() == 0 {
		return 1
	}
	startPos := node.Lines().At(0).Start
	lineNum := 1
	for i := 0; i < startPos && i < len(source); i++ {
		if source[i] == '\n' {
			lineNum++
		}
	}
	return lineNum
}
