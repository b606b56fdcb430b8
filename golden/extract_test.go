package golden

import (
	"testing"

	"github.com/nalgeon/be"
)

func TestExtractCases_BasicTest(t *testing.T) {
	markdown := `# Simplification scenarios

## Test: hex literal
` + "```tokcore-input" + `
int x = 0xFF ;
` + "```" + `
` + "```tokcore-tokens" + `
int x = 255 ;
` + "```"

	cases, err := ExtractCases(markdown)
	be.Err(t, err, nil)
	be.Equal(t, len(cases), 1)

	c := cases[0]
	be.Equal(t, c.Name, "hex literal")
	be.Equal(t, c.Input, "int x = 0xFF ;")
	be.True(t, c.HasTokens)
	be.Equal(t, c.Tokens, "int x = 255 ;")
	be.True(t, !c.HasSimplified)
}

func TestExtractCases_BothFences(t *testing.T) {
	markdown := `## Test: constant propagation
` + "```tokcore-input" + `
const int N = 4 ; int a [ N ] ;
` + "```" + `
` + "```tokcore-tokens" + `
const int N = 4 ; int a [ N ] ;
` + "```" + `
` + "```tokcore-simplified" + `
const int N = 4 ; int a [ 4 ] ;
` + "```"

	cases, err := ExtractCases(markdown)
	be.Err(t, err, nil)
	be.Equal(t, len(cases), 1)

	c := cases[0]
	be.True(t, c.HasTokens)
	be.True(t, c.HasSimplified)
	be.Equal(t, c.Simplified, "const int N = 4 ; int a [ 4 ] ;")
}

func TestExtractCases_MultipleTests(t *testing.T) {
	markdown := `## Test: one
` + "```tokcore-input" + `
1
` + "```" + `
` + "```tokcore-tokens" + `
1
` + "```" + `

## Test: two
` + "```tokcore-input" + `
2
` + "```" + `
` + "```tokcore-tokens" + `
2
` + "```"

	cases, err := ExtractCases(markdown)
	be.Err(t, err, nil)
	be.Equal(t, len(cases), 2)
	be.Equal(t, cases[0].Name, "one")
	be.Equal(t, cases[1].Name, "two")
}

func TestExtractCases_MissingInputFence(t *testing.T) {
	markdown := `## Test: broken
` + "```tokcore-tokens" + `
1
` + "```"

	_, err := ExtractCases(markdown)
	if err == nil {
		t.Fatal("expected an error for a test case with no input fence")
	}
}

func TestExtractCases_MissingAssertionFence(t *testing.T) {
	markdown := `## Test: broken
` + "```tokcore-input" + `
1
` + "```"

	_, err := ExtractCases(markdown)
	if err == nil {
		t.Fatal("expected an error for a test case with no expectation fence")
	}
}

func TestExtractCases_UnknownFenceLanguage(t *testing.T) {
	markdown := `## Test: broken
` + "```tokcore-input" + `
1
` + "```" + `
` + "```mystery" + `
1
` + "```"

	_, err := ExtractCases(markdown)
	if err == nil {
		t.Fatal("expected an error for an unrecognized fence language")
	}
}

func TestExtractCases_FenceOutsideTestCase(t *testing.T) {
	markdown := "```tokcore-input\n1\n```"

	_, err := ExtractCases(markdown)
	if err == nil {
		t.Fatal("expected an error for a fence with no enclosing test heading")
	}
}
