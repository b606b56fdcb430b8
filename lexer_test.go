package tokcore

import (
	"strings"
	"testing"

	"github.com/nalgeon/be"
)

// TestLexFileDirectivesRestoreOuterLineNumbers covers spec.md §8
// scenario 6: a nested #file/#endfile pair reports the inner file's
// own line numbers for its tokens, and resumes the outer file at the
// correct line afterward.
func TestLexFileDirectivesRestoreOuterLineNumbers(t *testing.T) {
	src := "int a ;\n#file \"h\"\nint y ;\n#endfile\nint b ;\n"

	tok := NewTokenizer()
	be.Err(t, tok.Tokenize([]byte(src), "main.c"), nil)

	var tags []string
	for token := tok.Head(); token != nil; token = token.Next {
		tags = append(tags, tok.FileLine(token)+" "+token.Text)
	}
	got := strings.Join(tags, "\n")

	want := strings.Join([]string{
		"[main.c:1] int",
		"[main.c:1] a",
		"[main.c:1] ;",
		"[h:1] int",
		"[h:1] y",
		"[h:1] ;",
		"[main.c:3] int",
		"[main.c:3] b",
		"[main.c:3] ;",
	}, "\n")

	be.Equal(t, got, want)
}

// TestLexUnbalancedEndfileIsFatal covers spec.md §7: an #endfile with
// no matching #file is the one recoverable structural lexer bug,
// surfaced as a *FatalError rather than panicking or being silently
// ignored.
func TestLexUnbalancedEndfileIsFatal(t *testing.T) {
	tok := NewTokenizer()
	err := tok.Tokenize([]byte("int a ;\n#endfile\n"), "main.c")

	var fatal *FatalError
	be.True(t, errorsAs(err, &fatal))
}

// TestLexAdjacentStringsStayDistinctBeforeSimplify covers the
// invariant that lexing alone never merges adjacent string literals —
// that is spliceAdjacentStrings's job during Simplify.
func TestLexAdjacentStringsStayDistinctBeforeSimplify(t *testing.T) {
	tok := NewTokenizer()
	be.Err(t, tok.Tokenize([]byte(`"a" "b"`), "main.c"), nil)
	be.Equal(t, flattenTokens(tok), `"a" "b"`)

	tok.Simplify()
	be.Equal(t, flattenTokens(tok), `"ab"`)
}

// TestLexHexLiteralCanonicalization covers spec.md §8's boundary
// behavior: 0xFF becomes the decimal token "255" during lexing.
func TestLexHexLiteralCanonicalization(t *testing.T) {
	tok := NewTokenizer()
	be.Err(t, tok.Tokenize([]byte("int x = 0xFF ;"), "main.c"), nil)
	be.Equal(t, flattenTokens(tok), "int x = 255 ;")
}

func errorsAs(err error, target **FatalError) bool {
	fe, ok := err.(*FatalError)
	if !ok {
		return false
	}
	*target = fe
	return true
}
