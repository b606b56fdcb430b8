package tokcore

import (
	"testing"

	"github.com/nalgeon/be"
)

func tokensFromText(words ...string) *Token {
	var head, tail *Token
	for _, w := range words {
		n := &Token{Text: w}
		if tail == nil {
			head = n
		} else {
			tail.Next = n
			n.Prev = tail
		}
		tail = n
	}
	return head
}

func TestMatchLiteralAndVarID(t *testing.T) {
	tok := tokensFromText("if", "(", "x", ")")
	tok.Next.Next.VarID = 7

	be.True(t, Match(tok, "if ( %varid% )", 7))
	be.True(t, !Match(tok, "if ( %varid% )", 8))
}

func TestMatchAlternation(t *testing.T) {
	tok := tokensFromText("x", "++")
	be.True(t, Match(tok, "%var% ++|--"))

	tok2 := tokensFromText("x", "+=")
	be.True(t, !Match(tok2, "%var% ++|--"))
}

func TestMatchOptionalTrailingAtom(t *testing.T) {
	be.True(t, Match(tokensFromText(")", "{"), ") const| {"))
	be.True(t, Match(tokensFromText(")", "const", "{"), ") const| {"))
}

func TestMatchCharClass(t *testing.T) {
	be.True(t, Match(tokensFromText("{"), "[{}]"))
	be.True(t, Match(tokensFromText("}"), "[{}]"))
	be.True(t, !Match(tokensFromText(";"), "[{}]"))
}

func TestMatchTypeExcludesDelete(t *testing.T) {
	be.True(t, Match(tokensFromText("int"), "%type%"))
	be.True(t, !Match(tokensFromText("delete"), "%type%"))
}

func TestSimpleMatchLiteralSequence(t *testing.T) {
	be.True(t, SimpleMatch(tokensFromText("else", "if"), "else if"))
	be.True(t, !SimpleMatch(tokensFromText("else", "x"), "else if"))
}

func TestFindMatchScansForward(t *testing.T) {
	tok := tokensFromText("a", "b", "if", "(", "x", ")")
	found := FindMatch(tok, "if ( %var% )")
	be.True(t, found != nil)
	be.Equal(t, found.Text, "if")
}

func TestCompileReusableAcrossCalls(t *testing.T) {
	p := Compile("%num% ==|!=|<|<=|>|>= %num%")
	be.True(t, p.Match(tokensFromText("5", "==", "5")))
	be.True(t, p.Match(tokensFromText("1", "<", "2")))
	be.True(t, !p.Match(tokensFromText("1", "+", "2")))
}
