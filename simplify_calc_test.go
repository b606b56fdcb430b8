package tokcore

import (
	"strings"
	"testing"

	"github.com/nalgeon/be"
)

func buildStream(words ...string) *Stream {
	s := &Stream{}
	for _, w := range words {
		s.Append(w, 0, 1)
	}
	return s
}

func streamText(s *Stream) string {
	var words []string
	for tok := s.Head; tok != nil; tok = tok.Next {
		words = append(words, tok.Text)
	}
	return strings.Join(words, " ")
}

func TestSimplifyCalculationsFoldsBracketedArithmetic(t *testing.T) {
	s := buildStream("(", "1", "+", "2", ")")
	be.True(t, simplifyCalculations(s))
	be.Equal(t, streamText(s), "( 3 )")
}

func TestSimplifyCalculationsSkipsDivisionByZero(t *testing.T) {
	s := buildStream("(", "1", "/", "0", ")")
	be.True(t, !simplifyCalculations(s))
	be.Equal(t, streamText(s), "( 1 / 0 )")
}

func TestSimplifyCalculationsDropsMultiplyByOne(t *testing.T) {
	s := buildStream("x", "*", "1", ";")
	be.True(t, simplifyCalculations(s))
	be.Equal(t, streamText(s), "x ;")
}

func TestSimplifyCalculationsDropsRedundantParenthesizedNumber(t *testing.T) {
	s := buildStream("x", "=", "(", "5", ")", ";")
	be.True(t, simplifyCalculations(s))
	be.Equal(t, streamText(s), "x = 5 ;")
}

func TestSimplifyPointerArithmeticRewritesToSubscript(t *testing.T) {
	s := buildStream("=", "*", "(", "p", "+", "1", ")", ";")
	simplifyPointerArithmetic(s)
	be.Equal(t, streamText(s), "= p [ 1 ] ;")
}
