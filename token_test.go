package tokcore

import (
	"testing"

	"github.com/nalgeon/be"
)

func TestIsNamePredicates(t *testing.T) {
	be.True(t, IsName(&Token{Text: "x"}))
	be.True(t, IsName(&Token{Text: "_hidden"}))
	be.True(t, !IsName(&Token{Text: "123"}))
	be.True(t, !IsName(&Token{Text: ""}))
	be.True(t, !IsName(nil))
}

func TestIsNumberPredicate(t *testing.T) {
	be.True(t, IsNumber(&Token{Text: "42"}))
	be.True(t, !IsNumber(&Token{Text: "x"}))
	be.True(t, !IsNumber(nil))
}

func TestIsBoolPredicate(t *testing.T) {
	be.True(t, IsBool(&Token{Text: "true"}))
	be.True(t, IsBool(&Token{Text: "false"}))
	be.True(t, !IsBool(&Token{Text: "maybe"}))
}

func TestIsStringAndIsCharPredicates(t *testing.T) {
	be.True(t, IsString(&Token{Text: `"hi"`}))
	be.True(t, !IsString(&Token{Text: "'x'"}))
	be.True(t, IsChar(&Token{Text: "'x'"}))
	be.True(t, !IsChar(&Token{Text: `"hi"`}))
}

func TestStrAtAndTokAtWalkForwardAndBackward(t *testing.T) {
	head := tokensFromText("a", "b", "c")
	be.Equal(t, strAt(head, 0), "a")
	be.Equal(t, strAt(head, 2), "c")
	be.Equal(t, strAt(head, 5), "")

	tail := tokAt(head, 2)
	be.Equal(t, strAt(tail, -2), "a")
	be.Equal(t, strAt(tail, -5), "")
}
