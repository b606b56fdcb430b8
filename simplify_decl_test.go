package tokcore

import (
	"testing"

	"github.com/nalgeon/be"
)

func TestSplitDeclarationsCommaOnly(t *testing.T) {
	s := buildStream("int", "a", ",", "b", ";")
	splitDeclarations(s)
	be.Equal(t, streamText(s), "int a ; int b ;")
}

func TestSplitDeclarationsPointerComma(t *testing.T) {
	s := buildStream("int", "*", "a", ",", "b", ";")
	splitDeclarations(s)
	be.Equal(t, streamText(s), "int * a ; int b ;")
}

func TestSplitDeclarationsArrayComma(t *testing.T) {
	s := buildStream("int", "a", "[", "4", "]", ",", "b", ";")
	splitDeclarations(s)
	be.Equal(t, streamText(s), "int a [ 4 ] ; int b ;")
}

func TestSplitDeclarationsStructComma(t *testing.T) {
	s := buildStream("struct", "Foo", "a", ",", "b", ";")
	splitDeclarations(s)
	be.Equal(t, streamText(s), "struct Foo a ; struct Foo b ;")
}

func TestSplitDeclarationsSingleAssignment(t *testing.T) {
	s := buildStream("int", "a", "=", "1", ";")
	splitDeclarations(s)
	be.Equal(t, streamText(s), "int a ; a = 1 ;")
}

// Each comma-separated declarator with its own initializer is split in
// turn: the first is split out by the declaration boundary at the head
// of the stream, and the remainder forms a fresh "T b = y ;" statement
// that the outer scan splits again on its next pass.
func TestSplitDeclarationsTwoAssignments(t *testing.T) {
	s := buildStream("int", "a", "=", "1", ",", "b", "=", "2", ";")
	splitDeclarations(s)
	be.Equal(t, streamText(s), "int a ; a = 1 ; int b ; b = 2 ;")
}

func TestSplitDeclarationsIgnoresReturnStatement(t *testing.T) {
	s := buildStream("return", "a", ",", "b", ";")
	splitDeclarations(s)
	be.Equal(t, streamText(s), "return a , b ;")
}
