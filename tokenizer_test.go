package tokcore

import (
	"testing"

	"github.com/nalgeon/be"
)

func TestTokenizeLexesCombinesAndFoldsInOneCall(t *testing.T) {
	tok := NewTokenizer()
	be.Err(t, tok.Tokenize([]byte("typedef int U ; volatile U x ; x += 1 ;"), "main.c"), nil)
	be.Equal(t, flattenTokens(tok), "int x ; x += 1 ;")
}

func TestTokenizerStreamAccessorSharesState(t *testing.T) {
	tok := NewTokenizer()
	be.Err(t, tok.Tokenize([]byte("int x ;"), "main.c"), nil)
	be.Equal(t, tok.Stream().Head, tok.Head())
}

func TestTokenizerFilesAccessorRecordsFilename(t *testing.T) {
	tok := NewTokenizer()
	be.Err(t, tok.Tokenize([]byte("int x ;"), "main.c"), nil)
	be.Equal(t, tok.Files().Path(0), "main.c")
}

func TestTokenizerTypeSizeBeforeSimplifyIsZero(t *testing.T) {
	tok := NewTokenizer()
	be.Err(t, tok.Tokenize([]byte("int x ;"), "main.c"), nil)
	be.Equal(t, tok.TypeSize("int"), 0)
}

func TestTokenizerTypeSizeAfterSimplify(t *testing.T) {
	tok := NewTokenizer()
	be.Err(t, tok.Tokenize([]byte("int x ;"), "main.c"), nil)
	tok.Simplify()
	be.Equal(t, tok.TypeSize("int"), 4)
}
