package tokcore

// Tokenizer owns one token Stream, its FileTable, and the side tables
// the simplification pipeline builds (type sizes, function index). It
// is not safe for concurrent use — spec.md §5 specifies a single owner,
// synchronous, single-threaded model.
type Tokenizer struct {
	stream       Stream
	files        FileTable
	typeSizes    map[string]int
	functionList []*Token
}

// NewTokenizer returns a Tokenizer with an empty stream and file table.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Tokenize lexes src as filename, combines adjacent operator pairs, and
// folds typedefs/asm/volatile/mutable, populating the stream and file
// table. It is the tokcore equivalent of spec.md §6's tokenize(stream,
// filename).
func (t *Tokenizer) Tokenize(src []byte, filename string) error {
	if err := Lex(&t.stream, &t.files, src, filename); err != nil {
		return err
	}
	Combine(&t.stream)
	FoldTypedefsAndNoise(&t.stream)
	return nil
}

// Head returns the first token in the stream, or nil if empty.
func (t *Tokenizer) Head() *Token {
	return t.stream.Head
}

// Files returns the file table backing this tokenizer's tokens.
func (t *Tokenizer) Files() *FileTable {
	return &t.files
}

// Stream exposes the underlying mutable token stream for callers (such
// as checkers) that need direct list access.
func (t *Tokenizer) Stream() *Stream {
	return &t.stream
}

// FileLine renders tok's "[path:line]" tag using this tokenizer's file
// table.
func (t *Tokenizer) FileLine(tok *Token) string {
	return FileLine(&t.files, tok)
}

// TypeSize returns the byte count recorded for a type name by the most
// recent Simplify() run, or 0 if unknown.
func (t *Tokenizer) TypeSize(name string) int {
	if t.typeSizes == nil {
		return 0
	}
	return t.typeSizes[name]
}

// FunctionList returns the function-definition name tokens recorded by
// the most recent FillFunctionList() run.
func (t *Tokenizer) FunctionList() []*Token {
	return t.functionList
}

// GetFunctionTokenByName returns the function-start token with the given
// name, or nil.
func (t *Tokenizer) GetFunctionTokenByName(name string) *Token {
	for _, tok := range t.functionList {
		if tok.Text == name {
			return tok
		}
	}
	return nil
}
