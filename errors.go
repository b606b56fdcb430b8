package tokcore

// FatalError represents spec.md §7's "structural lexer bug" kind: an
// unbalanced #endfile marker. Unlike the original tokenizer (which
// prints a diagnostic and calls exit()), this is returned to the
// caller — see SPEC_FULL.md's adopted REDESIGN FLAG. Only a caller at
// the process boundary (cmd/tokcore) should turn this into os.Exit.
type FatalError struct {
	Message string
}

func (e *FatalError) Error() string {
	return e.Message
}
