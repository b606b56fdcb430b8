package tokcore

// Token is one lexeme in a Stream. It carries its source origin (file
// index plus 1-based line number) and, once a variable-identity pass has
// run, the id shared by a declaration and its uses.
type Token struct {
	Text      string
	FileIndex int
	Line      int
	VarID     int

	Prev *Token
	Next *Token
}

// IsName reports whether tok looks like an identifier: its first byte is
// a letter or underscore and every byte is alphanumeric or underscore.
func IsName(tok *Token) bool {
	if tok == nil || tok.Text == "" {
		return false
	}
	return isNameString(tok.Text)
}

func isNameString(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	if !(isLetter(c) || c == '_') {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(isLetter(c) || isDigit(c) || c == '_') {
			return false
		}
	}
	return true
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsNumber reports whether tok's text starts with a decimal digit.
func IsNumber(tok *Token) bool {
	if tok == nil || tok.Text == "" {
		return false
	}
	return isDigit(tok.Text[0])
}

// IsBool reports whether tok's text is exactly "true" or "false".
func IsBool(tok *Token) bool {
	if tok == nil {
		return false
	}
	return tok.Text == "true" || tok.Text == "false"
}

// IsString reports whether tok is a string-literal token.
func IsString(tok *Token) bool {
	return tok != nil && len(tok.Text) > 0 && tok.Text[0] == '"'
}

// IsChar reports whether tok is a character-literal token.
func IsChar(tok *Token) bool {
	return tok != nil && len(tok.Text) > 0 && tok.Text[0] == '\''
}

// strAt returns the text of the token n steps forward from tok (n may be
// negative), or "" past either end of the list.
func strAt(tok *Token, n int) string {
	t := tokAt(tok, n)
	if t == nil {
		return ""
	}
	return t.Text
}

// tokAt walks n steps forward (or, if negative, backward) from tok.
func tokAt(tok *Token, n int) *Token {
	for n > 0 && tok != nil {
		tok = tok.Next
		n--
	}
	for n < 0 && tok != nil {
		tok = tok.Prev
		n++
	}
	return tok
}
