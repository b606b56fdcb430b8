package tokcore

import "fmt"

// Stream is the mutable, doubly-linked token list owned by exactly one
// Tokenizer. Head may change as leading tokens are deleted.
type Stream struct {
	Head *Token
	Tail *Token
}

// Append adds a new token with the given text, file index and line to
// the end of the stream. Empty text is silently dropped, matching the
// original tokenizer's addtoken behavior. A token whose text begins with
// "0x" is canonicalized to its decimal value.
func (s *Stream) Append(text string, fileIndex, line int) *Token {
	if text == "" {
		return nil
	}
	text = canonicalizeHex(text)
	tok := &Token{Text: text, FileIndex: fileIndex, Line: line}
	if s.Tail == nil {
		s.Head = tok
		s.Tail = tok
		return tok
	}
	tok.Prev = s.Tail
	s.Tail.Next = tok
	s.Tail = tok
	return tok
}

// InsertAfter inserts a new token carrying text immediately after tok,
// copying tok's file/line origin, and returns the new token. If tok is
// nil the token is inserted at the head of the stream.
func (s *Stream) InsertAfter(tok *Token, text string) *Token {
	nt := &Token{Text: text}
	if tok != nil {
		nt.FileIndex = tok.FileIndex
		nt.Line = tok.Line
	}
	if tok == nil {
		nt.Next = s.Head
		if s.Head != nil {
			s.Head.Prev = nt
		}
		s.Head = nt
		if s.Tail == nil {
			s.Tail = nt
		}
		return nt
	}

	nt.Prev = tok
	nt.Next = tok.Next
	if tok.Next != nil {
		tok.Next.Prev = nt
	} else {
		s.Tail = nt
	}
	tok.Next = nt
	return nt
}

// DeleteNext unlinks and discards the token following tok. If tok is nil
// the head token is removed. A no-op if there is no such token.
func (s *Stream) DeleteNext(tok *Token) {
	var victim *Token
	if tok == nil {
		victim = s.Head
	} else {
		victim = tok.Next
	}
	if victim == nil {
		return
	}

	prev := victim.Prev
	next := victim.Next
	if prev != nil {
		prev.Next = next
	} else {
		s.Head = next
	}
	if next != nil {
		next.Prev = prev
	} else {
		s.Tail = prev
	}
	victim.Prev = nil
	victim.Next = nil
}

// EraseRange deletes every token strictly between from and to, exclusive
// of both endpoints. Either endpoint may be nil to mean "the edge of the
// stream".
func (s *Stream) EraseRange(from, to *Token) {
	if from == nil {
		for s.Head != nil && s.Head != to {
			s.DeleteNext(nil)
		}
		return
	}
	for from.Next != nil && from.Next != to {
		s.DeleteNext(from)
	}
}

// Replace removes first through last (inclusive) and inserts fresh
// tokens carrying texts in their place, anchored at first's origin. It
// returns the first inserted token (or the token following the erased
// range, if texts is empty).
func (s *Stream) Replace(first, last *Token, texts []string) *Token {
	before := first.Prev
	fileIndex, line := first.FileIndex, first.Line
	s.EraseRange(before, last.Next)

	anchor := before
	var firstNew *Token
	for _, text := range texts {
		nt := s.InsertAfter(anchor, text)
		nt.FileIndex = fileIndex
		nt.Line = line
		anchor = nt
		if firstNew == nil {
			firstNew = nt
		}
	}
	if firstNew != nil {
		return firstNew
	}
	if before == nil {
		return s.Head
	}
	return before.Next
}

// FileLine renders the human-readable "[path:line]" tag for tok, looking
// the file index up in table.
func FileLine(table *FileTable, tok *Token) string {
	if tok == nil {
		return "[?:0]"
	}
	path := table.Path(tok.FileIndex)
	return fmt.Sprintf("[%s:%d]", path, tok.Line)
}

func canonicalizeHex(text string) string {
	if len(text) > 2 && text[0] == '0' && (text[1] == 'x' || text[1] == 'X') {
		if v, ok := parseHex(text[2:]); ok {
			return fmt.Sprintf("%d", v)
		}
	}
	return text
}

func parseHex(s string) (uint64, bool) {
	if s == "" {
		return 0, false
	}
	var v uint64
	for i := 0; i < len(s); i++ {
		c := s[i]
		var d uint64
		switch {
		case c >= '0' && c <= '9':
			d = uint64(c - '0')
		case c >= 'a' && c <= 'f':
			d = uint64(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = uint64(c-'A') + 10
		default:
			return 0, false
		}
		v = v*16 + d
	}
	return v, true
}
