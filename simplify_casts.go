package tokcore

// simplifyCasts implements spec.md §4.5 step 9: "(T)"/"(T T)" casts
// immediately preceding a name are deleted, and the four named C++
// cast templates are stripped along with their own parenthesization,
// leaving the bare operand behind. Returns whether anything changed.
func simplifyCasts(stream *Stream) bool {
	ret := false
	for tok := stream.Head; tok != nil; tok = tok.Next {
		if Match(tok.Next, "( %type% *| )") || Match(tok.Next, "( %type% %type% *| )") {
			if IsName(tok) && tok.Text != "return" {
				continue
			}

			tok2 := tokAt(tok, 3)
			for tok2 != nil && tok2.Text != ")" {
				tok2 = tok2.Next
			}
			if !Match(tok2, ") %var%") {
				continue
			}

			for tok.Next.Text != ")" {
				stream.DeleteNext(tok)
			}
			stream.DeleteNext(tok)
			ret = true
			continue
		}

		if Match(tok.Next, "dynamic_cast|reinterpret_cast|const_cast|static_cast <") {
			for tok.Next != nil && tok.Next.Text != ">" {
				stream.DeleteNext(tok)
			}
			stream.DeleteNext(tok) // ">"
			stream.DeleteNext(tok) // "("

			tok2 := tok
			parlevel := 0
			for tok2.Next != nil && parlevel >= 0 {
				tok2 = tok2.Next
				if SimpleMatch(tok2.Next, "(") {
					parlevel++
				} else if SimpleMatch(tok2.Next, ")") {
					parlevel--
				}
			}
			if tok2.Next != nil {
				stream.DeleteNext(tok2)
			}
			ret = true
		}
	}
	return ret
}
