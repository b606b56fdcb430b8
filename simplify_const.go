package tokcore

// propagateConstants implements spec.md §4.5 step 8: for each
// "const T name = NUM ;" declaration, every later occurrence of name
// within the enclosing block (not preceded by ".") is rewritten to
// NUM.
func propagateConstants(stream *Stream) {
	for tok := stream.Head; tok != nil; tok = tok.Next {
		if !Match(tok, "const %type% %var% = %num% ;") {
			continue
		}
		sym := strAt(tok, 2)
		num := strAt(tok, 4)

		indent := 1
	constScope:
		for tok2 := tokAt(tok, 6); tok2 != nil; tok2 = tok2.Next {
			switch {
			case tok2.Text == "{":
				indent++
			case tok2.Text == "}":
				indent--
				if indent == 0 {
					break constScope
				}
			case tok2.Text == sym && tok2.Prev != nil && tok2.Prev.Text != ".":
				tok2.Text = num
			}
		}
	}
}

// replaceNullWithZero implements spec.md §4.5 step 14.
func replaceNullWithZero(stream *Stream) {
	for tok := stream.Head; tok != nil; tok = tok.Next {
		if tok.Text == "NULL" {
			tok.Text = "0"
		}
	}
}

// elideNullPointerCasts implements spec.md §4.5 step 15: "( T * ) 0"
// and "( T T * ) 0" collapse to the bare "0".
func elideNullPointerCasts(stream *Stream) {
	for tok := stream.Head; tok != nil; tok = tok.Next {
		if Match(tok.Next, "( %type% * ) 0") || Match(tok.Next, "( %type% %type% * ) 0") {
			for tok.Next.Text != "0" {
				stream.DeleteNext(tok)
			}
		}
	}
}
