package tokcore

// FoldTypedefsAndNoise implements spec.md §4.4: typedef statements are
// deleted and their alias rewritten forward through the remaining
// stream, `__asm { ... }` blocks are deleted wholesale, and every
// occurrence of the bare tokens "volatile"/"mutable" is removed.
func FoldTypedefsAndNoise(stream *Stream) {
	foldTypedefs(stream)
	removeAsmBlocks(stream)
	removeWord(stream, "volatile")
	removeWord(stream, "mutable")
}

func foldTypedefs(stream *Stream) {
	for tok := stream.Head; tok != nil; {
		if Match(tok, "typedef %type% %type% ;") {
			type1 := strAt(tok, 1)
			type2 := strAt(tok, 2)
			before := tok.Prev
			next := tokAt(tok, 4)
			stream.EraseRange(before, next)

			for t := next; t != nil; t = t.Next {
				if t.Text == type2 {
					t.Text = type1
				}
			}
			tok = next
			continue
		}

		if Match(tok, "typedef %type% %type% %type% ;") {
			type1 := strAt(tok, 1)
			type2 := strAt(tok, 2)
			type3 := strAt(tok, 3)
			before := tok.Prev
			next := tokAt(tok, 5)
			stream.EraseRange(before, next)

			for t := next; t != nil; t = t.Next {
				if t.Text == type3 {
					t.Text = type1
					t = stream.InsertAfter(t, type2)
				}
			}
			tok = next
			continue
		}

		tok = tok.Next
	}
}

// removeAsmBlocks deletes "__asm { ... }" from __asm through the
// matching "}" inclusive, with no nesting expected.
func removeAsmBlocks(stream *Stream) {
	for tok := stream.Head; tok != nil; tok = tok.Next {
		if SimpleMatch(tok.Next, "__asm {") {
			for tok.Next != nil {
				last := SimpleMatch(tok.Next, "}")
				stream.DeleteNext(tok)
				if last {
					break
				}
			}
		}
	}
}

func removeWord(stream *Stream, word string) {
	for stream.Head != nil && stream.Head.Text == word {
		stream.DeleteNext(nil)
	}
	for tok := stream.Head; tok != nil; tok = tok.Next {
		for tok.Next != nil && tok.Next.Text == word {
			stream.DeleteNext(tok)
		}
	}
}
