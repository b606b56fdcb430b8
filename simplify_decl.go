package tokcore

// splitDeclarations implements spec.md §4.5 step 12: "T a, b;",
// "T *a, b;", "T a[N], b;", and "struct T a, b;" (and their pointer
// variants) split on each comma into separate statements, replicating
// the type prefix; "T a = x, b = y;" is further rewritten to
// "T a; a = x; T b = y;" so later passes see one declaration and one
// assignment per statement.
//
// The original only considers a declaration whose preceding token is
// literally "{", "}" or ";" — a leading declaration at the very start
// of the stream (no preceding delimiter) is never split. spec.md §8
// scenario 1 requires the leading declaration to split too, so the
// very start of the stream is treated as an implicit boundary here in
// addition to every "[{};]" token.
func splitDeclarations(stream *Stream) {
	trySplitDeclaration(stream, stream.Head)
	for tok := stream.Head; tok != nil; tok = tok.Next {
		if !Match(tok, "[{};]") {
			continue
		}
		trySplitDeclaration(stream, tok.Next)
	}
}

func trySplitDeclaration(stream *Stream, type0 *Token) {
	if !Match(type0, "%type%") {
		return
	}
	if Match(type0, "else|return") {
		return
	}

	var tok2 *Token
	typelen := 0

	switch {
	case Match(type0, "%type% %var% ,|=") && strAt(type0, 1) != "operator":
		tok2 = tokAt(type0, 2)
		typelen = 1

	case Match(type0, "%type% * %var% ,|=") && strAt(type0, 2) != "operator":
		tok2 = tokAt(type0, 3)
		typelen = 1

	case Match(type0, "%type% %var% [ %num% ] ,"):
		tok2 = tokAt(type0, 5)
		typelen = 1

	case Match(type0, "%type% * %var% [ %num% ] ,"):
		tok2 = tokAt(type0, 6)
		typelen = 1

	case Match(type0, "struct %type% %var% ,|="):
		tok2 = tokAt(type0, 3)
		typelen = 2

	case Match(type0, "struct %type% * %var% ,|="):
		tok2 = tokAt(type0, 4)
		typelen = 2
	}

	if tok2 == nil {
		return
	}

	if tok2.Text == "," {
		tok2.Text = ";"
		insertTokensAfter(stream, tok2, type0, typelen)
		return
	}

	eq := tok2
	parlevel := 0
	for tok2 != nil {
		switch {
		case tok2.Text == "{" || tok2.Text == "(":
			parlevel++
		case tok2.Text == "}" || tok2.Text == ")":
			if parlevel < 0 {
				tok2 = nil
				continue
			}
			parlevel--
		case parlevel == 0 && (tok2.Text == ";" || tok2.Text == ","):
			varTok := tokAt(type0, typelen)
			if varTok.Text == "*" {
				varTok = varTok.Next
			}
			insertTokensAfter(stream, eq, varTok, 2)
			eq.Text = ";"

			if tok2.Text == "," {
				tok2.Text = ";"
				insertTokensAfter(stream, tok2, type0, typelen)
			}
			tok2 = nil
			continue
		}
		if tok2 != nil {
			tok2 = tok2.Next
		}
	}
}

// insertTokensAfter inserts n tokens copied (text, file/line/var id)
// from src forward, right after dest, walking dest forward as it goes.
func insertTokensAfter(stream *Stream, dest, src *Token, n int) {
	for i := 0; i < n && src != nil; i++ {
		dest = stream.InsertAfter(dest, src.Text)
		dest.FileIndex = src.FileIndex
		dest.Line = src.Line
		dest.VarID = src.VarID
		src = src.Next
	}
}
