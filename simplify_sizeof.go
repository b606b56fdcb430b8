package tokcore

import "strconv"

// pointerSize is the byte size this implementation folds "sizeof(T *)"
// to, matching the original's sizeof(char*) on a 64-bit host.
const pointerSize = 8

// buildTypeSizes populates the type-size map used by sizeof folding:
// the host's primitive sizes plus a sentinel 100 for every observed
// struct/class name. Implements spec.md §4.5 step 4.
func buildTypeSizes(stream *Stream) map[string]int {
	sizes := map[string]int{
		"char":   1,
		"short":  2,
		"int":    4,
		"long":   8,
		"float":  4,
		"double": 8,
	}
	for tok := stream.Head; tok != nil; tok = tok.Next {
		if Match(tok, "class|struct %var%") {
			sizes[strAt(tok, 1)] = 100
		}
	}
	return sizes
}

// replaceSizeofVar implements spec.md §4.5 step 5: for each declaration
// "; T v ;" with v carrying a var id, rewrite "sizeof ( v )" to
// "sizeof ( T )" within the enclosing block.
func replaceSizeofVar(stream *Stream) {
	for tok := stream.Head; tok != nil; tok = tok.Next {
		if !Match(tok, "[;{}] %type% %var% ;") {
			continue
		}
		varid := tokAt(tok, 2).VarID
		if varid == 0 {
			continue
		}
		typeName := strAt(tok, 1)

		indentlevel := 0
	blockLoop:
		for tok2 := tok; tok2 != nil; tok2 = tok2.Next {
			switch tok2.Text {
			case "{":
				indentlevel++
			case "}":
				indentlevel--
				if indentlevel < 0 {
					break blockLoop
				}
			default:
				if Match(tok2, "sizeof ( %varid% )", varid) {
					tokAt(tok2, 2).Text = typeName
				}
			}
		}
	}
}

// replaceSizeofType implements spec.md §4.5 step 6: best-effort
// parenthesization of a bare "sizeof expr", then folding of
// "sizeof ( T * )", "sizeof ( T )", and "sizeof ( * v )" /
// "sizeof ( v [ N ] )" forms.
func replaceSizeofType(stream *Stream, sizes map[string]int) {
	for tok := stream.Head; tok != nil; tok = tok.Next {
		if tok.Text != "sizeof" {
			continue
		}

		if strAt(tok, 1) != "(" {
			parenthesizeSizeofOperand(stream, tok)
		}

		switch {
		case Match(tok, "sizeof ( %type% * )"):
			tok.Text = strconv.Itoa(pointerSize)
			for i := 0; i < 4; i++ {
				stream.DeleteNext(tok)
			}

		case Match(tok, "sizeof ( %type% )"):
			typeName := strAt(tok, 2)
			if size, ok := sizes[typeName]; ok && size > 0 {
				tok.Text = strconv.Itoa(size)
				for i := 0; i < 3; i++ {
					stream.DeleteNext(tok)
				}
			}

		case Match(tok, "sizeof ( * %var% )") || Match(tok, "sizeof ( %var% [ %num% ] )"):
			sz := 100
			operandIdx := 2
			if strAt(tok, 2) == "*" {
				operandIdx = 3
			}
			varid := tokAt(tok, operandIdx).VarID
			if varid != 0 {
				if decl := FindMatch(stream.Head, "%type% %varid% [", varid); decl != nil {
					if known, ok := sizes[decl.Text]; ok {
						sz = known
					}
				}
			}
			tok.Text = strconv.Itoa(sz)
			for tok.Next != nil && tok.Next.Text != ")" {
				stream.DeleteNext(tok)
			}
			stream.DeleteNext(tok)
		}
	}
}

// parenthesizeSizeofOperand inserts "(" / ")" around a simple chain of
// "." / "->" / "++"/"--" member accesses following a bare sizeof, a
// best-effort heuristic matching the original's TODO-flagged approach.
// It bails out (leaves the stream unchanged) on an array subscript.
func parenthesizeSizeofOperand(stream *Stream, tok *Token) {
	for temp := tok.Next; temp != nil; temp = temp.Next {
		if !Match(temp, "%var%") {
			continue
		}
		if SimpleMatch(temp.Next, ".") {
			temp = temp.Next
			continue
		}
		if SimpleMatch(temp.Next, "- >") {
			temp = tokAt(temp, 2)
			continue
		}
		if SimpleMatch(temp.Next, "++") || SimpleMatch(temp.Next, "--") {
			temp = tokAt(temp, 2)
		} else if SimpleMatch(temp.Next, "[") {
			return
		}

		stream.InsertAfter(tok, "(")
		stream.InsertAfter(temp, ")")
		return
	}
}

// replaceArraySizeof implements spec.md §4.5 step 7: for "T v [ N ] ;",
// each later "sizeof ( v )" becomes the constant N * sizeof(T).
func replaceArraySizeof(stream *Stream, sizes map[string]int) {
	for tok := stream.Head; tok != nil; tok = tok.Next {
		if !Match(tok, "%type% %var% [ %num% ] ;") {
			continue
		}
		size, ok := sizes[tok.Text]
		if !ok || size <= 0 {
			continue
		}
		varid := tokAt(tok, 1).VarID
		if varid == 0 {
			continue
		}
		n, err := strconv.Atoi(strAt(tok, 3))
		if err != nil {
			continue
		}
		total := size * n

		indentlevel := 0
	arrayLoop:
		for tok2 := tokAt(tok, 5); tok2 != nil; tok2 = tok2.Next {
			switch tok2.Text {
			case "{":
				indentlevel++
			case "}":
				indentlevel--
				if indentlevel < 0 {
					break arrayLoop
				}
			default:
				if Match(tok2, "sizeof ( %varid% )", varid) {
					tok2.Text = strconv.Itoa(total)
					for i := 0; i < 3; i++ {
						stream.DeleteNext(tok2)
					}
				}
			}
		}
	}
}
