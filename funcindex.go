package tokcore

// FillFunctionList implements spec.md §4.7: at brace-depth 0, a token
// "N (" whose matching ")" is followed by "{" (optionally with an
// intervening "const") is recorded as a function-start token. Per
// spec.md §9's preserved anomaly, any name with more than one
// occurrence in the resulting list has ALL of its entries removed, not
// just the surplus ones.
func (t *Tokenizer) FillFunctionList() {
	t.functionList = nil

	indentlevel := 0
	for tok := t.stream.Head; tok != nil; tok = tok.Next {
		switch tok.Text {
		case "{":
			indentlevel++
			continue
		case "}":
			indentlevel--
			continue
		}

		if indentlevel > 0 {
			continue
		}

		if !Match(tok, "%var% (") {
			continue
		}

		for tok2 := tokAt(tok, 2); tok2 != nil; tok2 = tok2.Next {
			switch {
			case tok2.Text == ";":
				tok = tok2
			case tok2.Text == "{":
			case tok2.Text == ")":
				if Match(tok2, ") const| {") {
					t.functionList = append(t.functionList, tok)
					tok = tok2
				} else {
					tok = tok2
					for tok.Next != nil && indexByte(";{", tok.Next.Text[0]) < 0 {
						tok = tok.Next
					}
				}
			default:
				continue
			}
			break
		}
	}

	t.functionList = removeDuplicateFunctionNames(t.functionList)
}

// removeDuplicateFunctionNames drops every entry whose name occurs more
// than once in list, preserving order among the surviving unique
// names. This reproduces the original tokenizer's O(n^2) erase loop,
// which removes all copies on a collision rather than keeping one.
func removeDuplicateFunctionNames(list []*Token) []*Token {
	counts := make(map[string]int, len(list))
	for _, tok := range list {
		counts[tok.Text]++
	}
	var out []*Token
	for _, tok := range list {
		if counts[tok.Text] == 1 {
			out = append(out, tok)
		}
	}
	return out
}
