package tokcore

// addIfBraces implements spec.md §4.8: wraps the body of any
// if|for|while (...) or bare else not already followed by "{" in
// braces around its single controlled statement.
func addIfBraces(stream *Stream) bool {
	ret := false

	for tok := stream.Head; tok != nil; tok = tok.Next {
		if Match(tok, "if|for|while (") {
			parlevel := 1
			tok = tok.Next
			for parlevel >= 1 {
				tok = tok.Next
				if tok == nil {
					break
				}
				if tok.Text == "(" {
					parlevel++
				} else if tok.Text == ")" {
					parlevel--
				}
			}

			if tok == nil || SimpleMatch(tok, ") {") {
				continue
			}
		} else if tok.Text == "else" {
			if Match(tok, "else if|{") {
				continue
			}
		} else {
			continue
		}

		tok = stream.InsertAfter(tok, "{")

		parlevel := 0
		indentlevel := 0
		for {
			tok = tok.Next
			if tok == nil {
				break
			}
			switch tok.Text {
			case "{":
				indentlevel++
			case "}":
				indentlevel--
				if indentlevel == 0 {
					goto closeBody
				}
			case "(":
				parlevel++
			case ")":
				parlevel--
			case ";":
				if indentlevel == 0 && parlevel == 0 {
					goto closeBody
				}
			}
		}
	closeBody:
		if tok != nil {
			stream.InsertAfter(tok, "}")
			ret = true
		}
	}

	return ret
}

// simplifyFunctionParameters implements spec.md §4.9: an old-style K&R
// function signature "N ( a , b , c )" followed by "T1 a ; T2 b ; ..."
// before the opening "{" is rewritten so each parameter name is
// replaced in place by its declared type(s) and name, and the
// intervening declarations are removed.
func simplifyFunctionParameters(stream *Stream) bool {
	ret := false
	indentlevel := 0

	for tok := stream.Head; tok != nil; tok = tok.Next {
		switch {
		case tok.Text == "{":
			indentlevel++
			continue
		case tok.Text == "}":
			indentlevel--
			continue
		case indentlevel != 0 || !Match(tok, "%var% ( %var% [,)]"):
			continue
		}

		argumentNames := map[string]*Token{}
		bailOut := false
		tok = tokAt(tok, 2)
		for tok != nil {
			if !Match(tok, "%var% [,)]") {
				bailOut = true
				break
			}
			argumentNames[tok.Text] = tok
			if strAt(tok, 1) == ")" {
				tok = tokAt(tok, 2)
				break
			}
			tok = tokAt(tok, 2)
		}

		if bailOut {
			continue
		}

		start := tok
		for tok != nil && tok.Text != "{" {
			if tok.Text == ";" {
				declEnd := tok.Prev

				paramTok, ok := argumentNames[declEnd.Text]
				if !ok {
					bailOut = true
					break
				}

				next := tok.Next
				texts := collectTexts(start, declEnd)
				stream.Replace(paramTok, paramTok, texts)

				before := start.Prev
				stream.EraseRange(before, next)
				ret = true
				tok = next
				start = tok
			} else {
				tok = tok.Next
			}
		}

		if tok == nil {
			break
		}
		if bailOut {
			continue
		}

		indentlevel++
	}

	return ret
}

func collectTexts(from, to *Token) []string {
	var texts []string
	for t := from; t != nil; t = t.Next {
		texts = append(texts, t.Text)
		if t == to {
			break
		}
	}
	return texts
}

// elseif implements spec.md §4.5 step 18: an "else if" chain whose
// body is a single statement gets braces so each arm ends with "}"
// before the next "else".
func elseif(stream *Stream) bool {
	ret := false
	for tok := stream.Head; tok != nil; tok = tok.Next {
		if !SimpleMatch(tok, "else if") {
			continue
		}
		indent := 0
		for tok2 := tok; indent >= 0 && tok2 != nil; tok2 = tok2.Next {
			if Match(tok2, "(|{") {
				indent++
			} else if Match(tok2, ")|}") {
				indent--
			}

			if indent == 0 && Match(tok2, "}|;") {
				if !SimpleMatch(tok2.Next, "else") {
					stream.InsertAfter(tok, "{")
					stream.InsertAfter(tok2, "}")
					ret = true
					break
				}
			}
		}
	}
	return ret
}

// fixupCaseLabels implements spec.md §4.5 step 19: a ";" separator is
// inserted after "case X :" and "default :" labels immediately
// followed by a statement.
func fixupCaseLabels(stream *Stream) {
	for tok := stream.Head; tok != nil; tok = tok.Next {
		if Match(tok, "case %any% : %var%") {
			stream.InsertAfter(tokAt(tok, 2), ";")
		}
		if Match(tok, "default : %var%") {
			stream.InsertAfter(tok.Next, ";")
		}
	}
}
