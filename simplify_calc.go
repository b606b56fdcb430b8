package tokcore

import "strconv"

// simplifyCalculations implements spec.md §4.5 step 10: folds
// "%num% op %num%" inside a delimiter-bracketed context, collapses
// "* 1" / "1 *", and strips redundant single-token parentheses around
// a bare number or variable in non-prefix position. Returns whether
// anything changed; callers loop this to a fixpoint.
func simplifyCalculations(stream *Stream) bool {
	ret := false
	for tok := stream.Head; tok != nil; tok = tok.Next {
		if SimpleMatch(tok.Next, "* 1") || SimpleMatch(tok.Next, "1 *") {
			stream.DeleteNext(tok)
			stream.DeleteNext(tok)
			ret = true
		}

		if Match(tok, "[[,(=<>] %num% [+-*/] %num% [],);=<>]") {
			i1, err1 := strconv.Atoi(strAt(tok, 1))
			i2, err2 := strconv.Atoi(strAt(tok, 3))
			op := strAt(tok, 2)[0]
			if err1 == nil && err2 == nil {
				if !(i2 == 0 && op == '/') {
					var result int
					switch op {
					case '+':
						result = i1 + i2
					case '-':
						result = i1 - i2
					case '*':
						result = i1 * i2
					case '/':
						result = i1 / i2
					}
					tok = tok.Next
					tok.Text = strconv.Itoa(result)
					stream.DeleteNext(tok)
					stream.DeleteNext(tok)
					ret = true
					continue
				}
			}
		}

		if !IsName(tok) && Match(tok.Next, "( %num% )") {
			stream.DeleteNext(tok)
			tok = tok.Next
			stream.DeleteNext(tok)
			ret = true
			continue
		}

		if !IsName(tok) && tok.Text != ">" && Match(tok.Next, "( %var% ) [;),+-*/><]]") {
			stream.DeleteNext(tok)
			tok = tok.Next
			stream.DeleteNext(tok)
			ret = true
		}
	}
	return ret
}

// simplifyPointerArithmetic implements the "*(v + N)" -> "v[N]"
// rewrite from spec.md §4.5 step 11, restricted to delimiter-bracketed
// contexts (the byte following one of ";{}(=<>").
func simplifyPointerArithmetic(stream *Stream) {
	for tok := stream.Head; tok != nil; tok = tok.Next {
		if tok.Text == "" || indexByte(";{}(=<>", tok.Text[0]) < 0 {
			continue
		}
		next := tok.Next
		if next == nil {
			break
		}
		if !Match(next, "* ( %var% + %num% )") {
			continue
		}

		varName := strAt(tok, 3)
		numText := strAt(tok, 5)
		replacements := []string{varName, "[", numText, "]"}
		for _, text := range replacements {
			tok = tok.Next
			tok.Text = text
		}
		stream.DeleteNext(tok)
		stream.DeleteNext(tok)
	}
}
