package tokcore

// Simplify runs the full rewrite pipeline over t's stream: spec.md
// §4.5's nineteen ordered one-shot steps, followed by the fixpoint
// cluster (§4.10–§4.14 plus calculation folding again) repeated until a
// full pass makes no change. Grounded on tokenize.cpp's
// Tokenizer::simplifyTokenList, which runs in exactly this order.
func (t *Tokenizer) Simplify() {
	spliceAdjacentStrings(&t.stream)
	stripUnwantedKeywords(&t.stream)
	foldSignRuns(&t.stream)

	t.typeSizes = buildTypeSizes(&t.stream)
	replaceSizeofVar(&t.stream)
	replaceSizeofType(&t.stream, t.typeSizes)
	replaceArraySizeof(&t.stream, t.typeSizes)

	propagateConstants(&t.stream)
	simplifyCasts(&t.stream)

	for simplifyCalculations(&t.stream) {
	}
	simplifyPointerArithmetic(&t.stream)

	splitDeclarations(&t.stream)
	t.SetVarID()

	replaceNullWithZero(&t.stream)
	elideNullPointerCasts(&t.stream)

	addIfBraces(&t.stream)
	simplifyFunctionParameters(&t.stream)
	elseif(&t.stream)
	fixupCaseLabels(&t.stream)

	for {
		changed := simplifyConditions(&t.stream)
		changed = simplifyFunctionReturn(&t.stream) || changed
		changed = simplifyKnownVariables(&t.stream) || changed
		changed = removeRedundantConditions(&t.stream) || changed
		changed = simplifyRedundantParanthesis(&t.stream) || changed
		changed = simplifyCalculations(&t.stream) || changed
		if !changed {
			break
		}
	}
}

// spliceAdjacentStrings implements spec.md §4.5 step 1: two adjacent
// string-literal tokens merge into one, dropping the closing quote of
// the first and the opening quote of the second.
func spliceAdjacentStrings(stream *Stream) {
	for tok := stream.Head; tok != nil; tok = tok.Next {
		for IsString(tok) && IsString(tok.Next) {
			merged := tok.Text[:len(tok.Text)-1] + tok.Next.Text[1:]
			tok.Text = merged
			stream.DeleteNext(tok)
		}
	}
}

var unwantedKeywords = []string{"unsigned", "unlikely"}

// stripUnwantedKeywords implements spec.md §4.5 step 2: "unsigned" and
// "unlikely" are deleted wherever they appear as the token right after
// any other token.
//
// A typedef fold (§4.4) can leave one of these words as the very first
// token in the stream, with no preceding token for a tok.Next check to
// ever land on — spec.md §8 scenario 4 ("typedef unsigned int U; U v;")
// is exactly this case, so the head token is checked directly too, the
// same virtual-boundary treatment applied to splitDeclarations and
// simplifyKnownVariables.
func stripUnwantedKeywords(stream *Stream) {
	for isUnwantedKeyword(stream.Head) {
		stream.DeleteNext(nil)
	}
	for tok := stream.Head; tok != nil; tok = tok.Next {
		for _, word := range unwantedKeywords {
			if tok.Next != nil && tok.Next.Text == word {
				stream.DeleteNext(tok)
				break
			}
		}
	}
}

func isUnwantedKeyword(tok *Token) bool {
	if tok == nil {
		return false
	}
	for _, word := range unwantedKeywords {
		if tok.Text == word {
			return true
		}
	}
	return false
}

// foldSignRuns implements spec.md §4.5 step 3: "+ +" -> "+", "+ -" ->
// "-", "- -" -> "+", "- +" -> "-".
func foldSignRuns(stream *Stream) {
	for tok := stream.Head; tok != nil; tok = tok.Next {
		for tok.Next != nil {
			switch tok.Text {
			case "+":
				if tok.Next.Text == "+" {
					stream.DeleteNext(tok)
					continue
				} else if tok.Next.Text == "-" {
					tok.Text = "-"
					stream.DeleteNext(tok)
					continue
				}
			case "-":
				if tok.Next.Text == "-" {
					tok.Text = "+"
					stream.DeleteNext(tok)
					continue
				} else if tok.Next.Text == "+" {
					stream.DeleteNext(tok)
					continue
				}
			}
			break
		}
	}
}
