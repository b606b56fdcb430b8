package tokcore

// SetVarID implements spec.md §4.6: it (re)builds variable identities
// from scratch, clearing any existing ids, then numbering declarations
// and linking every textual use within the enclosing scope, followed by
// a member-numbering sub-pass for "id . name" access chains.
func (t *Tokenizer) SetVarID() {
	for tok := t.stream.Head; tok != nil; tok = tok.Next {
		tok.VarID = 0
	}

	varID := 0
	for tok := t.stream.Head; tok != nil; tok = tok.Next {
		if tok != t.stream.Head && !Match(tok, "[;{}(]") {
			continue
		}

		cur := tok
		if Match(cur, "[;{}(] %type%") {
			cur = cur.Next
		}

		if Match(cur, "else|return") {
			continue
		}

		var varname string
		tok2 := tokAt(cur, 1)
		for tok2 != nil && !Match(tok2, "[;[=(]") {
			if IsName(tok2) {
				varname = tok2.Text
			} else if tok2.Text != "*" {
				break
			}
			tok2 = tok2.Next
		}

		if varname == "" || !Match(tok2, "[;[=]") {
			continue
		}

		varID++
		indentlevel := 0
		parlevel := 0
		dot := false
	declScope:
		for tok2 = cur.Next; tok2 != nil; tok2 = tok2.Next {
			switch {
			case !dot && tok2.Text == varname:
				tok2.VarID = varID
			case tok2.Text == "{":
				indentlevel++
			case tok2.Text == "}":
				indentlevel--
				if indentlevel < 0 {
					break declScope
				}
			case tok2.Text == "(":
				parlevel++
			case tok2.Text == ")":
				if parlevel == 0 && indentlevel == 0 && Match(tok2, ") const| {") {
					// function parameter list closer, not a nested paren
				} else {
					parlevel--
				}
			default:
				if parlevel < 0 && tok2.Text == ";" {
					break declScope
				}
			}
			dot = tok2.Text == "."
		}
	}

	setMemberVarIDs(t, &varID)
}

func setMemberVarIDs(t *Tokenizer, varID *int) {
	for tok := t.stream.Head; tok != nil; tok = tok.Next {
		if tok.VarID == 0 {
			continue
		}
		if !Match(tok.Next, ". %var%") {
			continue
		}
		member := tokAt(tok, 2)
		if member.VarID != 0 {
			continue
		}

		*varID = *varID + 1
		memberName := member.Text
		ownerID := tok.VarID
		for tok2 := tok; tok2 != nil; tok2 = tok2.Next {
			if tok2.VarID == ownerID && SimpleMatch(tok2.Next, ". "+memberName) {
				tokAt(tok2, 2).VarID = *varID
			}
		}
	}
}
