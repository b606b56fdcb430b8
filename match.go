package tokcore

import "strconv"

type atomKind int

const (
	atomLiteral atomKind = iota
	atomVarName
	atomTypeName
	atomNumber
	atomBool
	atomAny
	atomVarID
	atomCharClass
)

// atom is one compiled element of a Pattern: either a single alternative
// set (possibly one literal) or a builtin class, and whether it may be
// skipped (a trailing "|" alternative).
type atom struct {
	kind     atomKind
	literals []string // atomLiteral / atomCharClass alternatives ("a|b|c" or "[xyz]" expanded to one-char strings)
	optional bool
}

// Pattern is a compiled space-separated sequence of match atoms, the
// vocabulary described in spec.md §4.1 (%var%, %type%, %num%, %bool%,
// %any%, %varid%, literal words, "|" alternation, optional trailing
// "|", and single-byte "[...]" character classes).
type Pattern struct {
	atoms []atom
}

// Compile parses a pattern string into a reusable Pattern, avoiding
// re-parsing the same literal pattern on every match inside hot passes.
func Compile(pattern string) *Pattern {
	words := splitWords(pattern)
	p := &Pattern{atoms: make([]atom, 0, len(words))}
	for _, w := range words {
		p.atoms = append(p.atoms, compileAtom(w))
	}
	return p
}

func splitWords(pattern string) []string {
	var words []string
	start := -1
	for i := 0; i < len(pattern); i++ {
		if pattern[i] == ' ' {
			if start >= 0 {
				words = append(words, pattern[start:i])
				start = -1
			}
		} else if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		words = append(words, pattern[start:])
	}
	return words
}

func compileAtom(w string) atom {
	switch w {
	case "%var%":
		return atom{kind: atomVarName}
	case "%type%":
		return atom{kind: atomTypeName}
	case "%num%":
		return atom{kind: atomNumber}
	case "%bool%":
		return atom{kind: atomBool}
	case "%any%":
		return atom{kind: atomAny}
	case "%varid%":
		return atom{kind: atomVarID}
	}

	if len(w) >= 2 && w[0] == '[' && w[len(w)-1] == ']' {
		chars := w[1 : len(w)-1]
		lits := make([]string, 0, len(chars))
		for i := 0; i < len(chars); i++ {
			lits = append(lits, string(chars[i]))
		}
		return atom{kind: atomCharClass, literals: lits}
	}

	optional := false
	body := w
	if len(body) > 0 && body[len(body)-1] == '|' {
		optional = true
		body = body[:len(body)-1]
	}
	var lits []string
	if body != "" {
		lits = splitAlt(body)
	}
	return atom{kind: atomLiteral, literals: lits, optional: optional}
}

// splitAlt splits a|b|c on every "|" (there is no escape syntax).
func splitAlt(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '|' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	out = append(out, s[start:])
	return out
}

// Match reports whether the token window starting at tok satisfies the
// compiled pattern. Extra integer arguments are consumed in order by
// each %varid% atom encountered.
func (p *Pattern) Match(tok *Token, varids ...int) bool {
	vi := 0
	for _, a := range p.atoms {
		switch a.kind {
		case atomVarID:
			var want int
			if vi < len(varids) {
				want = varids[vi]
			}
			vi++
			if tok == nil || tok.VarID != want {
				if a.optional {
					continue
				}
				return false
			}
		default:
			if !matchOneAtom(a, tok) {
				if a.optional {
					continue
				}
				return false
			}
		}
		tok = tok.Next
	}
	return true
}

func matchOneAtom(a atom, tok *Token) bool {
	switch a.kind {
	case atomLiteral:
		if tok == nil {
			return false
		}
		for _, lit := range a.literals {
			if tok.Text == lit {
				return true
			}
		}
		return false
	case atomCharClass:
		if tok == nil || len(tok.Text) != 1 {
			return false
		}
		for _, lit := range a.literals {
			if tok.Text == lit {
				return true
			}
		}
		return false
	case atomVarName:
		return IsName(tok)
	case atomTypeName:
		return IsName(tok) && tok.Text != "delete"
	case atomNumber:
		return IsNumber(tok)
	case atomBool:
		return IsBool(tok)
	case atomAny:
		return tok != nil
	}
	return false
}

// Match compiles pattern and matches it against tok. Prefer Compile once
// and reuse the Pattern when matching the same pattern repeatedly.
func Match(tok *Token, pattern string, varids ...int) bool {
	return Compile(pattern).Match(tok, varids...)
}

// SimpleMatch matches a sequence of literal words only (no %atoms%, no
// alternation, no optionality) against the token window starting at tok.
func SimpleMatch(tok *Token, pattern string) bool {
	for _, w := range splitWords(pattern) {
		if tok == nil || tok.Text != w {
			return false
		}
		tok = tok.Next
	}
	return true
}

// FindMatch scans forward from tok (inclusive) for the first position
// where pattern matches, returning that token or nil.
func FindMatch(tok *Token, pattern string, varids ...int) *Token {
	p := Compile(pattern)
	for t := tok; t != nil; t = t.Next {
		if p.Match(t, varids...) {
			return t
		}
	}
	return nil
}

// varidArg renders a var id as decimal text. %varid% arguments to Match
// are plain ints, so it is not needed to build them.
func varidArg(id int) string {
	return strconv.Itoa(id)
}
