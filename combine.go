package tokcore

// combineRule fuses two adjacent literal tokens into one.
type combineRule struct {
	first, second, fused string
}

// combineRules is the fixed fusion table from spec.md §4.3, preserved
// in the order the original tokenizer checks it (including the
// deliberately lossy "->" -> "." rewrite).
var combineRules = []combineRule{
	{"<", "<", "<<"},
	{"&", "&", "&&"},
	{"|", "|", "||"},
	{"+", "=", "+="},
	{"-", "=", "-="},
	{"*", "=", "*="},
	{"/", "=", "/="},
	{"&", "=", "&="},
	{"|", "=", "|="},
	{"=", "=", "=="},
	{"!", "=", "!="},
	{"<", "=", "<="},
	{">", "=", ">="},
	{":", ":", "::"},
	{"-", ">", "."},
	{"private", ":", "private:"},
	{"protected", ":", "protected:"},
	{"public", ":", "public:"},
}

// Combine performs the single left-to-right fusion pass of spec.md
// §4.3: adjacent pairs matching combineRules are fused into one token,
// replacing the first token's text and deleting the second. The pass
// never reorders tokens, only fuses them, so repeating it is a no-op.
func Combine(stream *Stream) {
	for tok := stream.Head; tok != nil && tok.Next != nil; tok = tok.Next {
		for _, rule := range combineRules {
			if tok.Text == rule.first && tok.Next.Text == rule.second {
				tok.Text = rule.fused
				stream.DeleteNext(tok)
				break
			}
		}
	}
}
