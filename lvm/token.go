package lvm

// Token is a named, captured span of input, assembled from the state
// stack by Save. start/end are character (code-point) offsets into the
// original input.
type Token struct {
	Name     string
	Text     string
	Start    int
	End      int
	Children []Token
}

// Forest is the ordered sequence of top-level tokens a lexer run produces:
// every token Save emits while depth == 0.
type Forest []Token

// frame is an entry on the VM's state stack. Only the fields tagged below
// with its kind are meaningful.
type frameKind uint8

const (
	frameStartCapture frameKind = iota
	frameText
	frameList
)

type frame struct {
	kind     frameKind
	name     string  // frameStartCapture, frameList
	tcAtOpen int     // frameStartCapture
	text     string  // frameText
	start    int     // frameText
	end      int     // frameText
	children []frame // frameList
}

// toToken converts a frame into a Token: a StartCapture frame discards (it
// marks structure, not content); a Text frame becomes an empty-name leaf; a
// List frame recursively converts its children, with start/end/text
// derived from them. An empty list converts to no token at all.
func (f frame) toToken() (Token, bool) {
	switch f.kind {
	case frameText:
		return Token{Text: f.text, Start: f.start, End: f.end}, true

	case frameStartCapture:
		return Token{}, false

	case frameList:
		var children []Token
		for _, c := range f.children {
			if t, ok := c.toToken(); ok {
				children = append(children, t)
			}
		}
		if len(children) == 0 {
			return Token{}, false
		}

		start, end := children[0].Start, children[0].End
		text := ""
		for _, c := range children {
			if c.Start < start {
				start = c.Start
			}
			if c.End > end {
				end = c.End
			}
			text += c.Text
		}
		return Token{Name: f.name, Text: text, Start: start, End: end, Children: children}, true

	default:
		return Token{}, false
	}
}
