package formula

import "unicode"

// Tokenize scans formula left to right and produces its token sequence,
// inserting the operators the notation leaves implicit: juxtaposition of
// atoms or groups becomes Add, a number in front of an atom or group
// becomes a Coefficient, and a number after one becomes a Subscript.
//
// Failures are reported as *MalformedFormulaError carrying the rune index
// of the offending character.
func Tokenize(formula string) (*TokenSequence, error) {
	t := &tokenizer{src: []rune(formula), out: NewTokenSequence()}
	if err := t.run(); err != nil {
		return nil, err
	}
	return t.out, nil
}

// tokenizer is a single pass scanner over runes with one character of
// lookahead. Disambiguation looks only at the previously emitted token.
type tokenizer struct {
	src []rune
	pos int
	out *TokenSequence

	last    Kind
	hasLast bool
	open    int
}

func (t *tokenizer) run() error {
	for t.pos < len(t.src) {
		r := t.src[t.pos]
		switch {
		case unicode.IsSpace(r):
			t.pos++
		case unicode.IsDigit(r):
			if err := t.scanNumber(); err != nil {
				return err
			}
		case unicode.IsUpper(r):
			t.scanAtom()
		case r == '(':
			t.joinPrevious()
			t.emit(Token{Kind: KindGroupLeft})
			t.open++
			t.pos++
		case r == ')':
			if t.open == 0 {
				return malformed(t.pos, "unmatched right bracket")
			}
			t.emit(Token{Kind: KindGroupRight})
			t.open--
			t.pos++
		case r == '+':
			t.emit(Token{Kind: KindJoin})
			t.pos++
		case r == '-':
			t.emit(Token{Kind: KindSubtract})
			t.pos++
		default:
			return malformed(t.pos, "unexpected token %q", string(r))
		}
	}
	if t.open != 0 {
		return malformed(len(t.src), "unmatched left bracket")
	}
	return nil
}

func (t *tokenizer) emit(tok Token) {
	t.out.PushBack(tok)
	t.last = tok.Kind
	t.hasLast = true
}

// joinPrevious inserts the Add that adjacency implies: an atom or an
// opening group directly after a number, an atom, or a closed group is
// summed with what came before.
func (t *tokenizer) joinPrevious() {
	if !t.hasLast {
		return
	}
	switch t.last {
	case KindNumber, KindAtom, KindGroupRight:
		t.emit(Token{Kind: KindAdd})
	}
}

// scanNumber consumes a run of digits and decides, from the previous
// token, whether the number is a left multiplying coefficient or a right
// multiplying subscript.
func (t *tokenizer) scanNumber() error {
	start := t.pos
	n := 0
	for t.pos < len(t.src) && unicode.IsDigit(t.src[t.pos]) {
		n = n*10 + int(t.src[t.pos]-'0')
		t.pos++
	}
	switch {
	case !t.hasLast, t.last == KindGroupLeft, t.last == KindJoin, t.last == KindSubtract:
		t.emit(NumberToken(n))
		t.emit(Token{Kind: KindCoefficient})
	case t.last == KindAtom, t.last == KindGroupRight, t.last == KindNumber:
		// A number right after another number nests: "H2 3" reads as
		// (H subscript 2) subscript 3.
		t.emit(Token{Kind: KindSubscript})
		t.emit(NumberToken(n))
	default:
		return malformed(start, "number cannot follow %s", t.last)
	}
	return nil
}

// scanAtom consumes an atom symbol: one uppercase letter, plus the next
// character when it is lowercase.
func (t *tokenizer) scanAtom() {
	t.joinPrevious()
	sym := string(t.src[t.pos])
	t.pos++
	if t.pos < len(t.src) && unicode.IsLower(t.src[t.pos]) {
		sym += string(t.src[t.pos])
		t.pos++
	}
	t.emit(AtomToken(sym))
}
