package formula

import "strings"

// TokenSequence is an ordered, double ended collection of tokens. The
// tokenizer appends at the tail; the converter and the evaluator consume
// from the head.
type TokenSequence struct {
	toks []Token
}

// NewTokenSequence returns a sequence holding the given tokens in order.
func NewTokenSequence(toks ...Token) *TokenSequence {
	return &TokenSequence{toks: toks}
}

// PushBack appends a token at the tail.
func (s *TokenSequence) PushBack(t Token) { s.toks = append(s.toks, t) }

// PushFront prepends a token at the head.
func (s *TokenSequence) PushFront(t Token) {
	s.toks = append([]Token{t}, s.toks...)
}

// PopFront removes and returns the head token. The second result is false
// when the sequence is empty.
func (s *TokenSequence) PopFront() (Token, bool) {
	if len(s.toks) == 0 {
		return Token{}, false
	}
	t := s.toks[0]
	s.toks = s.toks[1:]
	return t, true
}

// PopBack removes and returns the tail token. The second result is false
// when the sequence is empty.
func (s *TokenSequence) PopBack() (Token, bool) {
	if len(s.toks) == 0 {
		return Token{}, false
	}
	t := s.toks[len(s.toks)-1]
	s.toks = s.toks[:len(s.toks)-1]
	return t, true
}

// Back returns the tail token without removing it.
func (s *TokenSequence) Back() (Token, bool) {
	if len(s.toks) == 0 {
		return Token{}, false
	}
	return s.toks[len(s.toks)-1], true
}

// Len returns the number of tokens in the sequence.
func (s *TokenSequence) Len() int { return len(s.toks) }

// At returns the token at index i counted from the head.
func (s *TokenSequence) At(i int) Token { return s.toks[i] }

// Copy returns a sequence holding the same tokens. Molecule payloads are
// shared, not cloned.
func (s *TokenSequence) Copy() *TokenSequence {
	toks := make([]Token, len(s.toks))
	copy(toks, s.toks)
	return &TokenSequence{toks: toks}
}

// Tokens returns the tokens as a fresh slice in head to tail order.
func (s *TokenSequence) Tokens() []Token {
	toks := make([]Token, len(s.toks))
	copy(toks, s.toks)
	return toks
}

// String renders the tokens space separated, e.g. "H 2 ^ O +".
func (s *TokenSequence) String() string {
	parts := make([]string, len(s.toks))
	for i, t := range s.toks {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}
