package formula

import "github.com/informitas/stack"

// precedence orders the binary operators; a tighter operator binds its
// operands first. Join and Subtract share the lowest level.
var precedence = map[Kind]int{
	KindSubscript:   3,
	KindAdd:         2,
	KindCoefficient: 1,
	KindJoin:        0,
	KindSubtract:    0,
}

// ToRPN tokenizes formula and reorders it into postfix form.
func ToRPN(formula string) (*TokenSequence, error) {
	tokens, err := Tokenize(formula)
	if err != nil {
		return nil, err
	}
	return ToRPNTokens(tokens), nil
}

// ToRPNTokens reorders an infix token sequence into postfix form by
// shunting yard. The input sequence is left untouched. Equal precedence
// operators pop left associatively, so "A - B - C" comes out as
// "(A-B)-C".
//
// ToRPNTokens itself never fails: a sequence that did not come out of
// Tokenize may produce a postfix ordering the evaluator rejects.
func ToRPNTokens(tokens *TokenSequence) *TokenSequence {
	input := tokens.Copy()
	out := NewTokenSequence()
	opers := stack.NewStack[Token]()

	for {
		tok, ok := input.PopFront()
		if !ok {
			break
		}
		switch tok.Kind {
		case KindNumber, KindAtom, KindMolecule:
			out.PushBack(tok)
		case KindGroupLeft:
			opers.Push(tok)
		case KindGroupRight:
			for !opers.IsEmpty() {
				top, _ := opers.Pop()
				if top.Kind == KindGroupLeft {
					break
				}
				out.PushBack(top)
			}
		default:
			for opers.Size() > 0 {
				top, _ := opers.Top()
				if top.Kind == KindGroupLeft || precedence[tok.Kind] > precedence[top.Kind] {
					break
				}
				oper, _ := opers.Pop()
				out.PushBack(oper)
			}
			opers.Push(tok)
		}
	}
	for !opers.IsEmpty() {
		oper, _ := opers.Pop()
		if oper.Kind == KindGroupLeft {
			// Malformed upstream; the evaluator reports it.
			continue
		}
		out.PushBack(oper)
	}
	return out
}
