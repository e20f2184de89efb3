package formula

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/informitas/stack"
	"github.com/ssineriz/molparse/molecule"
)

// Value is the result of evaluating a formula: either a molecule or a
// bare scalar. A formula that reduces to a single unconsumed atom is
// promoted to a one entry molecule; a bare number stays scalar.
type Value struct {
	Mol *molecule.Molecule
	Num int
}

// IsScalar reports whether the value is a bare number.
func (v Value) IsScalar() bool { return v.Mol == nil }

func (v Value) String() string {
	if v.IsScalar() {
		return strconv.Itoa(v.Num)
	}
	return v.Mol.String()
}

// MarshalJSON renders a scalar as a JSON number and a molecule as its
// atom to frequency object.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.IsScalar() {
		return json.Marshal(v.Num)
	}
	return json.Marshal(v.Mol)
}

// Evaluate runs the whole pipeline on a raw formula: tokenize, reorder to
// postfix, reduce.
func Evaluate(formula string) (Value, error) {
	rpn, err := ToRPN(formula)
	if err != nil {
		return Value{}, err
	}
	return EvaluateTokens(rpn)
}

// EvaluateTokens reduces a postfix token sequence to a single value over
// an operand stack. The sequence must be in the order produced by
// ToRPNTokens; it is left untouched.
func EvaluateTokens(rpn *TokenSequence) (Value, error) {
	input := rpn.Copy()
	if input.Len() == 0 {
		return Value{}, errEmptyInput
	}
	operands := stack.NewStack[Token]()
	for {
		tok, ok := input.PopFront()
		if !ok {
			break
		}
		switch tok.Kind {
		case KindNumber, KindAtom, KindMolecule:
			operands.Push(tok)
		default:
			// Popping hands back the last pushed operand first, which is
			// the right hand side. Subtract, Coefficient and Subscript
			// are not commutative, so the order matters.
			rhs, err := operands.Pop()
			if err != nil {
				return Value{}, errMissingOperand
			}
			lhs, err := operands.Pop()
			if err != nil {
				return Value{}, errMissingOperand
			}
			res, aerr := applyOperator(tok, lhs, rhs)
			if aerr != nil {
				return Value{}, aerr
			}
			operands.Push(res)
		}
	}
	res, err := operands.Pop()
	if err != nil {
		return Value{}, errMissingOperand
	}
	if !operands.IsEmpty() {
		return Value{}, errUnusedOperands
	}
	switch res.Kind {
	case KindNumber:
		return Value{Num: res.Num}, nil
	case KindAtom:
		return Value{Mol: promote(res)}, nil
	default:
		return Value{Mol: res.Mol}, nil
	}
}

// applyOperator reduces one binary operator over its two operands and
// returns the resulting token.
func applyOperator(op, lhs, rhs Token) (Token, error) {
	switch op.Kind {
	case KindSubscript:
		if !isMatter(lhs) || rhs.Kind != KindNumber {
			return Token{}, &InvalidOperationError{Op: op, Lhs: lhs, Rhs: rhs}
		}
		m := promote(lhs)
		m.MultiplyMut(rhs.Num)
		return MoleculeToken(m), nil
	case KindCoefficient:
		if lhs.Kind != KindNumber || !isMatter(rhs) {
			return Token{}, &InvalidOperationError{Op: op, Lhs: lhs, Rhs: rhs}
		}
		m := promote(rhs)
		m.MultiplyMut(lhs.Num)
		return MoleculeToken(m), nil
	case KindAdd, KindJoin:
		if !isMatter(lhs) || !isMatter(rhs) {
			return Token{}, &InvalidOperationError{Op: op, Lhs: lhs, Rhs: rhs}
		}
		m := promote(lhs)
		m.AddMut(promote(rhs))
		return MoleculeToken(m), nil
	case KindSubtract:
		if !isMatter(lhs) || !isMatter(rhs) {
			return Token{}, &InvalidOperationError{Op: op, Lhs: lhs, Rhs: rhs}
		}
		m := promote(lhs)
		m.SubtractMut(promote(rhs))
		return MoleculeToken(m), nil
	default:
		return Token{}, fmt.Errorf("unexpected %s in postfix sequence", op.Kind)
	}
}

// isMatter reports whether a token can stand in for a molecule operand.
func isMatter(t Token) bool {
	return t.Kind == KindAtom || t.Kind == KindMolecule
}

// promote turns an operand token into a molecule the arithmetic can work
// on. Atom tokens become a fresh single entry molecule; molecule tokens
// are copied so intermediates never alias tokens the caller still holds.
func promote(t Token) *molecule.Molecule {
	if t.Kind == KindAtom {
		m, _ := molecule.FromAtom(t.Sym)
		return m
	}
	return t.Mol.Copy()
}
