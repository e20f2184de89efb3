// Package formula parses chemical formula strings such as
// "5(H2O)3((FeW)5CrMo2V)6CoMnSi" into molecules. The pipeline has three
// stages that can be entered at any point: Tokenize produces a token
// sequence, ToRPNTokens reorders it into postfix form, and EvaluateTokens
// reduces the postfix form to a molecule or scalar over an operand stack.
package formula

import (
	"fmt"
	"strconv"

	"github.com/ssineriz/molparse/molecule"
)

// Kind discriminates the token variants. Operators carry no payload;
// Number, Atom and Molecule tokens carry a value.
type Kind int

const (
	KindNumber Kind = iota
	KindAtom
	KindMolecule
	KindGroupLeft
	KindGroupRight
	KindAdd
	KindSubtract
	KindCoefficient
	KindSubscript
	// KindJoin is the explicit "+" between sub-formulas. It currently
	// behaves exactly like KindAdd but stays a separate variant so the two
	// notations can diverge without reshaping the token stream.
	KindJoin
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindAtom:
		return "atom"
	case KindMolecule:
		return "molecule"
	case KindGroupLeft:
		return "group left"
	case KindGroupRight:
		return "group right"
	case KindAdd:
		return "add"
	case KindSubtract:
		return "subtract"
	case KindCoefficient:
		return "coefficient"
	case KindSubscript:
		return "subscript"
	case KindJoin:
		return "join"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Token is one element of a formula token stream. Exactly one payload
// field is meaningful, selected by Kind.
type Token struct {
	Kind Kind
	Num  int
	Sym  string
	Mol  *molecule.Molecule
}

// NumberToken returns a Number token holding n.
func NumberToken(n int) Token { return Token{Kind: KindNumber, Num: n} }

// AtomToken returns an Atom token holding the symbol sym. The symbol must
// satisfy molecule.ValidSymbol; the tokenizer only ever emits valid ones.
func AtomToken(sym string) Token { return Token{Kind: KindAtom, Sym: sym} }

// MoleculeToken returns a Molecule token holding m.
func MoleculeToken(m *molecule.Molecule) Token { return Token{Kind: KindMolecule, Mol: m} }

// String renders a token compactly: operands by their value, operators by
// a one character symbol. Coefficient prints as "*" and Subscript as "^"
// even though neither has a source character of its own.
func (t Token) String() string {
	switch t.Kind {
	case KindNumber:
		return strconv.Itoa(t.Num)
	case KindAtom:
		return t.Sym
	case KindMolecule:
		return "[" + t.Mol.String() + "]"
	case KindGroupLeft:
		return "("
	case KindGroupRight:
		return ")"
	case KindAdd:
		return "+"
	case KindSubtract:
		return "-"
	case KindCoefficient:
		return "*"
	case KindSubscript:
		return "^"
	case KindJoin:
		return "&"
	default:
		return t.Kind.String()
	}
}
