package formula_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ssineriz/molparse/formula"
	"github.com/ssineriz/molparse/molecule"
)

func evalMolecule(t *testing.T, src string) *molecule.Molecule {
	t.Helper()
	val, err := formula.Evaluate(src)
	require.NoError(t, err, "formula %q", src)
	require.False(t, val.IsScalar(), "formula %q", src)
	return val.Mol
}

func TestEvaluate(t *testing.T) {
	cases := []struct {
		src  string
		want []molecule.Pair
	}{
		{"H", []molecule.Pair{{Atom: "H", Count: 1}}},
		{"H2O", []molecule.Pair{{Atom: "H", Count: 2}, {Atom: "O", Count: 1}}},
		{"2H2O2", []molecule.Pair{{Atom: "H", Count: 4}, {Atom: "O", Count: 4}}},
		{"(H2O)2", []molecule.Pair{{Atom: "H", Count: 4}, {Atom: "O", Count: 2}}},
		{"NaCl", []molecule.Pair{{Atom: "Na", Count: 1}, {Atom: "Cl", Count: 1}}},
		{"Fe + Cl2", []molecule.Pair{{Atom: "Fe", Count: 1}, {Atom: "Cl", Count: 2}}},
		{"H2 3", []molecule.Pair{{Atom: "H", Count: 6}}},
		{"MgSO4", []molecule.Pair{{Atom: "Mg", Count: 1}, {Atom: "S", Count: 1}, {Atom: "O", Count: 4}}},
		{"A - A", nil},
		{"A2 - A", []molecule.Pair{{Atom: "A", Count: 1}}},
		{"A - A2", []molecule.Pair{{Atom: "A", Count: -1}}},
		{
			"5(H2O)3((FeW)5CrMo2V)6CoMnSi",
			[]molecule.Pair{
				{Atom: "H", Count: 30}, {Atom: "O", Count: 15},
				{Atom: "Fe", Count: 150}, {Atom: "W", Count: 150},
				{Atom: "Cr", Count: 30}, {Atom: "Mo", Count: 60}, {Atom: "V", Count: 30},
				{Atom: "Co", Count: 5}, {Atom: "Mn", Count: 5}, {Atom: "Si", Count: 5},
			},
		},
	}
	for _, c := range cases {
		want, err := molecule.FromPairs(c.want)
		require.NoError(t, err)
		got := evalMolecule(t, c.src)
		require.True(t, want.Equal(got), "formula %q: want %s, got %s", c.src, want, got)
	}
}

func TestEvaluateSubtractBindsLeft(t *testing.T) {
	plain := evalMolecule(t, "A - B - C")
	left := evalMolecule(t, "(A-B)-C")
	right := evalMolecule(t, "A-(B-C)")
	require.True(t, plain.Equal(left))
	require.False(t, plain.Equal(right))
}

func TestEvaluateSpacingEquivalence(t *testing.T) {
	a := evalMolecule(t, "H2 O")
	b := evalMolecule(t, "H 2O")
	require.True(t, a.Equal(b))
}

func TestEvaluateEmpty(t *testing.T) {
	_, err := formula.Evaluate("")
	require.Error(t, err)
	_, err = formula.Evaluate("   ")
	require.Error(t, err)
	_, err = formula.EvaluateTokens(formula.NewTokenSequence())
	require.Error(t, err)
}

func TestEvaluateMissingOperand(t *testing.T) {
	_, err := formula.Evaluate("H +")
	require.Error(t, err)
	_, err = formula.Evaluate("-H")
	require.Error(t, err)
	_, err = formula.Evaluate("5")
	require.Error(t, err)
}

func TestEvaluateUnusedOperands(t *testing.T) {
	seq := formula.NewTokenSequence(
		formula.AtomToken("H"),
		formula.AtomToken("O"),
	)
	_, err := formula.EvaluateTokens(seq)
	require.Error(t, err)
}

func TestEvaluateInvalidOperation(t *testing.T) {
	cases := []struct {
		name string
		seq  *formula.TokenSequence
	}{
		{
			"subscript needs a number on the right",
			formula.NewTokenSequence(
				formula.AtomToken("H"),
				formula.AtomToken("O"),
				formula.Token{Kind: formula.KindSubscript},
			),
		},
		{
			"subscript needs matter on the left",
			formula.NewTokenSequence(
				formula.NumberToken(2),
				formula.NumberToken(3),
				formula.Token{Kind: formula.KindSubscript},
			),
		},
		{
			"coefficient needs a number on the left",
			formula.NewTokenSequence(
				formula.AtomToken("H"),
				formula.AtomToken("O"),
				formula.Token{Kind: formula.KindCoefficient},
			),
		},
		{
			"add needs matter on both sides",
			formula.NewTokenSequence(
				formula.AtomToken("H"),
				formula.NumberToken(2),
				formula.Token{Kind: formula.KindAdd},
			),
		},
		{
			"subtract needs matter on both sides",
			formula.NewTokenSequence(
				formula.NumberToken(2),
				formula.AtomToken("H"),
				formula.Token{Kind: formula.KindSubtract},
			),
		},
	}
	for _, c := range cases {
		_, err := formula.EvaluateTokens(c.seq)
		require.Error(t, err, c.name)
		var opErr *formula.InvalidOperationError
		require.True(t, errors.As(err, &opErr), c.name)
	}
}

func TestEvaluateInvalidOperationPayload(t *testing.T) {
	seq := formula.NewTokenSequence(
		formula.AtomToken("H"),
		formula.AtomToken("O"),
		formula.Token{Kind: formula.KindSubscript},
	)
	_, err := formula.EvaluateTokens(seq)
	var opErr *formula.InvalidOperationError
	require.True(t, errors.As(err, &opErr))
	require.Equal(t, formula.KindSubscript, opErr.Op.Kind)
	require.Equal(t, "H", opErr.Lhs.Sym)
	require.Equal(t, "O", opErr.Rhs.Sym)
}

func TestEvaluateTokensScalar(t *testing.T) {
	val, err := formula.EvaluateTokens(formula.NewTokenSequence(formula.NumberToken(5)))
	require.NoError(t, err)
	require.True(t, val.IsScalar())
	require.Equal(t, 5, val.Num)
}

// A bare atom promotes to a one entry molecule rather than staying a
// token level scalar.
func TestEvaluateBareAtomPromotes(t *testing.T) {
	val, err := formula.Evaluate("Fe")
	require.NoError(t, err)
	require.False(t, val.IsScalar())
	require.Equal(t, 1, val.Mol.Get("Fe"))
}

func TestEvaluateTokensLeavesInputIntact(t *testing.T) {
	rpn, err := formula.ToRPN("2H2O2")
	require.NoError(t, err)
	before := rpn.String()

	first, err := formula.EvaluateTokens(rpn)
	require.NoError(t, err)
	require.Equal(t, before, rpn.String())

	// a second pass over the same sequence gives the same answer
	second, err := formula.EvaluateTokens(rpn)
	require.NoError(t, err)
	require.True(t, first.Mol.Equal(second.Mol))
}

func TestEvaluateTokensAcceptsMoleculeOperands(t *testing.T) {
	water, err := molecule.FromPairs([]molecule.Pair{{Atom: "H", Count: 2}, {Atom: "O", Count: 1}})
	require.NoError(t, err)
	seq := formula.NewTokenSequence(
		formula.MoleculeToken(water),
		formula.NumberToken(3),
		formula.Token{Kind: formula.KindSubscript},
	)
	val, err := formula.EvaluateTokens(seq)
	require.NoError(t, err)
	require.Equal(t, 6, val.Mol.Get("H"))
	// the operand molecule itself is untouched
	require.Equal(t, 2, water.Get("H"))
}

func TestValueJSON(t *testing.T) {
	val, err := formula.Evaluate("H2O")
	require.NoError(t, err)
	data, err := json.Marshal(val)
	require.NoError(t, err)
	require.JSONEq(t, `{"H":2,"O":1}`, string(data))

	scalar, err := formula.EvaluateTokens(formula.NewTokenSequence(formula.NumberToken(7)))
	require.NoError(t, err)
	data, err = json.Marshal(scalar)
	require.NoError(t, err)
	require.Equal(t, "7", string(data))
}
