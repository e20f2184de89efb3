// Package molecule implements the atom multiset that formula evaluation
// produces: a mapping from atom symbol to signed frequency with multiset
// arithmetic over it.
package molecule

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// ValidSymbol reports whether s is a well formed atom symbol: exactly one
// uppercase letter, optionally followed by one lowercase letter.
func ValidSymbol(s string) bool {
	runes := []rune(s)
	switch len(runes) {
	case 1:
		return unicode.IsUpper(runes[0])
	case 2:
		return unicode.IsUpper(runes[0]) && unicode.IsLower(runes[1])
	default:
		return false
	}
}

// Molecule is a multiset of atoms: a mapping from atom symbol to a signed
// frequency. A frequency of zero is never stored; any operation that would
// produce one removes the entry instead. Iteration and rendering order is
// always sorted by atom symbol.
type Molecule struct {
	freqs map[string]int
}

// Pair is one (atom, frequency) entry of a molecule.
type Pair struct {
	Atom  string
	Count int
}

// New returns an empty molecule.
func New() *Molecule {
	return &Molecule{freqs: make(map[string]int)}
}

// FromAtom builds a molecule holding a single atom. The frequency defaults
// to 1 when not given.
func FromAtom(atom string, freq ...int) (*Molecule, error) {
	n := 1
	if len(freq) > 0 {
		n = freq[0]
	}
	m := New()
	if err := m.Set(atom, n); err != nil {
		return nil, err
	}
	return m, nil
}

// FromPairs builds a molecule from a sequence of (atom, frequency) pairs.
// Repeated atoms accumulate.
func FromPairs(pairs []Pair) (*Molecule, error) {
	m := New()
	for _, p := range pairs {
		if err := m.AddAtomMut(p.Atom, p.Count); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Copy returns an independent copy of m.
func (m *Molecule) Copy() *Molecule {
	c := &Molecule{freqs: make(map[string]int, len(m.freqs))}
	for atom, n := range m.freqs {
		c.freqs[atom] = n
	}
	return c
}

// apply shifts the frequency of atom by delta, dropping the entry when it
// lands on zero. The symbol must already be validated.
func (m *Molecule) apply(atom string, delta int) {
	if m.freqs == nil {
		m.freqs = make(map[string]int)
	}
	if next := m.freqs[atom] + delta; next == 0 {
		delete(m.freqs, atom)
	} else {
		m.freqs[atom] = next
	}
}

// Set assigns the frequency for atom. Setting zero removes the entry.
func (m *Molecule) Set(atom string, n int) error {
	if !ValidSymbol(atom) {
		return fmt.Errorf("invalid atom symbol %q", atom)
	}
	if m.freqs == nil {
		m.freqs = make(map[string]int)
	}
	if n == 0 {
		delete(m.freqs, atom)
		return nil
	}
	m.freqs[atom] = n
	return nil
}

// Get returns the frequency of atom, zero when absent.
func (m *Molecule) Get(atom string) int { return m.freqs[atom] }

// Has reports whether atom has an entry.
func (m *Molecule) Has(atom string) bool {
	_, ok := m.freqs[atom]
	return ok
}

// Delete removes the entry for atom if present.
func (m *Molecule) Delete(atom string) { delete(m.freqs, atom) }

// Len returns the number of distinct atoms.
func (m *Molecule) Len() int { return len(m.freqs) }

// Atoms returns the atom symbols in sorted order.
func (m *Molecule) Atoms() []string {
	atoms := make([]string, 0, len(m.freqs))
	for atom := range m.freqs {
		atoms = append(atoms, atom)
	}
	sort.Strings(atoms)
	return atoms
}

// Pairs returns the entries of m sorted by atom symbol.
func (m *Molecule) Pairs() []Pair {
	pairs := make([]Pair, 0, len(m.freqs))
	for _, atom := range m.Atoms() {
		pairs = append(pairs, Pair{Atom: atom, Count: m.freqs[atom]})
	}
	return pairs
}

// Equal reports whether m and other hold the same atoms at the same
// frequencies.
func (m *Molecule) Equal(other *Molecule) bool {
	if len(m.freqs) != len(other.freqs) {
		return false
	}
	for atom, n := range m.freqs {
		if other.freqs[atom] != n {
			return false
		}
	}
	return true
}

// String renders the molecule in sorted atom order, omitting frequency 1,
// so {H:2 O:1} prints as "H2O".
func (m *Molecule) String() string {
	var b strings.Builder
	for _, atom := range m.Atoms() {
		b.WriteString(atom)
		if n := m.freqs[atom]; n != 1 {
			b.WriteString(strconv.Itoa(n))
		}
	}
	return b.String()
}

// AddAtomMut adds freq occurrences of atom in place, defaulting to 1.
func (m *Molecule) AddAtomMut(atom string, freq ...int) error {
	n := 1
	if len(freq) > 0 {
		n = freq[0]
	}
	if !ValidSymbol(atom) {
		return fmt.Errorf("invalid atom symbol %q", atom)
	}
	m.apply(atom, n)
	return nil
}

// AddAtom is the non-mutating form of AddAtomMut.
func (m *Molecule) AddAtom(atom string, freq ...int) (*Molecule, error) {
	c := m.Copy()
	if err := c.AddAtomMut(atom, freq...); err != nil {
		return nil, err
	}
	return c, nil
}

// SubtractAtomMut removes freq occurrences of atom in place, defaulting
// to 1.
func (m *Molecule) SubtractAtomMut(atom string, freq ...int) error {
	n := 1
	if len(freq) > 0 {
		n = freq[0]
	}
	return m.AddAtomMut(atom, -n)
}

// SubtractAtom is the non-mutating form of SubtractAtomMut.
func (m *Molecule) SubtractAtom(atom string, freq ...int) (*Molecule, error) {
	c := m.Copy()
	if err := c.SubtractAtomMut(atom, freq...); err != nil {
		return nil, err
	}
	return c, nil
}

// AddMut adds every frequency of other to m in place.
func (m *Molecule) AddMut(other *Molecule) {
	for atom, n := range other.freqs {
		m.apply(atom, n)
	}
}

// Add is the non-mutating form of AddMut.
func (m *Molecule) Add(other *Molecule) *Molecule {
	c := m.Copy()
	c.AddMut(other)
	return c
}

// SubtractMut subtracts every frequency of other from m in place.
func (m *Molecule) SubtractMut(other *Molecule) {
	for atom, n := range other.freqs {
		m.apply(atom, -n)
	}
}

// Subtract is the non-mutating form of SubtractMut.
func (m *Molecule) Subtract(other *Molecule) *Molecule {
	c := m.Copy()
	c.SubtractMut(other)
	return c
}

// MultiplyMut scales every frequency by n in place. Multiplying by zero
// empties the molecule.
func (m *Molecule) MultiplyMut(n int) {
	if n == 0 {
		m.freqs = make(map[string]int)
		return
	}
	for atom, f := range m.freqs {
		m.freqs[atom] = f * n
	}
}

// Multiply is the non-mutating form of MultiplyMut.
func (m *Molecule) Multiply(n int) *Molecule {
	c := m.Copy()
	c.MultiplyMut(n)
	return c
}

// NegateMut flips the sign of every frequency in place.
func (m *Molecule) NegateMut() { m.MultiplyMut(-1) }

// Negate is the non-mutating form of NegateMut.
func (m *Molecule) Negate() *Molecule {
	c := m.Copy()
	c.NegateMut()
	return c
}
