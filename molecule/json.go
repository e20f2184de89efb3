package molecule

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON renders the molecule as a JSON object of atom to frequency,
// e.g. {"H":2,"O":1}. Keys come out sorted because encoding/json sorts map
// keys.
func (m *Molecule) MarshalJSON() ([]byte, error) {
	if m.freqs == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m.freqs)
}

// UnmarshalJSON parses a JSON object of atom to frequency. Invalid atom
// symbols and explicit zero frequencies are rejected rather than trimmed.
func (m *Molecule) UnmarshalJSON(data []byte) error {
	var raw map[string]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	freqs := make(map[string]int, len(raw))
	for atom, n := range raw {
		if !ValidSymbol(atom) {
			return fmt.Errorf("invalid atom symbol %q", atom)
		}
		if n == 0 {
			return fmt.Errorf("zero frequency for atom %q", atom)
		}
		freqs[atom] = n
	}
	m.freqs = freqs
	return nil
}
