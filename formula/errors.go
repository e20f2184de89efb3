package formula

import (
	"errors"
	"fmt"
)

var (
	errEmptyInput     = errors.New("nothing to evaluate")
	errMissingOperand = errors.New("operator is missing an operand")
	errUnusedOperands = errors.New("not all operands are involved in operations")
)

// MalformedFormulaError is a lexical or structural error in a raw formula:
// an unknown character, an unmatched bracket, or a number where the
// grammar forbids one. Index is the rune offset of the offending
// character; for an unclosed bracket it is the end of the input.
type MalformedFormulaError struct {
	Message string
	Index   int
}

func (e *MalformedFormulaError) Error() string {
	return fmt.Sprintf("malformed formula at %d: %s", e.Index, e.Message)
}

func malformed(index int, format string, args ...interface{}) *MalformedFormulaError {
	return &MalformedFormulaError{Message: fmt.Sprintf(format, args...), Index: index}
}

// InvalidOperationError reports an operator applied to operand kinds it
// does not accept. Both operands are kept so the caller can build a
// precise diagnostic.
type InvalidOperationError struct {
	Op  Token
	Lhs Token
	Rhs Token
}

func (e *InvalidOperationError) Error() string {
	return fmt.Sprintf("cannot apply %s to %s and %s", e.Op.Kind, e.Lhs.Kind, e.Rhs.Kind)
}
