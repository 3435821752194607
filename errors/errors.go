// Package errors defines the error taxonomy for dicelang. Every error is a
// plain value a host can inspect; none of them are ever fatal to the host
// process.
package errors

import "fmt"

//LexError represents an unrecognized character in the source text.
type LexError struct {
	Char rune
	Line int
	Col  int
}

func (e LexError) Error() string {
	return fmt.Sprintf("unrecognized character %q at line %d, col %d", e.Char, e.Line, e.Col)
}

//NewLexError creates a new LexError
func NewLexError(char rune, line int, col int) *LexError {
	return &LexError{Char: char, Line: line, Col: col}
}

//SyntaxError represents a token-sequence mismatch found by the parser.
type SyntaxError struct {
	Expected string
	Found    string
	Line     int
	Col      int
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("expected %s but found %q at line %d, col %d", e.Expected, e.Found, e.Line, e.Col)
}

//NewSyntaxError creates a new SyntaxError
func NewSyntaxError(expected string, found string, line int, col int) *SyntaxError {
	return &SyntaxError{Expected: expected, Found: found, Line: line, Col: col}
}

//UnknownFunctionError represents an identifier that is not on the registry
//allow-list. Raised at parse time, before any entropy is consumed.
type UnknownFunctionError struct {
	Name string
	Line int
	Col  int
}

func (e UnknownFunctionError) Error() string {
	return fmt.Sprintf("unknown function %q at line %d, col %d", e.Name, e.Line, e.Col)
}

//NewUnknownFunctionError creates a new UnknownFunctionError
func NewUnknownFunctionError(name string, line int, col int) *UnknownFunctionError {
	return &UnknownFunctionError{Name: name, Line: line, Col: col}
}

//ArityError represents a function call with the wrong number of arguments.
type ArityError struct {
	Name     string
	Expected int
	Got      int
}

func (e ArityError) Error() string {
	return fmt.Sprintf("%s takes %d argument(s), got %d", e.Name, e.Expected, e.Got)
}

//NewArityError creates a new ArityError
func NewArityError(name string, expected int, got int) *ArityError {
	return &ArityError{Name: name, Expected: expected, Got: got}
}

//DiceTermError represents a structurally invalid dice term: a non-positive
//count or sides, an inverted range, or a pool threshold outside [2,10].
type DiceTermError struct {
	Reason string
	Line   int
	Col    int
}

func (e DiceTermError) Error() string {
	return e.Reason
}

//NewDiceTermError creates a new DiceTermError
func NewDiceTermError(reason string, line int, col int) *DiceTermError {
	return &DiceTermError{Reason: reason, Line: line, Col: col}
}

//BudgetExceededError represents a dice term or evaluation that asked for
//more dice or sides than the Budget allows.
type BudgetExceededError struct {
	Resource  string
	Limit     int64
	Requested int64
}

func (e BudgetExceededError) Error() string {
	return fmt.Sprintf("%s budget exceeded: requested %d, limit %d", e.Resource, e.Requested, e.Limit)
}

//NewBudgetExceededError creates a new BudgetExceededError
func NewBudgetExceededError(resource string, limit int64, requested int64) *BudgetExceededError {
	return &BudgetExceededError{Resource: resource, Limit: limit, Requested: requested}
}

//DepthExceededError represents an expression nested deeper than the Budget's
//AST depth limit. Detected while parsing, not via a stack overflow.
type DepthExceededError struct {
	MaxDepth int
}

func (e DepthExceededError) Error() string {
	return fmt.Sprintf("expression nested deeper than %d levels", e.MaxDepth)
}

//NewDepthExceededError creates a new DepthExceededError
func NewDepthExceededError(maxDepth int) *DepthExceededError {
	return &DepthExceededError{MaxDepth: maxDepth}
}

//DivisionByZeroError represents division or modulo with a zero divisor.
type DivisionByZeroError struct {
	Op string
}

func (e DivisionByZeroError) Error() string {
	return fmt.Sprintf("division by zero in %q", e.Op)
}

//NewDivisionByZeroError creates a new DivisionByZeroError
func NewDivisionByZeroError(op string) *DivisionByZeroError {
	return &DivisionByZeroError{Op: op}
}

//TypeError represents an operand outside an operator's domain, such as a
//bitwise operation on a non-integral value or sqrt of a negative number.
type TypeError struct {
	Op      string
	Operand float64
}

func (e TypeError) Error() string {
	return fmt.Sprintf("%s is not defined for %v", e.Op, e.Operand)
}

//NewTypeError creates a new TypeError
func NewTypeError(op string, operand float64) *TypeError {
	return &TypeError{Op: op, Operand: operand}
}
