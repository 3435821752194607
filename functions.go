package dicelang

import (
	"math"

	"github.com/aasmall/dicelang/errors"
)

//Function is one entry in the closed allow-list of callable math functions.
//Implementations are pure: they may only read their numeric arguments.
type Function struct {
	Arity int
	Fn    func(args []float64) (float64, error)
}

// The registry is populated once and never mutated afterwards, so concurrent
// evaluations can read it without locking.
var functions = map[string]Function{
	"abs":   {1, func(a []float64) (float64, error) { return math.Abs(a[0]), nil }},
	"floor": {1, func(a []float64) (float64, error) { return math.Floor(a[0]), nil }},
	"ceil":  {1, func(a []float64) (float64, error) { return math.Ceil(a[0]), nil }},
	"round": {1, func(a []float64) (float64, error) { return math.Round(a[0]), nil }},
	"sqrt": {1, func(a []float64) (float64, error) {
		if a[0] < 0 {
			return 0, errors.NewTypeError("sqrt", a[0])
		}
		return math.Sqrt(a[0]), nil
	}},
	"min": {2, func(a []float64) (float64, error) { return math.Min(a[0], a[1]), nil }},
	"max": {2, func(a []float64) (float64, error) { return math.Max(a[0], a[1]), nil }},
	"pow": {2, func(a []float64) (float64, error) { return checkReal("pow", math.Pow(a[0], a[1]), a[0]) }},
	"exp": {1, func(a []float64) (float64, error) { return checkReal("exp", math.Exp(a[0]), a[0]) }},
	"log": {1, func(a []float64) (float64, error) {
		if a[0] <= 0 {
			return 0, errors.NewTypeError("log", a[0])
		}
		return math.Log(a[0]), nil
	}},
	"sin": {1, func(a []float64) (float64, error) { return math.Sin(a[0]), nil }},
	"cos": {1, func(a []float64) (float64, error) { return math.Cos(a[0]), nil }},
	"tan": {1, func(a []float64) (float64, error) { return checkReal("tan", math.Tan(a[0]), a[0]) }},
}

//LookupFunction returns the registry entry for name, if it exists.
func LookupFunction(name string) (Function, bool) {
	fn, ok := functions[name]
	return fn, ok
}

// checkReal guards against results that are not well-defined real numbers.
func checkReal(op string, v float64, operand float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.NewTypeError(op, operand)
	}
	return v, nil
}

// Binding powers, lowest to highest. Unary operators and calls bind tighter
// than any infix operator.
const (
	bpOr      = 10
	bpAnd     = 15
	bpCompare = 20
	bpBitOr   = 25
	bpBitXor  = 30
	bpBitAnd  = 35
	bpShift   = 40
	bpSum     = 45
	bpProduct = 50
	bpPower   = 60
	bpUnary   = 70
)

var bindingPowers = map[string]int{
	"or":  bpOr,
	"and": bpAnd,
	"==":  bpCompare, "!=": bpCompare,
	"<": bpCompare, "<=": bpCompare, ">": bpCompare, ">=": bpCompare,
	"|":  bpBitOr,
	"^":  bpBitXor,
	"&":  bpBitAnd,
	"<<": bpShift, ">>": bpShift,
	"+": bpSum, "-": bpSum,
	"*": bpProduct, "/": bpProduct, "//": bpProduct, "%": bpProduct,
	"**": bpPower,
}

// rightAssociative operators parse their right side at one power lower, so
// chained towers like 2**3**2 group right to left.
var rightAssociative = map[string]bool{
	"**": true,
}

var unaryOperators = map[string]bool{
	"-": true, "+": true, "~": true,
}
