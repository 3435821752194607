package dicelang

import (
	"fmt"
	"math"

	"github.com/aasmall/dicelang/errors"
)

// comparisons of values closer than this are flagged as float noise
const equalityNoise = 1e-9

//EvalResult is the complete outcome of one evaluation: the final value, one
//RollEvent per dice term in source order, and any informational warnings.
//Immutable after construction; an evaluation returns either a full result or
//an error, never both.
type EvalResult struct {
	Value    float64
	Events   []RollEvent
	Warnings []string
}

//Evaluate walks the AST post-order, drawing entropy from src and charging
//work against budget. The walk is synchronous and single threaded; all
//bounded by the already depth-limited AST and the dice budget.
func Evaluate(root Node, src Source, budget Budget) (*EvalResult, error) {
	state := &evalState{src: src, budget: budget}
	value, err := state.eval(root)
	if err != nil {
		return nil, err
	}
	return &EvalResult{Value: value, Events: state.events, Warnings: state.warnings}, nil
}

type evalState struct {
	src      Source
	budget   Budget
	events   []RollEvent
	warnings []string
	rolled   int64
}

func (st *evalState) eval(n Node) (float64, error) {
	switch t := n.(type) {
	case *NumberLiteral:
		return t.Value, nil
	case *DiceRoll:
		// fail before drawing, so an over-budget group consumes no entropy
		st.rolled += t.Count
		if st.rolled > st.budget.MaxTotalDice {
			return 0, errors.NewBudgetExceededError("total dice", st.budget.MaxTotalDice, st.rolled)
		}
		ev := t.roll(st.src)
		st.events = append(st.events, ev)
		return ev.Subtotal, nil
	case *FunctionCall:
		return st.evalCall(t)
	case *UnaryOp:
		return st.evalUnary(t)
	case *BinaryOp:
		return st.evalBinary(t)
	}
	return 0, fmt.Errorf("unsupported node %T", n)
}

func (st *evalState) evalCall(t *FunctionCall) (float64, error) {
	fn, ok := LookupFunction(t.Name)
	if !ok {
		return 0, errors.NewUnknownFunctionError(t.Name, t.Line, t.Col)
	}
	if len(t.Args) != fn.Arity {
		return 0, errors.NewArityError(t.Name, fn.Arity, len(t.Args))
	}
	args := make([]float64, 0, len(t.Args))
	for _, a := range t.Args {
		v, err := st.eval(a)
		if err != nil {
			return 0, err
		}
		args = append(args, v)
	}
	return fn.Fn(args)
}

func (st *evalState) evalUnary(t *UnaryOp) (float64, error) {
	v, err := st.eval(t.Operand)
	if err != nil {
		return 0, err
	}
	switch t.Op {
	case "-":
		return -v, nil
	case "+":
		return v, nil
	case "~":
		n, err := toInt64("~", v)
		if err != nil {
			return 0, err
		}
		return float64(^n), nil
	}
	return 0, fmt.Errorf("unsupported unary operator %q", t.Op)
}

func (st *evalState) evalBinary(t *BinaryOp) (float64, error) {
	left, err := st.eval(t.Left)
	if err != nil {
		return 0, err
	}
	right, err := st.eval(t.Right)
	if err != nil {
		return 0, err
	}

	switch t.Op {
	case "+":
		return left + right, nil
	case "-":
		return left - right, nil
	case "*":
		return left * right, nil
	case "/":
		if right == 0 {
			return 0, errors.NewDivisionByZeroError("/")
		}
		return left / right, nil
	case "//":
		if right == 0 {
			return 0, errors.NewDivisionByZeroError("//")
		}
		return math.Floor(left / right), nil
	case "%":
		if right == 0 {
			return 0, errors.NewDivisionByZeroError("%")
		}
		return math.Mod(left, right), nil
	case "**":
		if left == 0 && right < 0 {
			return 0, errors.NewDivisionByZeroError("**")
		}
		return checkReal("**", math.Pow(left, right), left)
	case "&", "|", "^", "<<", ">>":
		return st.evalBitwise(t.Op, left, right)
	case "==", "!=", "<", "<=", ">", ">=":
		return st.evalComparison(t.Op, left, right), nil
	case "and":
		return boolValue(truthy(left) && truthy(right)), nil
	case "or":
		return boolValue(truthy(left) || truthy(right)), nil
	}
	return 0, fmt.Errorf("unsupported operator %q", t.Op)
}

// evalBitwise requires integral operands; that cannot always be known at
// parse time (e.g. the result of a division), so it is checked here.
func (st *evalState) evalBitwise(op string, left, right float64) (float64, error) {
	l, err := toInt64(op, left)
	if err != nil {
		return 0, err
	}
	r, err := toInt64(op, right)
	if err != nil {
		return 0, err
	}
	switch op {
	case "&":
		return float64(l & r), nil
	case "|":
		return float64(l | r), nil
	case "^":
		return float64(l ^ r), nil
	case "<<", ">>":
		if r < 0 || r >= 64 {
			return 0, errors.NewTypeError(op, right)
		}
		if op == "<<" {
			return float64(l << uint(r)), nil
		}
		return float64(l >> uint(r)), nil
	}
	return 0, fmt.Errorf("unsupported bitwise operator %q", op)
}

func (st *evalState) evalComparison(op string, left, right float64) float64 {
	if (op == "==" || op == "!=") && left != right && math.Abs(left-right) < equalityNoise {
		st.warnings = append(st.warnings,
			fmt.Sprintf("comparing %v %s %v: values differ only by float rounding", left, op, right))
	}
	switch op {
	case "==":
		return boolValue(left == right)
	case "!=":
		return boolValue(left != right)
	case "<":
		return boolValue(left < right)
	case "<=":
		return boolValue(left <= right)
	case ">":
		return boolValue(left > right)
	case ">=":
		return boolValue(left >= right)
	}
	return 0
}

// toInt64 converts an operand for a bitwise operator, rejecting non-integral
// values and values too large to round-trip through int64.
func toInt64(op string, v float64) (int64, error) {
	if v != math.Trunc(v) || math.Abs(v) > 1<<62 {
		return 0, errors.NewTypeError(op, v)
	}
	return int64(v), nil
}

func truthy(v float64) bool {
	return v != 0
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
