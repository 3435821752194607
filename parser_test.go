package dicelang

import (
	stderrors "errors"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/aasmall/dicelang/errors"
)

func mustParse(t *testing.T, in string) Node {
	t.Helper()
	tokens, err := Tokenize(in)
	if err != nil {
		t.Fatalf("Tokenize(%q) error = %v", in, err)
	}
	root, err := Parse(tokens, DefaultBudget())
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", in, err)
	}
	return root
}

func parseErr(t *testing.T, in string, budget Budget) error {
	t.Helper()
	tokens, err := Tokenize(in)
	if err != nil {
		t.Fatalf("Tokenize(%q) error = %v", in, err)
	}
	_, err = Parse(tokens, budget)
	if err == nil {
		t.Fatalf("Parse(%q) succeeded, want error", in)
	}
	return err
}

func TestParsePrecedence(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		check func(Node) bool
	}{
		{name: "product binds tighter than sum",
			in: "1+2*3",
			check: func(n Node) bool {
				add, ok := n.(*BinaryOp)
				if !ok || add.Op != "+" {
					return false
				}
				mul, ok := add.Right.(*BinaryOp)
				return ok && mul.Op == "*"
			}},
		{name: "power is right associative",
			in: "2**3**2",
			check: func(n Node) bool {
				top, ok := n.(*BinaryOp)
				if !ok || top.Op != "**" {
					return false
				}
				if _, isNum := top.Left.(*NumberLiteral); !isNum {
					return false
				}
				inner, ok := top.Right.(*BinaryOp)
				return ok && inner.Op == "**"
			}},
		{name: "sum is left associative",
			in: "1+2-3",
			check: func(n Node) bool {
				sub, ok := n.(*BinaryOp)
				if !ok || sub.Op != "-" {
					return false
				}
				add, ok := sub.Left.(*BinaryOp)
				return ok && add.Op == "+"
			}},
		{name: "parentheses reset precedence",
			in: "(1+2)*3",
			check: func(n Node) bool {
				mul, ok := n.(*BinaryOp)
				if !ok || mul.Op != "*" {
					return false
				}
				add, ok := mul.Left.(*BinaryOp)
				return ok && add.Op == "+"
			}},
		{name: "shifts bind looser than sum",
			in: "1<<2+3",
			check: func(n Node) bool {
				shift, ok := n.(*BinaryOp)
				if !ok || shift.Op != "<<" {
					return false
				}
				add, ok := shift.Right.(*BinaryOp)
				return ok && add.Op == "+"
			}},
		{name: "unary minus binds tighter than power",
			in: "-2**2",
			check: func(n Node) bool {
				pow, ok := n.(*BinaryOp)
				if !ok || pow.Op != "**" {
					return false
				}
				_, ok = pow.Left.(*UnaryOp)
				return ok
			}},
		{name: "bitwise ladder",
			in: "1|2^3&4",
			check: func(n Node) bool {
				or, ok := n.(*BinaryOp)
				if !ok || or.Op != "|" {
					return false
				}
				xor, ok := or.Right.(*BinaryOp)
				if !ok || xor.Op != "^" {
					return false
				}
				and, ok := xor.Right.(*BinaryOp)
				return ok && and.Op == "&"
			}},
		{name: "dice accepted as operands",
			in: "1d20 + min(3d6, 10)",
			check: func(n Node) bool {
				add, ok := n.(*BinaryOp)
				if !ok || add.Op != "+" {
					return false
				}
				_, diceOK := add.Left.(*DiceRoll)
				call, callOK := add.Right.(*FunctionCall)
				return diceOK && callOK && call.Name == "min" && len(call.Args) == 2
			}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := mustParse(t, tt.in)
			if !tt.check(root) {
				t.Errorf("Parse(%q) produced unexpected tree:\n%s", tt.in, spew.Sdump(root))
			}
		})
	}
}

func TestParseSyntaxErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "missing operand", in: "1+"},
		{name: "unmatched paren", in: "(1+2"},
		{name: "trailing tokens", in: "1 2"},
		{name: "bare close paren", in: ")"},
		{name: "dangling comma in args", in: "min(1,)"},
		{name: "call without parens", in: "min 3"},
		{name: "operator in prefix position", in: "*3"},
		{name: "empty input", in: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parseErr(t, tt.in, DefaultBudget())
			var synErr *errors.SyntaxError
			if !stderrors.As(err, &synErr) {
				t.Errorf("Parse(%q) error = %v, want SyntaxError", tt.in, err)
			}
		})
	}
}

func TestParseUnknownFunction(t *testing.T) {
	err := parseErr(t, "unknown_fn(1)", DefaultBudget())
	var unknownErr *errors.UnknownFunctionError
	if !stderrors.As(err, &unknownErr) {
		t.Fatalf("error = %v, want UnknownFunctionError", err)
	}
	if unknownErr.Name != "unknown_fn" {
		t.Errorf("UnknownFunctionError.Name = %q, want %q", unknownErr.Name, "unknown_fn")
	}
}

func TestParseDepthBudget(t *testing.T) {
	budget := DefaultBudget()
	budget.MaxASTDepth = 5
	err := parseErr(t, "((((((1))))))", budget)
	var depthErr *errors.DepthExceededError
	if !stderrors.As(err, &depthErr) {
		t.Fatalf("error = %v, want DepthExceededError", err)
	}

	// the same budget still parses shallow expressions
	tokens, _ := Tokenize("(1)+2")
	if _, err := Parse(tokens, budget); err != nil {
		t.Errorf("Parse((1)+2) error = %v", err)
	}
}

func TestParseDiceBudget(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "too many dice", in: "2000d6"},
		{name: "too many sides", in: "1d200000"},
		{name: "range magnitude over budget", in: "1d{-200000,1}"},
		{name: "most negative low bound", in: "1d{-9223372036854775808,-1}"},
		{name: "most negative degenerate range", in: "1d{-9223372036854775808,-9223372036854775808}"},
		{name: "most positive high bound", in: "1d{1,9223372036854775807}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parseErr(t, tt.in, DefaultBudget())
			var budgetErr *errors.BudgetExceededError
			if !stderrors.As(err, &budgetErr) {
				t.Errorf("Parse(%q) error = %v, want BudgetExceededError", tt.in, err)
			}
		})
	}
}

func TestParseDiceTermErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "zero dice", in: "0d6"},
		{name: "zero sides", in: "1d0"},
		{name: "inverted range", in: "3d{5,1}"},
		{name: "threshold too high", in: "2wod11"},
		{name: "threshold too low", in: "2wod1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parseErr(t, tt.in, DefaultBudget())
			var termErr *errors.DiceTermError
			if !stderrors.As(err, &termErr) {
				t.Errorf("Parse(%q) error = %v, want DiceTermError", tt.in, err)
			}
		})
	}
}

func benchmarkParse(in string, b *testing.B) {
	tokens, err := Tokenize(in)
	if err != nil {
		b.Fatal(err)
	}
	budget := DefaultBudget()
	for n := 0; n < b.N; n++ {
		Parse(tokens, budget)
	}
}

func BenchmarkParseSimple(b *testing.B) { benchmarkParse("1d20", b) }
func BenchmarkParseCompound(b *testing.B) {
	benchmarkParse("(1d20 + min(3d6, 10)) * 2 ** 3 - 4wod8", b)
}
