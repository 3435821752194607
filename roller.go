// Package dicelang evaluates dice-rolling expressions mixed with arithmetic,
// bitwise, and a closed set of math function calls, producing a numeric
// result plus an auditable trace of every random draw.
//
// The language accepts numbers, + - * / // % **, bitwise & | ^ ~ << >>,
// comparisons, and/or, parentheses, registry functions like abs() and min(),
// and the dice terms XdY, XdY{lo,hi}, Xd{lo,hi}, and XwodY. There is no
// general code execution path: identifiers must name a registry function and
// all work is bounded by a caller-supplied Budget. Unary minus binds tighter
// than **, so -2**2 is 4.
package dicelang

import "go.uber.org/zap"

//Roll evaluates one expression: lex, parse, evaluate, in a strict sequential
//pipeline. It holds no state between calls, so hosts may run many Rolls
//concurrently as long as each call gets its own Source.
func Roll(expression string, budget Budget, src Source) (*EvalResult, error) {
	tokens, err := Tokenize(expression)
	if err != nil {
		return nil, err
	}
	root, err := Parse(tokens, budget)
	if err != nil {
		return nil, err
	}
	return Evaluate(root, src, budget)
}

//Roller binds a Source, a Budget, and a logger so hosts can roll repeatedly
//without re-plumbing them. Every successful roll is logged at debug level
//with its expression, value, and draw trace.
type Roller struct {
	src    Source
	budget Budget
	logger *zap.Logger
}

//NewRoller creates a Roller. Pass zap.NewNop() to disable logging.
func NewRoller(src Source, budget Budget, logger *zap.Logger) *Roller {
	return &Roller{src: src, budget: budget, logger: logger}
}

//Roll evaluates expression and logs the outcome.
func (r *Roller) Roll(expression string) (*EvalResult, error) {
	res, err := Roll(expression, r.budget, r.src)
	if err != nil {
		r.logger.Debug("roll failed",
			zap.String("expression", expression),
			zap.Error(err),
		)
		return nil, err
	}
	fields := []zap.Field{
		zap.String("expression", expression),
		zap.Float64("value", res.Value),
	}
	for _, ev := range res.Events {
		fields = append(fields, zap.Int64s(ev.Label, ev.Raw))
	}
	r.logger.Debug("roll", fields...)
	return res, nil
}
