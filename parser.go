package dicelang

import (
	"strconv"

	"github.com/aasmall/dicelang/errors"
)

//Parser implements a top down operator precedence parser
//(https://tdop.github.io/) over a token sequence, producing a typed AST.
type Parser struct {
	tokens []Token
	pos    int
	budget Budget
	depth  int
}

//NewParser creates a Parser over an already-tokenized expression.
func NewParser(tokens []Token, budget Budget) *Parser {
	return &Parser{tokens: tokens, budget: budget}
}

//Parse tokenizes nothing itself; it consumes the token sequence and returns
//the root of the AST, or the first error found. A complete expression must
//use every token up to EOF.
func Parse(tokens []Token, budget Budget) (Node, error) {
	p := NewParser(tokens, budget)
	root, err := p.expression(0)
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Kind != TokenEOF {
		return nil, errors.NewSyntaxError("end of expression", tok.Text, tok.Line, tok.Col)
	}
	return root, nil
}

func (parse *Parser) expression(rbp int) (Node, error) {
	if err := parse.descend(); err != nil {
		return nil, err
	}
	defer parse.ascend()

	t := parse.next()
	left, err := parse.nud(t)
	if err != nil {
		return nil, err
	}
	for {
		t := parse.peek()
		bp := infixBindingPower(t)
		if bp <= rbp {
			return left, nil
		}
		parse.next()
		left, err = parse.led(t, left)
		if err != nil {
			return nil, err
		}
	}
}

// nud handles tokens in prefix position: operands and prefix operators.
func (parse *Parser) nud(t Token) (Node, error) {
	switch t.Kind {
	case TokenNumber:
		value, err := strconv.ParseFloat(t.Text, 64)
		if err != nil {
			return nil, errors.NewSyntaxError("a number", t.Text, t.Line, t.Col)
		}
		return &NumberLiteral{Value: value, Line: t.Line, Col: t.Col}, nil
	case TokenDice:
		return newDiceRoll(t, parse.budget)
	case TokenLParen:
		inner, err := parse.expression(0)
		if err != nil {
			return nil, err
		}
		if err := parse.expect(TokenRParen, `")"`); err != nil {
			return nil, err
		}
		return inner, nil
	case TokenOperator:
		if unaryOperators[t.Text] {
			operand, err := parse.expression(bpUnary)
			if err != nil {
				return nil, err
			}
			return &UnaryOp{Op: t.Text, Operand: operand, Line: t.Line, Col: t.Col}, nil
		}
	case TokenIdent:
		return parse.call(t)
	}
	return nil, errors.NewSyntaxError("an operand", t.Text, t.Line, t.Col)
}

// led handles tokens in infix position.
func (parse *Parser) led(t Token, left Node) (Node, error) {
	bp := infixBindingPower(t)
	if bp == 0 {
		return nil, errors.NewSyntaxError("an operator", t.Text, t.Line, t.Col)
	}
	if rightAssociative[t.Text] {
		bp--
	}
	right, err := parse.expression(bp)
	if err != nil {
		return nil, err
	}
	return &BinaryOp{Op: t.Text, Left: left, Right: right, Line: t.Line, Col: t.Col}, nil
}

// call parses a function invocation. The name must be on the registry
// allow-list; anything else fails here, before any die is rolled.
func (parse *Parser) call(name Token) (Node, error) {
	if _, ok := LookupFunction(name.Text); !ok {
		return nil, errors.NewUnknownFunctionError(name.Text, name.Line, name.Col)
	}
	if err := parse.expect(TokenLParen, `"("`); err != nil {
		return nil, err
	}
	fc := &FunctionCall{Name: name.Text, Line: name.Line, Col: name.Col}
	if parse.peek().Kind == TokenRParen {
		parse.next()
		return fc, nil
	}
	for {
		arg, err := parse.expression(0)
		if err != nil {
			return nil, err
		}
		fc.Args = append(fc.Args, arg)
		tok := parse.next()
		switch tok.Kind {
		case TokenComma:
			continue
		case TokenRParen:
			return fc, nil
		default:
			return nil, errors.NewSyntaxError(`"," or ")"`, tok.Text, tok.Line, tok.Col)
		}
	}
}

func (parse *Parser) next() Token {
	tok := parse.tokens[parse.pos]
	if tok.Kind != TokenEOF {
		parse.pos++
	}
	return tok
}

func (parse *Parser) peek() Token {
	return parse.tokens[parse.pos]
}

func (parse *Parser) expect(kind TokenKind, expected string) error {
	tok := parse.next()
	if tok.Kind != kind {
		return errors.NewSyntaxError(expected, tok.Text, tok.Line, tok.Col)
	}
	return nil
}

// descend tracks nesting depth eagerly so adversarial input is rejected with
// an error instead of exhausting the call stack.
func (parse *Parser) descend() error {
	parse.depth++
	if parse.depth > parse.budget.MaxASTDepth {
		return errors.NewDepthExceededError(parse.budget.MaxASTDepth)
	}
	return nil
}

func (parse *Parser) ascend() {
	parse.depth--
}

func infixBindingPower(t Token) int {
	if t.Kind != TokenOperator {
		return 0
	}
	return bindingPowers[t.Text]
}
