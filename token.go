package dicelang

//TokenKind discriminates the token classes produced by the Lexer.
type TokenKind int

const (
	//TokenNumber is a numeric literal, integer or decimal.
	TokenNumber TokenKind = iota
	//TokenIdent is an identifier, only valid as a registry function name.
	TokenIdent
	//TokenDice is a complete dice term such as 3d6, 2d{-5,-1}, or 4wod8.
	TokenDice
	//TokenOperator is an arithmetic, bitwise, comparison, or boolean operator.
	TokenOperator
	//TokenLParen is "("
	TokenLParen
	//TokenRParen is ")"
	TokenRParen
	//TokenComma is ","
	TokenComma
	//TokenEOF marks the end of the token stream.
	TokenEOF
)

//DiceGroups holds the raw captured groups of a dice term token. The
//Dice-Term Recognizer converts them into a typed DiceRoll node.
type DiceGroups struct {
	Count     string
	Sides     string
	Low       string
	High      string
	Threshold string
	HasRange  bool
	Pool      bool
}

//Token is one lexed unit of source text. Immutable once produced.
type Token struct {
	Kind TokenKind
	Text string
	Line int
	Col  int
	Dice *DiceGroups
}
