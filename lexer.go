package dicelang

import (
	"bytes"
	"regexp"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/aasmall/word2number"

	"github.com/aasmall/dicelang/errors"
)

//Lexer steps through a source string and produces tokens.
type Lexer struct {
	source string
	index  int
	line   int
	col    int
	c      *word2number.Converter
}

//NewLexer creates a new Lexer and initializes the word2number converter.
func NewLexer(source string) *Lexer {
	c, _ := word2number.NewConverter("en")
	return &Lexer{source: source, index: 0, line: 1, col: 1, c: c}
}

//Tokenize converts source text into a flat token sequence ending in an EOF
//token. It is a pure function: the same text always yields the same tokens.
func Tokenize(source string) ([]Token, error) {
	lex := NewLexer(source)
	var tokens []Token
	for {
		tok, err := lex.next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			return tokens, nil
		}
	}
}

var (
	poolDiceRe     = regexp.MustCompile(`^([0-9]*)(?:wod|WOD)([0-9]*)`)
	standardDiceRe = regexp.MustCompile(`^([0-9]*)[dD]([0-9]*)(\{\s*(-?[0-9]+)\s*,\s*(-?[0-9]+)\s*\})?`)
)

// Two-character operators are matched greedily before single ones.
var twoCharOperators = map[string]bool{
	"**": true, "//": true, "<<": true, ">>": true,
	"<=": true, ">=": true, "==": true, "!=": true,
}

var singleCharOperators = map[rune]bool{
	'+': true, '-': true, '*': true, '/': true, '%': true,
	'&': true, '|': true, '^': true, '~': true, '<': true, '>': true,
}

func (lex *Lexer) next() (Token, error) {
	lex.consumeWhitespace()

	if len(lex.source[lex.index:]) == 0 {
		return Token{Kind: TokenEOF, Text: "EOF", Line: lex.line, Col: lex.col}, nil
	}

	r, _ := utf8.DecodeRuneInString(lex.source[lex.index:])
	switch {
	case unicode.IsDigit(r) || r == 'd' || r == 'D' || r == 'w' || r == 'W':
		if tok, ok := lex.nextDice(); ok {
			return tok, nil
		}
		if unicode.IsDigit(r) {
			return lex.nextNumber(), nil
		}
		return lex.nextIdent(), nil
	case isFirstIdentChar(r):
		return lex.nextIdent(), nil
	case r == '(':
		return lex.punct(TokenLParen, r), nil
	case r == ')':
		return lex.punct(TokenRParen, r), nil
	case r == ',':
		return lex.punct(TokenComma, r), nil
	case singleCharOperators[r] || r == '=' || r == '!':
		return lex.nextOperator()
	}
	return Token{}, errors.NewLexError(r, lex.line, lex.col)
}

// nextDice recognizes a complete dice term as a single token so the parser
// never has to re-tokenize. Returns false when the text at the cursor is not
// a dice term, letting number and identifier scanning proceed.
func (lex *Lexer) nextDice() (Token, bool) {
	rest := lex.source[lex.index:]

	if m := poolDiceRe.FindStringSubmatch(rest); m != nil && !identCharFollows(rest, len(m[0])) {
		tok := Token{
			Kind: TokenDice,
			Text: m[0],
			Line: lex.line,
			Col:  lex.col,
			Dice: &DiceGroups{Count: m[1], Threshold: m[2], Pool: true},
		}
		lex.advanceBy(m[0])
		return tok, true
	}

	m := standardDiceRe.FindStringSubmatch(rest)
	if m == nil {
		return Token{}, false
	}
	hasRange := m[3] != ""
	if m[2] == "" && !hasRange {
		// a bare "d" with nothing rollable after it is not a dice term
		return Token{}, false
	}
	if identCharFollows(rest, len(m[0])) {
		return Token{}, false
	}
	tok := Token{
		Kind: TokenDice,
		Text: m[0],
		Line: lex.line,
		Col:  lex.col,
		Dice: &DiceGroups{Count: m[1], Sides: m[2], Low: m[4], High: m[5], HasRange: hasRange},
	}
	lex.advanceBy(m[0])
	return tok, true
}

func (lex *Lexer) nextNumber() Token {
	var text bytes.Buffer
	col := lex.col
	r, size := utf8.DecodeRuneInString(lex.source[lex.index:])
	for size > 0 && unicode.IsDigit(r) {
		lex.consumeRune(&text, r, size)
		r, size = utf8.DecodeRuneInString(lex.source[lex.index:])
	}
	if size > 0 && r == '.' {
		lex.consumeRune(&text, r, size)
		r, size = utf8.DecodeRuneInString(lex.source[lex.index:])
		for size > 0 && unicode.IsDigit(r) {
			lex.consumeRune(&text, r, size)
			r, size = utf8.DecodeRuneInString(lex.source[lex.index:])
		}
	}
	return Token{Kind: TokenNumber, Text: text.String(), Line: lex.line, Col: col}
}

func (lex *Lexer) nextIdent() Token {
	var text bytes.Buffer
	col := lex.col
	r, size := utf8.DecodeRuneInString(lex.source[lex.index:])
	for size > 0 && isIdentChar(r) {
		lex.consumeRune(&text, r, size)
		r, size = utf8.DecodeRuneInString(lex.source[lex.index:])
	}
	symbol := text.String()

	switch symbol {
	case "and", "or":
		return Token{Kind: TokenOperator, Text: symbol, Line: lex.line, Col: col}
	}
	if found, value := convertToNumeric(lex.c, symbol); found {
		return Token{Kind: TokenNumber, Text: strconv.Itoa(value), Line: lex.line, Col: col}
	}
	return Token{Kind: TokenIdent, Text: symbol, Line: lex.line, Col: col}
}

func (lex *Lexer) nextOperator() (Token, error) {
	col := lex.col
	r, size := utf8.DecodeRuneInString(lex.source[lex.index:])

	// try to parse operators made of two characters
	r2, size2 := utf8.DecodeRuneInString(lex.source[lex.index+size:])
	if size2 > 0 {
		two := string(r) + string(r2)
		if twoCharOperators[two] {
			lex.advanceBy(two)
			return Token{Kind: TokenOperator, Text: two, Line: lex.line, Col: col}, nil
		}
	}

	if !singleCharOperators[r] {
		return Token{}, errors.NewLexError(r, lex.line, col)
	}
	lex.advanceBy(string(r))
	return Token{Kind: TokenOperator, Text: string(r), Line: lex.line, Col: col}, nil
}

func (lex *Lexer) punct(kind TokenKind, r rune) Token {
	tok := Token{Kind: kind, Text: string(r), Line: lex.line, Col: lex.col}
	lex.advanceBy(string(r))
	return tok
}

func (lex *Lexer) consumeWhitespace() {
	r, size := utf8.DecodeRuneInString(lex.source[lex.index:])
	for size > 0 && unicode.IsSpace(r) {
		if r == '\n' {
			lex.line++
			lex.col = 1
			lex.index += size
		} else {
			lex.advanceBy(string(r))
		}
		r, size = utf8.DecodeRuneInString(lex.source[lex.index:])
	}
}

func (lex *Lexer) consumeRune(text *bytes.Buffer, r rune, size int) {
	text.WriteRune(r)
	lex.col++
	lex.index += size
}

// advanceBy consumes text, counting columns in runes rather than bytes so
// multibyte characters do not skew later error positions.
func (lex *Lexer) advanceBy(text string) {
	lex.col += utf8.RuneCountInString(text)
	lex.index += len(text)
}

func convertToNumeric(c *word2number.Converter, word string) (bool, int) {
	n := c.Words2Number(word)
	if n == 0 {
		return false, 0
	}
	return true, int(n)
}

func identCharFollows(s string, offset int) bool {
	r, size := utf8.DecodeRuneInString(s[offset:])
	return size > 0 && isIdentChar(r)
}

func isFirstIdentChar(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r == '_')
}

func isIdentChar(r rune) bool {
	return isFirstIdentChar(r) || unicode.IsDigit(r)
}
