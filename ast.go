package dicelang

import (
	"fmt"
	"strings"
)

//Node is the sealed interface over the five AST node kinds. Nodes are built
//once by the parser and read-only afterwards; each parent exclusively owns
//its children.
type Node interface {
	Pos() (line int, col int)
	node()
}

//NumberLiteral is a numeric constant.
type NumberLiteral struct {
	Value float64
	Line  int
	Col   int
}

//DiceRoll is a dice term in canonical form: Count dice drawn uniformly from
//the inclusive range [Low, High]. Pool rolls compare draws to Threshold.
type DiceRoll struct {
	Count     int64
	Low       int64
	High      int64
	Pool      bool
	Threshold int64
	Label     string
	Line      int
	Col       int
}

//FunctionCall invokes a registry-allow-listed function.
type FunctionCall struct {
	Name string
	Args []Node
	Line int
	Col  int
}

//BinaryOp applies an infix operator to two operands.
type BinaryOp struct {
	Op    string
	Left  Node
	Right Node
	Line  int
	Col   int
}

//UnaryOp applies a prefix operator to one operand.
type UnaryOp struct {
	Op      string
	Operand Node
	Line    int
	Col     int
}

func (n *NumberLiteral) node() {}
func (n *DiceRoll) node()      {}
func (n *FunctionCall) node()  {}
func (n *BinaryOp) node()      {}
func (n *UnaryOp) node()       {}

//Pos returns the node's source position.
func (n *NumberLiteral) Pos() (int, int) { return n.Line, n.Col }

//Pos returns the node's source position.
func (n *DiceRoll) Pos() (int, int) { return n.Line, n.Col }

//Pos returns the node's source position.
func (n *FunctionCall) Pos() (int, int) { return n.Line, n.Col }

//Pos returns the node's source position.
func (n *BinaryOp) Pos() (int, int) { return n.Line, n.Col }

//Pos returns the node's source position.
func (n *UnaryOp) Pos() (int, int) { return n.Line, n.Col }

//DumpAST returns an indented s-expression rendering of a tree, for debugging
//and test output.
func DumpAST(n Node) string {
	var b strings.Builder
	dumpAST(&b, n, 0)
	return b.String()
}

func dumpAST(b *strings.Builder, n Node, indent int) {
	b.WriteString(strings.Repeat(" ", indent))
	switch t := n.(type) {
	case *NumberLiteral:
		fmt.Fprintf(b, "(number %v)", t.Value)
	case *DiceRoll:
		fmt.Fprintf(b, "(dice %s)", t.Label)
	case *FunctionCall:
		fmt.Fprintf(b, "(call %s", t.Name)
		for _, a := range t.Args {
			b.WriteString("\n")
			dumpAST(b, a, indent+4)
		}
		b.WriteString(")")
	case *BinaryOp:
		fmt.Fprintf(b, "(%s\n", t.Op)
		dumpAST(b, t.Left, indent+4)
		b.WriteString("\n")
		dumpAST(b, t.Right, indent+4)
		b.WriteString(")")
	case *UnaryOp:
		fmt.Fprintf(b, "(unary%s\n", t.Op)
		dumpAST(b, t.Operand, indent+4)
		b.WriteString(")")
	}
}
