package dicelang

import (
	"fmt"
	"strconv"

	"github.com/aasmall/dicelang/errors"
)

// poolSides is the die used by pool ("wod") rolls.
const poolSides = 10

// newDiceRoll converts a DICE token's captured groups into a canonical
// DiceRoll node, validating structure and budget before any draw happens.
func newDiceRoll(tok Token, budget Budget) (*DiceRoll, error) {
	g := tok.Dice
	count := int64(1)
	if g.Count != "" {
		n, err := strconv.ParseInt(g.Count, 10, 64)
		if err != nil {
			return nil, errors.NewDiceTermError(fmt.Sprintf("dice count %q is out of range", g.Count), tok.Line, tok.Col)
		}
		count = n
	}
	if count < 1 {
		return nil, errors.NewDiceTermError(fmt.Sprintf("cannot roll %d dice", count), tok.Line, tok.Col)
	}
	if count > budget.MaxTotalDice {
		return nil, errors.NewBudgetExceededError("total dice", budget.MaxTotalDice, count)
	}

	d := &DiceRoll{Count: count, Label: tok.Text, Line: tok.Line, Col: tok.Col}

	if g.Pool {
		threshold := budget.DefaultPoolThreshold
		if g.Threshold != "" {
			n, err := strconv.ParseInt(g.Threshold, 10, 64)
			if err != nil {
				return nil, errors.NewDiceTermError(fmt.Sprintf("pool threshold %q is out of range", g.Threshold), tok.Line, tok.Col)
			}
			threshold = n
		}
		if threshold < 2 || threshold > poolSides {
			return nil, errors.NewDiceTermError(fmt.Sprintf("pool threshold must be between 2 and %d, got %d", poolSides, threshold), tok.Line, tok.Col)
		}
		d.Pool = true
		d.Threshold = threshold
		d.Low, d.High = 1, poolSides
		return d, nil
	}

	if g.HasRange {
		lo, errLo := strconv.ParseInt(g.Low, 10, 64)
		hi, errHi := strconv.ParseInt(g.High, 10, 64)
		if errLo != nil || errHi != nil {
			return nil, errors.NewDiceTermError(fmt.Sprintf("dice range in %q is out of range", tok.Text), tok.Line, tok.Col)
		}
		if lo > hi {
			return nil, errors.NewDiceTermError(fmt.Sprintf("dice range [%d,%d] is inverted", lo, hi), tok.Line, tok.Col)
		}
		// compare directly so bounds near math.MinInt64 cannot overflow a
		// magnitude calculation and slip past the budget
		if lo < -budget.MaxSides {
			return nil, errors.NewBudgetExceededError("sides", budget.MaxSides, lo)
		}
		if hi > budget.MaxSides {
			return nil, errors.NewBudgetExceededError("sides", budget.MaxSides, hi)
		}
		d.Low, d.High = lo, hi
		return d, nil
	}

	sides, err := strconv.ParseInt(g.Sides, 10, 64)
	if err != nil {
		return nil, errors.NewDiceTermError(fmt.Sprintf("dice sides %q is out of range", g.Sides), tok.Line, tok.Col)
	}
	if sides < 1 {
		return nil, errors.NewDiceTermError("/me ponders the meaning of a zero sided die", tok.Line, tok.Col)
	}
	if sides > budget.MaxSides {
		return nil, errors.NewBudgetExceededError("sides", budget.MaxSides, sides)
	}
	d.Low, d.High = 1, sides
	return d, nil
}

//RollEvent records the evidence of evaluating one dice term: every raw draw
//in order, which draws were kept or dropped, and the resulting subtotal.
//Kept is always a subsequence of Raw.
type RollEvent struct {
	Label     string
	Low       int64
	High      int64
	Pool      bool
	Threshold int64
	Raw       []int64
	Kept      []int64
	Dropped   []int64
	Subtotal  float64
}

// roll draws Count values from src in order and classifies them. For a pool
// roll, draws at or above the threshold are kept and score +1, natural ones
// score -1 without being kept, and everything else is dropped. Standard and
// ranged rolls keep every draw and subtotal to their sum.
func (d *DiceRoll) roll(src Source) RollEvent {
	ev := RollEvent{Label: d.Label, Low: d.Low, High: d.High, Pool: d.Pool, Threshold: d.Threshold}
	for i := int64(0); i < d.Count; i++ {
		ev.Raw = append(ev.Raw, src.Int(d.Low, d.High))
	}
	if d.Pool {
		var subtotal int64
		for _, v := range ev.Raw {
			switch {
			case v >= d.Threshold:
				ev.Kept = append(ev.Kept, v)
				subtotal++
			case v == 1:
				subtotal--
			default:
				ev.Dropped = append(ev.Dropped, v)
			}
		}
		ev.Subtotal = float64(subtotal)
		return ev
	}
	var sum int64
	for _, v := range ev.Raw {
		sum += v
	}
	ev.Kept = append([]int64(nil), ev.Raw...)
	ev.Subtotal = float64(sum)
	return ev
}
