package dicelang

import (
	"strconv"

	"github.com/gobuffalo/envy"
)

//Budget bounds the work a single evaluation may perform. It is request
//scoped configuration, not shared state; hosts typically build one at
//startup and pass it to every call.
type Budget struct {
	//MaxTotalDice caps the number of dice rolled across the whole
	//expression, not per term.
	MaxTotalDice int64
	//MaxSides caps the magnitude of any die face or range bound.
	MaxSides int64
	//MaxASTDepth caps expression nesting, checked while parsing.
	MaxASTDepth int
	//DefaultPoolThreshold is the success threshold a pool ("wod") term uses
	//when its surface syntax omits one.
	DefaultPoolThreshold int64
}

//DefaultBudget returns the documented default limits.
func DefaultBudget() Budget {
	return Budget{
		MaxTotalDice:         1000,
		MaxSides:             100000,
		MaxASTDepth:          64,
		DefaultPoolThreshold: 8,
	}
}

//BudgetFromEnv returns DefaultBudget overridden by the DICELANG_* environment
//variables, for hosts that configure limits through the environment.
//Unparseable values fall back to the defaults.
func BudgetFromEnv() Budget {
	b := DefaultBudget()
	b.MaxTotalDice = envInt64("DICELANG_MAX_TOTAL_DICE", b.MaxTotalDice)
	b.MaxSides = envInt64("DICELANG_MAX_SIDES", b.MaxSides)
	b.MaxASTDepth = int(envInt64("DICELANG_MAX_AST_DEPTH", int64(b.MaxASTDepth)))
	b.DefaultPoolThreshold = envInt64("DICELANG_POOL_THRESHOLD", b.DefaultPoolThreshold)
	return b
}

func envInt64(key string, fallback int64) int64 {
	text := envy.Get(key, "")
	if text == "" {
		return fallback
	}
	if value, err := strconv.ParseInt(text, 10, 64); err == nil {
		return value
	}
	return fallback
}
