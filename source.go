package dicelang

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

//Source supplies uniformly distributed integers in a caller-requested
//inclusive range. Randomness is an injected capability: the evaluator makes
//exactly one draw per die, in left-to-right source order, so a deterministic
//Source makes evaluation exactly reproducible. A Source must not be shared
//across concurrent evaluations unless it is internally synchronized.
type Source interface {
	Int(lo, hi int64) int64
}

type cryptoSource struct{}

//NewCryptoSource returns the default Source, backed by crypto/rand. It is
//safe for concurrent use.
func NewCryptoSource() Source {
	return cryptoSource{}
}

func (cryptoSource) Int(lo, hi int64) int64 {
	if hi < lo {
		panic(fmt.Sprintf("dicelang: inverted draw range [%d,%d]", lo, hi))
	}
	if hi == lo {
		return lo
	}
	//rand.Int does not return the max value, add 1
	nBig, err := rand.Int(rand.Reader, big.NewInt(hi-lo+1))
	if err != nil {
		panic("dicelang: couldn't make a random number. Out of entropy?")
	}
	return lo + nBig.Int64()
}

//ScriptedSource replays a fixed sequence of draws. It is the deterministic
//Source used in tests and can replay a recorded roll for a host.
type ScriptedSource struct {
	draws []int64
	pos   int
}

//NewScriptedSource creates a ScriptedSource that returns draws in order.
func NewScriptedSource(draws ...int64) *ScriptedSource {
	return &ScriptedSource{draws: draws}
}

//Int returns the next scripted draw. It panics if the script is exhausted or
//the scripted value falls outside the requested range, since either means
//the script no longer matches the expression being evaluated.
func (s *ScriptedSource) Int(lo, hi int64) int64 {
	if s.pos >= len(s.draws) {
		panic("dicelang: scripted source exhausted")
	}
	v := s.draws[s.pos]
	s.pos++
	if v < lo || v > hi {
		panic(fmt.Sprintf("dicelang: scripted draw %d outside [%d,%d]", v, lo, hi))
	}
	return v
}

//Remaining reports how many scripted draws have not been consumed.
func (s *ScriptedSource) Remaining() int {
	return len(s.draws) - s.pos
}
