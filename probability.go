package dicelang

//DiceProbability returns a map of totals to probability (in percent) for
//count dice drawn uniformly from the inclusive range [lo, hi]. The exact
//distribution is built by memoized convolution, so it is meant for
//display-scale dice terms, not budget-scale ones.
func DiceProbability(count, lo, hi int64) map[int64]float64 {
	if count < 0 || hi < lo {
		return map[int64]float64{}
	}
	sides := hi - lo + 1
	mw := newMemoWrap()
	d := mw.outcomes(count, sides)
	var sum float64
	for _, v := range d {
		sum += v
	}
	out := make(map[int64]float64, len(d))
	for k, v := range d {
		// outcomes works on unit faces [1,sides]; shift back to [lo,hi]
		out[k+count*(lo-1)] = v / sum * 100
	}
	return out
}

type memoWrap struct {
	cache map[memoKey]map[int64]float64
}

type memoKey struct {
	count int64
	sides int64
}

func newMemoWrap() *memoWrap {
	return &memoWrap{cache: make(map[memoKey]map[int64]float64)}
}

// outcomes returns the number of ways each total can occur for count dice
// with faces [1, sides].
func (mw *memoWrap) outcomes(count, sides int64) map[int64]float64 {
	key := memoKey{count: count, sides: sides}
	if val, ok := mw.cache[key]; ok {
		return val
	}
	d := make(map[int64]float64)
	if count == 0 {
		d[0] = 1
	} else if sides > 0 {
		prev := mw.outcomes(count-1, sides)
		for face := int64(1); face <= sides; face++ {
			for k, v := range prev {
				d[k+face] += v
			}
		}
	}
	mw.cache[key] = d
	return d
}
