package dicelang

import (
	"strconv"
	"strings"
)

//Format renders an EvalResult as the final display string: the value with no
//trailing fractional zeros, then one bracketed breakdown per roll event in
//source order. Dropped draws are wrapped in "~ ~" and pool penalty draws are
//suffixed with "!". Pure function; never fails on a successful result.
func Format(res *EvalResult) string {
	var b strings.Builder
	b.WriteString(FormatValue(res.Value))
	for _, ev := range res.Events {
		b.WriteString(" [")
		b.WriteString(ev.Label)
		b.WriteString(": ")
		b.WriteString(facesString(ev))
		b.WriteString(" = ")
		b.WriteString(FormatValue(ev.Subtotal))
		b.WriteString("]")
	}
	return b.String()
}

//FormatValue renders a numeric result with unnecessary trailing fractional
//zeros trimmed, e.g. 11 rather than 11.0 but 2.5 kept intact.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func facesString(ev RollEvent) string {
	parts := make([]string, 0, len(ev.Raw))
	for _, v := range ev.Raw {
		text := strconv.FormatInt(v, 10)
		if ev.Pool {
			switch {
			case v == 1:
				text += "!"
			case v < ev.Threshold:
				text = "~" + text + "~"
			}
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, ", ")
}
