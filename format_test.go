package dicelang

import (
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		res  EvalResult
		want string
	}{
		{name: "no dice",
			res:  EvalResult{Value: 9},
			want: "9"},
		{name: "fractional value keeps its digits",
			res:  EvalResult{Value: 2.5},
			want: "2.5"},
		{name: "integral value drops the point",
			res:  EvalResult{Value: 11, Events: []RollEvent{
				{Label: "3d6", Raw: []int64{1, 6, 4}, Kept: []int64{1, 6, 4}, Subtotal: 11},
			}},
			want: "11 [3d6: 1, 6, 4 = 11]"},
		{name: "pool marks penalties and drops",
			res: EvalResult{Value: 1, Events: []RollEvent{
				{Label: "4wod8", Pool: true, Threshold: 8,
					Raw: []int64{1, 8, 9, 3}, Kept: []int64{8, 9}, Dropped: []int64{3}, Subtotal: 1},
			}},
			want: "1 [4wod8: 1!, 8, 9, ~3~ = 1]"},
		{name: "events render in source order",
			res: EvalResult{Value: 25, Events: []RollEvent{
				{Label: "1d20", Raw: []int64{20}, Kept: []int64{20}, Subtotal: 20},
				{Label: "1d6", Raw: []int64{5}, Kept: []int64{5}, Subtotal: 5},
			}},
			want: "25 [1d20: 20 = 20] [1d6: 5 = 5]"},
		{name: "negative draws",
			res: EvalResult{Value: -4, Events: []RollEvent{
				{Label: "2d{-5,-1}", Low: -5, High: -1, Raw: []int64{-3, -1}, Kept: []int64{-3, -1}, Subtotal: -4},
			}},
			want: "-4 [2d{-5,-1}: -3, -1 = -4]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(&tt.res); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatEndToEnd(t *testing.T) {
	res, err := Roll("1d20 + 4wod8", DefaultBudget(), NewScriptedSource(20, 1, 8, 9, 3))
	if err != nil {
		t.Fatal(err)
	}
	want := "21 [1d20: 20 = 20] [4wod8: 1!, 8, 9, ~3~ = 1]"
	if got := Format(res); got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{in: 11, want: "11"},
		{in: 2.5, want: "2.5"},
		{in: -4, want: "-4"},
		{in: 0, want: "0"},
		{in: 0.1, want: "0.1"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.in); got != tt.want {
			t.Errorf("FormatValue(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
