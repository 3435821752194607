// Command roll evaluates a dice expression from its arguments and prints the
// result with its breakdown. It is a host for the dicelang library: budget
// limits come from the DICELANG_* environment variables and randomness from
// crypto/rand.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/mgutz/ansi"
	"go.uber.org/zap"

	"github.com/aasmall/dicelang"
)

const defaultCmd = "1d20"

func main() {
	var graph, verbose bool
	flag.BoolVar(&graph, "graph", false, "Plot the distribution of the first non-pool dice term")
	flag.BoolVar(&verbose, "v", false, "Log rolls at debug level")
	flag.Parse()

	expression := strings.Join(flag.Args(), " ")
	if expression == "" {
		expression = defaultCmd
	}

	logger := zap.NewNop()
	if verbose {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	roller := dicelang.NewRoller(dicelang.NewCryptoSource(), dicelang.BudgetFromEnv(), logger)
	res, err := roller.Roll(expression)
	if err != nil {
		fmt.Fprintln(os.Stderr, ansi.Color(err.Error(), "red"))
		os.Exit(1)
	}

	fmt.Println(ansi.Color(dicelang.Format(res), "green+b"))
	for _, w := range res.Warnings {
		fmt.Println(ansi.Color("warning: "+w, "yellow"))
	}
	if graph {
		printDistribution(res)
	}
}

// printDistribution plots the exact outcome distribution of the first
// standard or ranged dice term in the result.
func printDistribution(res *dicelang.EvalResult) {
	for _, ev := range res.Events {
		if ev.Pool {
			continue
		}
		count := int64(len(ev.Raw))
		if count*(ev.High-ev.Low+1) > 10000 {
			fmt.Println("distribution too large to plot")
			return
		}
		probs := dicelang.DiceProbability(count, ev.Low, ev.High)
		keys := make([]int64, 0, len(probs))
		for k := range probs {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
		data := make([]float64, 0, len(keys))
		for _, k := range keys {
			data = append(data, probs[k])
		}
		caption := fmt.Sprintf("%s: %% chance of totals %d through %d", ev.Label, keys[0], keys[len(keys)-1])
		fmt.Println(asciigraph.Plot(data, asciigraph.Height(10), asciigraph.Caption(caption)))
		return
	}
}
