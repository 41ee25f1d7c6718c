package stats

import (
	"errors"
	"fmt"
	"slices"
)

// Rule names a bin-width heuristic for [ComputeHistogram].
type Rule string

// The four supported bin-width rules.
const (
	RuleSturges          Rule = "sturges"
	RuleScott            Rule = "scott"
	RuleSquareRoot       Rule = "sqrt"
	RuleFreedmanDiaconis Rule = "fd"
)

// ErrUnknownRule is wrapped into the error returned for an unrecognized rule
// name.
var ErrUnknownRule = errors.New("stats: unknown bin rule")

// BinWidthByRule dispatches to the heuristic named by rule.
func BinWidthByRule(sample []float64, rule Rule) (BinWidth, error) {
	switch rule {
	case RuleSturges:
		return SturgesRule(sample)
	case RuleScott:
		return ScottRule(sample)
	case RuleSquareRoot:
		return SquareRootRule(sample)
	case RuleFreedmanDiaconis:
		return FreedmanDiaconisRule(sample)
	default:
		return BinWidth{}, fmt.Errorf("%w %q", ErrUnknownRule, rule)
	}
}

// Histogram is a binned view of a sample: K consecutive bins of width H
// starting at Min. Bin i covers [Min + i*H, Min + (i+1)*H), with the last
// bin closed on the right so the maximum is counted.
type Histogram struct {
	Rule   Rule      `json:"rule" yaml:"rule"`
	Min    float64   `json:"min" yaml:"min"`
	Width  float64   `json:"width" yaml:"width"`
	Counts []int     `json:"counts" yaml:"counts"`
	Edges  []float64 `json:"edges" yaml:"edges"`
}

// Bins returns the number of bins.
func (h Histogram) Bins() int {
	return len(h.Counts)
}

// ComputeHistogram bins the sample using the named bin-width rule. The
// returned edges slice has one more element than counts. The input slice is
// never mutated.
func ComputeHistogram(sample []float64, rule Rule) (Histogram, error) {
	bw, err := BinWidthByRule(sample, rule)
	if err != nil {
		return Histogram{}, err
	}

	low := slices.Min(sample)

	hist := Histogram{
		Rule:   rule,
		Min:    low,
		Width:  bw.H,
		Counts: make([]int, bw.K),
		Edges:  make([]float64, bw.K+1),
	}

	for i := range hist.Edges {
		hist.Edges[i] = low + float64(i)*bw.H
	}

	for _, v := range sample {
		idx := int((v - low) / bw.H)
		// The maximum lands exactly on the upper edge; fold it into the
		// last bin.
		if idx >= bw.K {
			idx = bw.K - 1
		}

		hist.Counts[idx]++
	}

	return hist, nil
}
