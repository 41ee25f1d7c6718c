package stats

import (
	"fmt"
	"math"
	"slices"
)

// Constants fixed by the published bin-width heuristics. They are the
// contract: a different constant is a different rule.
const (
	sturgesOffset = 1
	scottFactor   = 3.5
	fdFactor      = 2
)

// BinWidth is a histogram binning suggestion: K bins of width H. K is the
// ceiling of the rule's intermediate real value and H is strictly positive.
type BinWidth struct {
	K int     `json:"k" yaml:"k"`
	H float64 `json:"h" yaml:"h"`
}

// SturgesRule suggests k = ceil(log2(n) + 1) bins of width range/k.
// A zero sample range yields [ErrInvalidBinWidth].
func SturgesRule(sample []float64) (BinWidth, error) {
	span, err := sampleRange(sample)
	if err != nil {
		return BinWidth{}, err
	}

	bins := int(math.Ceil(math.Log2(float64(len(sample))) + sturgesOffset))

	return BinWidth{K: bins, H: span / float64(bins)}, nil
}

// ScottRule suggests a width of 3.5 * stddev / n^(1/3) (sample standard
// deviation) and k = ceil(range/h) bins. A zero spread yields
// [ErrInvalidBinWidth]; the sample stddev needs at least two elements.
func ScottRule(sample []float64) (BinWidth, error) {
	span, err := sampleRange(sample)
	if err != nil {
		return BinWidth{}, err
	}

	sd, err := StdDev(sample)
	if err != nil {
		return BinWidth{}, err
	}

	width := scottFactor * sd / cubeRoot(len(sample))
	if width == 0 {
		return BinWidth{}, fmt.Errorf("stats: Scott's rule on a zero-spread sample: %w", ErrInvalidBinWidth)
	}

	return BinWidth{K: int(math.Ceil(span / width)), H: width}, nil
}

// SquareRootRule suggests sqrt(n) bins of width range/sqrt(n); the reported
// bin count is the ceiling. A zero sample range yields [ErrInvalidBinWidth].
func SquareRootRule(sample []float64) (BinWidth, error) {
	span, err := sampleRange(sample)
	if err != nil {
		return BinWidth{}, err
	}

	bins := math.Sqrt(float64(len(sample)))

	return BinWidth{K: int(math.Ceil(bins)), H: span / bins}, nil
}

// FreedmanDiaconisRule suggests a width of 2 * IQR / n^(1/3) and
// k = ceil(range/h) bins. A zero IQR yields [ErrInvalidBinWidth].
func FreedmanDiaconisRule(sample []float64) (BinWidth, error) {
	span, err := sampleRange(sample)
	if err != nil {
		return BinWidth{}, err
	}

	q, err := ComputeQuartiles(sample)
	if err != nil {
		return BinWidth{}, err
	}

	width := fdFactor * q.IQR / cubeRoot(len(sample))
	if width == 0 {
		return BinWidth{}, fmt.Errorf("stats: Freedman-Diaconis rule on a zero-IQR sample: %w", ErrInvalidBinWidth)
	}

	return BinWidth{K: int(math.Ceil(span / width)), H: width}, nil
}

// sampleRange validates the sample and returns max - min, rejecting a zero
// range since every rule divides by it or produces h = 0 from it.
func sampleRange(sample []float64) (float64, error) {
	err := validate(sample)
	if err != nil {
		return 0, err
	}

	span := slices.Max(sample) - slices.Min(sample)
	if span == 0 {
		return 0, fmt.Errorf("stats: sample range is zero: %w", ErrInvalidBinWidth)
	}

	return span, nil
}

func cubeRoot(count int) float64 {
	return math.Cbrt(float64(count))
}
