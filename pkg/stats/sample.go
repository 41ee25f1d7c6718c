package stats

// Sample binds a validated sample once so many statistics can be computed
// without re-passing the slice. The constructor stores a private copy, so
// later mutation of the caller's slice never reaches the bound statistics,
// and nothing a method does can reach the caller's slice. Errors from the
// underlying functions pass through unchanged.
type Sample struct {
	values []float64
}

// NewSample validates values (non-empty, all finite) and wraps a private
// copy of them.
func NewSample(values []float64) (*Sample, error) {
	err := validate(values)
	if err != nil {
		return nil, err
	}

	held := make([]float64, len(values))
	copy(held, values)

	return &Sample{values: held}, nil
}

// Len returns the number of observations.
func (s *Sample) Len() int {
	return len(s.values)
}

// Values returns a copy of the held observations.
func (s *Sample) Values() []float64 {
	out := make([]float64, len(s.values))
	copy(out, s.values)

	return out
}

// Sum delegates to [Sum].
func (s *Sample) Sum() (float64, error) { return Sum(s.values) }

// Product delegates to [Product].
func (s *Sample) Product() (float64, error) { return Product(s.values) }

// Mean delegates to [Mean].
func (s *Sample) Mean() (float64, error) { return Mean(s.values) }

// GeometricMean delegates to [GeometricMean].
func (s *Sample) GeometricMean() (float64, error) { return GeometricMean(s.values) }

// HarmonicMean delegates to [HarmonicMean].
func (s *Sample) HarmonicMean() (float64, error) { return HarmonicMean(s.values) }

// Median delegates to [Median].
func (s *Sample) Median() (float64, error) { return Median(s.values) }

// Quartiles delegates to [ComputeQuartiles].
func (s *Sample) Quartiles() (Quartiles, error) { return ComputeQuartiles(s.values) }

// CentralMoment delegates to [CentralMoment].
func (s *Sample) CentralMoment(order int) (float64, error) { return CentralMoment(s.values, order) }

// Variance delegates to [Variance].
func (s *Sample) Variance() (float64, error) { return Variance(s.values) }

// VariancePop delegates to [VariancePop].
func (s *Sample) VariancePop() (float64, error) { return VariancePop(s.values) }

// StableVariance delegates to [StableVariance].
func (s *Sample) StableVariance() (float64, error) { return StableVariance(s.values) }

// StableVariancePop delegates to [StableVariancePop].
func (s *Sample) StableVariancePop() (float64, error) { return StableVariancePop(s.values) }

// StdDev delegates to [StdDev].
func (s *Sample) StdDev() (float64, error) { return StdDev(s.values) }

// StdDevPop delegates to [StdDevPop].
func (s *Sample) StdDevPop() (float64, error) { return StdDevPop(s.values) }

// StableStdDev delegates to [StableStdDev].
func (s *Sample) StableStdDev() (float64, error) { return StableStdDev(s.values) }

// StableStdDevPop delegates to [StableStdDevPop].
func (s *Sample) StableStdDevPop() (float64, error) { return StableStdDevPop(s.values) }

// Skewness delegates to [Skewness].
func (s *Sample) Skewness() (float64, error) { return Skewness(s.values) }

// SkewnessPop delegates to [SkewnessPop].
func (s *Sample) SkewnessPop() (float64, error) { return SkewnessPop(s.values) }

// Kurtosis delegates to [Kurtosis].
func (s *Sample) Kurtosis() (float64, error) { return Kurtosis(s.values) }

// KurtosisPop delegates to [KurtosisPop].
func (s *Sample) KurtosisPop() (float64, error) { return KurtosisPop(s.values) }

// Sturges delegates to [SturgesRule].
func (s *Sample) Sturges() (BinWidth, error) { return SturgesRule(s.values) }

// Scott delegates to [ScottRule].
func (s *Sample) Scott() (BinWidth, error) { return ScottRule(s.values) }

// SquareRoot delegates to [SquareRootRule].
func (s *Sample) SquareRoot() (BinWidth, error) { return SquareRootRule(s.values) }

// FreedmanDiaconis delegates to [FreedmanDiaconisRule].
func (s *Sample) FreedmanDiaconis() (BinWidth, error) { return FreedmanDiaconisRule(s.values) }

// Histogram delegates to [ComputeHistogram].
func (s *Sample) Histogram(rule Rule) (Histogram, error) { return ComputeHistogram(s.values, rule) }

// Describe delegates to [Describe].
func (s *Sample) Describe() (Summary, error) { return Describe(s.values) }
