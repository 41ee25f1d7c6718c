package stats

import "slices"

// Summary is the full descriptive record of a sample: one call, every
// statistic the engine knows. GeometricMean and HarmonicMean are nil when
// the sample lies outside their domain (non-positive or zero elements);
// every other field is always populated.
type Summary struct {
	N     int     `json:"n" yaml:"n"`
	Min   float64 `json:"min" yaml:"min"`
	Max   float64 `json:"max" yaml:"max"`
	Range float64 `json:"range" yaml:"range"`

	Mean          float64  `json:"mean" yaml:"mean"`
	GeometricMean *float64 `json:"geometric_mean,omitempty" yaml:"geometric_mean,omitempty"`
	HarmonicMean  *float64 `json:"harmonic_mean,omitempty" yaml:"harmonic_mean,omitempty"`
	Median        float64  `json:"median" yaml:"median"`

	Variance    float64 `json:"variance" yaml:"variance"`
	VariancePop float64 `json:"variance_pop" yaml:"variance_pop"`
	StdDev      float64 `json:"std_dev" yaml:"std_dev"`
	StdDevPop   float64 `json:"std_dev_pop" yaml:"std_dev_pop"`

	Quartiles Quartiles `json:"quartiles" yaml:"quartiles"`

	Skewness    float64 `json:"skewness" yaml:"skewness"`
	SkewnessPop float64 `json:"skewness_pop" yaml:"skewness_pop"`
	Kurtosis    float64 `json:"kurtosis" yaml:"kurtosis"`
	KurtosisPop float64 `json:"kurtosis_pop" yaml:"kurtosis_pop"`
}

// Describe computes the full summary in one call. It needs at least four
// elements (the sample kurtosis correction divides by zero below that) and a
// non-zero variance (the shape statistics are undefined on a constant
// sample); smaller or degenerate samples should call the individual
// statistics instead.
func Describe(sample []float64) (Summary, error) {
	err := validateSize(sample, minKurtosisSize)
	if err != nil {
		return Summary{}, err
	}

	s := Summary{N: len(sample)}

	s.Min = slices.Min(sample)
	s.Max = slices.Max(sample)
	s.Range = s.Max - s.Min

	s.Mean, err = Mean(sample)
	if err != nil {
		return Summary{}, err
	}

	s.Median, err = Median(sample)
	if err != nil {
		return Summary{}, err
	}

	if gm, gmErr := GeometricMean(sample); gmErr == nil {
		s.GeometricMean = &gm
	}

	if hm, hmErr := HarmonicMean(sample); hmErr == nil {
		s.HarmonicMean = &hm
	}

	s.Variance, err = Variance(sample)
	if err != nil {
		return Summary{}, err
	}

	s.VariancePop, err = VariancePop(sample)
	if err != nil {
		return Summary{}, err
	}

	s.StdDev, err = StdDev(sample)
	if err != nil {
		return Summary{}, err
	}

	s.StdDevPop, err = StdDevPop(sample)
	if err != nil {
		return Summary{}, err
	}

	s.Quartiles, err = ComputeQuartiles(sample)
	if err != nil {
		return Summary{}, err
	}

	s.Skewness, err = Skewness(sample)
	if err != nil {
		return Summary{}, err
	}

	s.SkewnessPop, err = SkewnessPop(sample)
	if err != nil {
		return Summary{}, err
	}

	s.Kurtosis, err = Kurtosis(sample)
	if err != nil {
		return Summary{}, err
	}

	s.KurtosisPop, err = KurtosisPop(sample)
	if err != nil {
		return Summary{}, err
	}

	return s, nil
}
