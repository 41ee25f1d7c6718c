package stats

// fenceMultiplier is the conventional Tukey fence distance in IQR units.
const fenceMultiplier = 1.5

// Quartiles holds the three quartiles of a sample together with the
// interquartile range and the Tukey outlier fences derived from it.
type Quartiles struct {
	Q1         float64 `json:"q1" yaml:"q1"`
	Q2         float64 `json:"q2" yaml:"q2"`
	Q3         float64 `json:"q3" yaml:"q3"`
	IQR        float64 `json:"iqr" yaml:"iqr"`
	LowerFence float64 `json:"lower_fence" yaml:"lower_fence"`
	UpperFence float64 `json:"upper_fence" yaml:"upper_fence"`
}

// ComputeQuartiles splits the sorted sample with the TI-83 method: for even
// sizes both halves have n/2 elements; for odd sizes the median element
// belongs to neither half. Q1 and Q3 are the medians of the halves, Q2 the
// median of the full sample, and the fences sit 1.5 IQR beyond Q1 and Q3.
//
// Any non-empty sample is accepted. For fewer than four elements the
// quartiles remain mathematically defined but carry little meaning; that is
// left to the caller to judge. The input slice is never mutated.
func ComputeQuartiles(sample []float64) (Quartiles, error) {
	err := validate(sample)
	if err != nil {
		return Quartiles{}, err
	}

	sorted := sortedCopy(sample)
	count := len(sorted)

	var lower, upper []float64

	if count%2 == 0 {
		lower = sorted[:count/2]
		upper = sorted[count/2:]
	} else {
		lower = sorted[:(count-1)/2]
		upper = sorted[(count-1)/2+1:]
	}

	q := Quartiles{
		Q2: medianSorted(sorted),
	}

	// A one-element sample leaves both halves empty; the lone element then
	// stands in for every quartile.
	if len(lower) == 0 {
		q.Q1 = q.Q2
	} else {
		q.Q1 = medianSorted(lower)
	}

	if len(upper) == 0 {
		q.Q3 = q.Q2
	} else {
		q.Q3 = medianSorted(upper)
	}

	q.IQR = q.Q3 - q.Q1
	q.LowerFence = q.Q1 - fenceMultiplier*q.IQR
	q.UpperFence = q.Q3 + fenceMultiplier*q.IQR

	return q, nil
}
