package stats

import "errors"

var (
	// ErrEmptySample is returned when a statistic is invoked on zero elements.
	ErrEmptySample = errors.New("stats: sample must not be empty")

	// ErrInsufficientSample is returned when the sample is smaller than the
	// statistic's minimum size (variance: 2, skewness: 3, kurtosis: 4).
	ErrInsufficientSample = errors.New("stats: sample too small for statistic")

	// ErrDivisionByZero is returned when a statistic would divide by zero,
	// such as the harmonic mean of a sample containing a zero element.
	ErrDivisionByZero = errors.New("stats: division by zero")

	// ErrDomain is returned when the sample lies outside the real domain of a
	// statistic, such as the geometric mean of non-positive values, or when an
	// element is NaN or infinite.
	ErrDomain = errors.New("stats: value outside statistic domain")

	// ErrInvalidBinWidth is returned when a histogram bin-width heuristic
	// produces a zero width, which happens when the sample range or IQR is zero.
	ErrInvalidBinWidth = errors.New("stats: bin width must be positive")

	// ErrNegativeOrder is returned when a central moment is requested with a
	// negative order.
	ErrNegativeOrder = errors.New("stats: moment order must be non-negative")
)
