package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/ShyamSundarVijayakumar/eda-for-data-science-and-ml/pkg/errors"
)

// Bounds of the Royston approximation.
const (
	shapiroMinN = 3
	shapiroMaxN = 5000
)

// ShapiroWilkResult holds the W statistic and p-value of a normality test.
// The null hypothesis is that the sample is drawn from a normal
// distribution; by convention p < 0.05 rejects it.
type ShapiroWilkResult struct {
	W      float64
	PValue float64
	N      int // number of observed values used
}

// Rejected reports whether normality is rejected at the 0.05 level.
func (r ShapiroWilkResult) Rejected() bool {
	return r.PValue < 0.05
}

// ShapiroWilk tests the observed (non-missing) values of the named column
// for normality using Royston's AS R94 approximation, valid for sample
// sizes between 3 and 5000.
func ShapiroWilk(column string, values []float64) (ShapiroWilkResult, error) {
	obs := Observed(values)
	n := len(obs)
	if n < shapiroMinN {
		return ShapiroWilkResult{}, errors.NewDiagnosticError("shapiro_wilk", column, "fewer than 3 observed values")
	}
	if n > shapiroMaxN {
		return ShapiroWilkResult{}, errors.NewDiagnosticError("shapiro_wilk", column, "more than 5000 observed values")
	}

	x := make([]float64, n)
	copy(x, obs)
	sort.Float64s(x)

	if x[0] == x[n-1] {
		return ShapiroWilkResult{}, errors.NewDiagnosticError("shapiro_wilk", column, "sample has zero range")
	}

	norm := distuv.UnitNormal

	// Expected normal order statistics via the Blom approximation.
	m := make([]float64, n)
	var ssm float64
	for i := 0; i < n; i++ {
		m[i] = norm.Quantile((float64(i+1) - 0.375) / (float64(n) + 0.25))
		ssm += m[i] * m[i]
	}

	// Royston's polynomial-corrected coefficients.
	a := make([]float64, n)
	u := 1 / math.Sqrt(float64(n))
	switch {
	case n == 3:
		a[0] = -math.Sqrt2 / 2
		a[2] = math.Sqrt2 / 2
	default:
		cn := m[n-1] / math.Sqrt(ssm)
		an := cn + u*(0.221157+u*(-0.147981+u*(-2.071190+u*(4.434685+u*-2.706056))))
		if n > 5 {
			cn1 := m[n-2] / math.Sqrt(ssm)
			an1 := cn1 + u*(0.042981+u*(-0.293762+u*(-1.752461+u*(5.682633+u*-3.582633))))
			phi := (ssm - 2*m[n-1]*m[n-1] - 2*m[n-2]*m[n-2]) /
				(1 - 2*an*an - 2*an1*an1)
			sp := math.Sqrt(phi)
			for i := 2; i < n-2; i++ {
				a[i] = m[i] / sp
			}
			a[n-1], a[n-2] = an, an1
			a[0], a[1] = -an, -an1
		} else {
			phi := (ssm - 2*m[n-1]*m[n-1]) / (1 - 2*an*an)
			sp := math.Sqrt(phi)
			for i := 1; i < n-1; i++ {
				a[i] = m[i] / sp
			}
			a[n-1] = an
			a[0] = -an
		}
	}

	var xbar float64
	for _, v := range x {
		xbar += v
	}
	xbar /= float64(n)

	var num, den float64
	for i, v := range x {
		num += a[i] * v
		den += (v - xbar) * (v - xbar)
	}
	w := num * num / den
	if w > 1 {
		w = 1
	}

	return ShapiroWilkResult{W: w, PValue: shapiroPValue(w, n), N: n}, nil
}

// shapiroPValue converts W to a p-value using the normalizing
// transformations from AS R94.
func shapiroPValue(w float64, n int) float64 {
	norm := distuv.UnitNormal

	switch {
	case n == 3:
		p := 6 / math.Pi * (math.Asin(math.Sqrt(w)) - math.Asin(math.Sqrt(0.75)))
		return math.Min(math.Max(p, 0), 1)
	case n <= 11:
		fn := float64(n)
		g := -2.273 + 0.459*fn
		mu := 0.5440 + fn*(-0.39978+fn*(0.025054+fn*-0.0006714))
		sigma := math.Exp(1.3822 + fn*(-0.77857+fn*(0.062767+fn*-0.0020322)))
		z := (-math.Log(g-math.Log(1-w)) - mu) / sigma
		return norm.Survival(z)
	default:
		ln := math.Log(float64(n))
		mu := -1.5861 + ln*(-0.31082+ln*(-0.083751+ln*0.0038915))
		sigma := math.Exp(-0.4803 + ln*(-0.082676+ln*0.0030302))
		z := (math.Log(1-w) - mu) / sigma
		return norm.Survival(z)
	}
}
