// Package dataset bundles the two example datasets the pipeline analyzes: a
// diabetes-style regression table and an iris-style classification table.
//
// Both tables are synthesized at load time from fixed PCG seeds, so every
// call returns byte-identical data with a stable schema. The regression set
// carries one designated right-skewed, strictly positive column (s4) whose
// contribution to the target is log-linear; a handful of rows in the extreme
// s4 tail carry a target shift that breaks that relation. The classification
// set has exactly three balanced classes.
package dataset

import (
	"math"
	"math/rand/v2"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/ShyamSundarVijayakumar/eda-for-data-science-and-ml/pkg/errors"
)

// Dataset identifiers accepted by Load.
const (
	Regression     = "regression"
	Classification = "classification"
)

// Schema constants.
const (
	// RegressionTarget is the continuous target column of the regression set.
	RegressionTarget = "target"

	// ClassificationLabel is the categorical label column of the
	// classification set.
	ClassificationLabel = "species"

	// SkewedColumn is the designated right-skewed regression feature. It is
	// strictly positive, so a log transform is always well defined on it.
	SkewedColumn = "s4"
)

const (
	regressionRows     = 442
	classificationRows = 150

	// Fixed generator seeds. Changing either changes the bundled data.
	regressionSeed     = 34
	classificationSeed = 2207

	// Regression rows with s4 beyond this cutoff get a target shift. The
	// cutoff sits past the 99th percentile of s4, so a 99th-percentile
	// filter on s4 removes every shifted row.
	outlierCutoff = 38.7
)

// regressionFeatures lists the regression feature columns in table order.
var regressionFeatures = []string{"age", "sex", "bmi", "bp", "s1", "s2", "s3", "s4", "s5", "s6"}

// classificationFeatures lists the classification feature columns in table order.
var classificationFeatures = []string{"sepal_length", "sepal_width", "petal_length", "petal_width"}

// classes lists the label values of the classification set.
var classes = []string{"setosa", "versicolor", "virginica"}

// RegressionFeatures returns the feature column names of the regression set.
func RegressionFeatures() []string {
	out := make([]string, len(regressionFeatures))
	copy(out, regressionFeatures)
	return out
}

// ClassificationFeatures returns the feature column names of the
// classification set.
func ClassificationFeatures() []string {
	out := make([]string, len(classificationFeatures))
	copy(out, classificationFeatures)
	return out
}

// Classes returns the label values of the classification set.
func Classes() []string {
	out := make([]string, len(classes))
	copy(out, classes)
	return out
}

// Load returns the named dataset. It fails with DatasetUnavailableError for
// names the bundle does not provide.
func Load(name string) (dataframe.DataFrame, error) {
	switch name {
	case Regression:
		return LoadRegression()
	case Classification:
		return LoadClassification()
	default:
		return dataframe.DataFrame{}, errors.NewDatasetUnavailableError(name, "not in the bundled dataset collection")
	}
}

// LoadRegression returns the regression dataset: 442 rows, ten numeric
// features and a continuous target.
func LoadRegression() (dataframe.DataFrame, error) {
	r := rand.New(rand.NewPCG(regressionSeed, regressionSeed))

	n := regressionRows
	age := make([]float64, n)
	sex := make([]float64, n)
	bmi := make([]float64, n)
	bp := make([]float64, n)
	s1 := make([]float64, n)
	s2 := make([]float64, n)
	s3 := make([]float64, n)
	s4 := make([]float64, n)
	s5 := make([]float64, n)
	s6 := make([]float64, n)
	target := make([]float64, n)

	for i := 0; i < n; i++ {
		age[i] = math.Round(48 + 13*r.NormFloat64())
		sex[i] = float64(r.IntN(2) + 1)
		bmi[i] = 26 + 4.3*r.NormFloat64()
		bp[i] = 94 + 13.8*r.NormFloat64()
		s1[i] = 189 + 34*r.NormFloat64()
		s2[i] = 115 + 30*r.NormFloat64()
		s3[i] = 50 + 13*r.NormFloat64()

		// Lognormal draw keeps s4 strictly positive and right-skewed, so
		// its log is exactly normal.
		s4[i] = math.Exp(1.45 + 0.9*r.NormFloat64())
		s5[i] = 4.6 + 0.52*r.NormFloat64()
		s6[i] = 91 + 11.5*r.NormFloat64()

		target[i] = 40 -
			12*sex[i] +
			5.5*bmi[i] +
			0.65*bp[i] -
			1.4*s3[i] +
			40*math.Log(s4[i]) +
			28*s5[i] +
			35*r.NormFloat64()

		// Rows in the extreme s4 tail get a target shift that breaks the
		// log-linear relation. Only the target is disturbed, never s4
		// itself, so the shifted rows are exactly what the percentile
		// filter removes while s4 keeps its lognormal shape.
		if s4[i] > outlierCutoff {
			target[i] += 220 + 40*r.NormFloat64()
		}
	}

	df := dataframe.New(
		series.New(age, series.Float, "age"),
		series.New(sex, series.Float, "sex"),
		series.New(bmi, series.Float, "bmi"),
		series.New(bp, series.Float, "bp"),
		series.New(s1, series.Float, "s1"),
		series.New(s2, series.Float, "s2"),
		series.New(s3, series.Float, "s3"),
		series.New(s4, series.Float, "s4"),
		series.New(s5, series.Float, "s5"),
		series.New(s6, series.Float, "s6"),
		series.New(target, series.Float, RegressionTarget),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, errors.NewDatasetUnavailableError(Regression, df.Err.Error())
	}
	return df, nil
}

// classParams holds per-class feature means and standard deviations in
// classificationFeatures order.
type classParams struct {
	mean [4]float64
	sd   [4]float64
}

var classModel = map[string]classParams{
	"setosa":     {mean: [4]float64{5.01, 3.43, 1.46, 0.25}, sd: [4]float64{0.35, 0.38, 0.17, 0.11}},
	"versicolor": {mean: [4]float64{5.94, 2.77, 4.26, 1.33}, sd: [4]float64{0.52, 0.31, 0.47, 0.20}},
	"virginica":  {mean: [4]float64{6.59, 2.97, 5.55, 2.03}, sd: [4]float64{0.64, 0.32, 0.55, 0.27}},
}

// LoadClassification returns the classification dataset: 150 rows, four
// numeric features and a three-valued label with 50 rows per class.
func LoadClassification() (dataframe.DataFrame, error) {
	r := rand.New(rand.NewPCG(classificationSeed, classificationSeed))

	n := classificationRows
	perClass := n / len(classes)

	cols := make([][]float64, len(classificationFeatures))
	for j := range cols {
		cols[j] = make([]float64, 0, n)
	}
	labels := make([]string, 0, n)

	for _, class := range classes {
		params := classModel[class]
		for i := 0; i < perClass; i++ {
			for j := range classificationFeatures {
				v := params.mean[j] + params.sd[j]*r.NormFloat64()
				// Measurements are positive lengths; clamp the rare
				// negative draw on the narrow petal_width distribution.
				if v < 0.1 {
					v = 0.1
				}
				cols[j] = append(cols[j], math.Round(v*10)/10)
			}
			labels = append(labels, class)
		}
	}

	ss := make([]series.Series, 0, len(classificationFeatures)+1)
	for j, name := range classificationFeatures {
		ss = append(ss, series.New(cols[j], series.Float, name))
	}
	ss = append(ss, series.New(labels, series.String, ClassificationLabel))

	df := dataframe.New(ss...)
	if df.Err != nil {
		return dataframe.DataFrame{}, errors.NewDatasetUnavailableError(Classification, df.Err.Error())
	}
	return df, nil
}
