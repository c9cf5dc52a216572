package dataset

import (
	"math"
	"testing"

	"github.com/ShyamSundarVijayakumar/eda-for-data-science-and-ml/pkg/errors"
	"github.com/ShyamSundarVijayakumar/eda-for-data-science-and-ml/stats"
)

func TestLoadRegressionSchema(t *testing.T) {
	df, err := LoadRegression()
	if err != nil {
		t.Fatalf("LoadRegression() error = %v", err)
	}

	if got := df.Nrow(); got != 442 {
		t.Errorf("Nrow() = %d, want 442", got)
	}
	if got := df.Ncol(); got != 11 {
		t.Errorf("Ncol() = %d, want 11", got)
	}

	wantNames := append(RegressionFeatures(), RegressionTarget)
	gotNames := df.Names()
	if len(gotNames) != len(wantNames) {
		t.Fatalf("Names() = %v, want %v", gotNames, wantNames)
	}
	for i, want := range wantNames {
		if gotNames[i] != want {
			t.Errorf("Names()[%d] = %q, want %q", i, gotNames[i], want)
		}
	}
}

func TestLoadRegressionDeterministic(t *testing.T) {
	a, err := LoadRegression()
	if err != nil {
		t.Fatalf("LoadRegression() error = %v", err)
	}
	b, err := LoadRegression()
	if err != nil {
		t.Fatalf("LoadRegression() error = %v", err)
	}

	av := a.Col(SkewedColumn).Float()
	bv := b.Col(SkewedColumn).Float()
	for i := range av {
		if av[i] != bv[i] {
			t.Fatalf("row %d of %s differs between loads: %v vs %v", i, SkewedColumn, av[i], bv[i])
		}
	}

	at := a.Col(RegressionTarget).Float()
	bt := b.Col(RegressionTarget).Float()
	for i := range at {
		if at[i] != bt[i] {
			t.Fatalf("row %d of target differs between loads: %v vs %v", i, at[i], bt[i])
		}
	}
}

func TestSkewedColumnStrictlyPositive(t *testing.T) {
	df, err := LoadRegression()
	if err != nil {
		t.Fatalf("LoadRegression() error = %v", err)
	}
	for i, v := range df.Col(SkewedColumn).Float() {
		if v <= 0 {
			t.Fatalf("%s[%d] = %v, want > 0", SkewedColumn, i, v)
		}
	}
}

// The s4 column motivates the log transform: raw values fail the normality
// test, their logs pass it.
func TestSkewedColumnNormalityContrast(t *testing.T) {
	df, err := LoadRegression()
	if err != nil {
		t.Fatalf("LoadRegression() error = %v", err)
	}
	values := df.Col(SkewedColumn).Float()

	raw, err := stats.ShapiroWilk(SkewedColumn, values)
	if err != nil {
		t.Fatalf("ShapiroWilk() error = %v", err)
	}
	if !raw.Rejected() {
		t.Errorf("raw %s: normality not rejected (W = %.4f, p = %g)", SkewedColumn, raw.W, raw.PValue)
	}
	if raw.PValue > 1e-6 {
		t.Errorf("raw %s: p = %g, want < 1e-6", SkewedColumn, raw.PValue)
	}

	logged := make([]float64, len(values))
	for i, v := range values {
		logged[i] = math.Log(v)
	}
	res, err := stats.ShapiroWilk("log_"+SkewedColumn, logged)
	if err != nil {
		t.Fatalf("ShapiroWilk() error = %v", err)
	}
	if res.Rejected() {
		t.Errorf("logged %s: normality rejected (W = %.4f, p = %g)", SkewedColumn, res.W, res.PValue)
	}
	if res.PValue < 0.5 {
		t.Errorf("logged %s: p = %g, want well above the 0.05 level", SkewedColumn, res.PValue)
	}
}

func TestLoadClassificationSchema(t *testing.T) {
	df, err := LoadClassification()
	if err != nil {
		t.Fatalf("LoadClassification() error = %v", err)
	}

	if got := df.Nrow(); got != 150 {
		t.Errorf("Nrow() = %d, want 150", got)
	}
	if got := df.Ncol(); got != 5 {
		t.Errorf("Ncol() = %d, want 5", got)
	}

	counts := map[string]int{}
	for _, label := range df.Col(ClassificationLabel).Records() {
		counts[label]++
	}
	if len(counts) != 3 {
		t.Fatalf("label cardinality = %d, want 3 (%v)", len(counts), counts)
	}
	for _, class := range Classes() {
		if counts[class] != 50 {
			t.Errorf("count[%s] = %d, want 50", class, counts[class])
		}
	}
}

func TestLoadByName(t *testing.T) {
	if _, err := Load(Regression); err != nil {
		t.Errorf("Load(%q) error = %v", Regression, err)
	}
	if _, err := Load(Classification); err != nil {
		t.Errorf("Load(%q) error = %v", Classification, err)
	}

	_, err := Load("wine")
	if err == nil {
		t.Fatal("Load(\"wine\") succeeded, want DatasetUnavailableError")
	}
	var unavailable *errors.DatasetUnavailableError
	if !errors.As(err, &unavailable) {
		t.Errorf("error is not DatasetUnavailableError: %v", err)
	}
	if unavailable.Name != "wine" {
		t.Errorf("DatasetUnavailableError.Name = %q, want %q", unavailable.Name, "wine")
	}
}
