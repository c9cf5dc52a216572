package evaluation

import (
	"math"
	"math/rand/v2"
	"sort"

	"github.com/ShyamSundarVijayakumar/eda-for-data-science-and-ml/pkg/errors"
)

// TrainTestSplit partitions the row indices 0..n-1 into a training and a
// test set. The test set holds round(testFraction × n) rows, at least one
// row always remaining on each side. The shuffle is driven entirely by the
// seed, so equal seeds give equal partitions.
func TrainTestSplit(n int, testFraction float64, seed uint64) (train, test []int, err error) {
	if n < 2 {
		return nil, nil, errors.NewValueError("TrainTestSplit", "need at least 2 rows to split")
	}
	if testFraction <= 0 || testFraction >= 1 {
		return nil, nil, errors.NewValueError("TrainTestSplit", "test fraction must be in (0, 1)")
	}

	nTest := int(math.Round(testFraction * float64(n)))
	if nTest < 1 {
		nTest = 1
	}
	if nTest > n-1 {
		nTest = n - 1
	}

	r := rand.New(rand.NewPCG(seed, seed))
	perm := r.Perm(n)

	test = append([]int(nil), perm[:nTest]...)
	train = append([]int(nil), perm[nTest:]...)
	sort.Ints(test)
	sort.Ints(train)

	return train, test, nil
}
