package locator

import "gonum.org/v1/gonum/stat"

// zConfident is the z-score at which a winner is treated as fully
// separated from the rest of the score distribution.
const zConfident = 3.0

// confidence maps the winner's standing in the column-score distribution
// to [0, 1]. A lone sharp edge among flat columns approaches 1; a flat or
// uniformly noisy profile stays near 0.
func confidence(scores []int, best int) float64 {
	if best <= 0 || len(scores) < 2 {
		return 0
	}

	xs := make([]float64, len(scores))
	for i, s := range scores {
		xs[i] = float64(s)
	}

	mean, std := stat.MeanStdDev(xs, nil)
	if std == 0 {
		return 0
	}

	z := (float64(best) - mean) / std
	if z <= 0 {
		return 0
	}
	if z >= zConfident {
		return 1
	}
	return z / zConfident
}
