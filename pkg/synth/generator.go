package synth

import "math/rand/v2"

// Generator produces rows for one synthetic dataset
type Generator interface {
	// Init initializes the generator with a per-instance random source
	// This eliminates lock contention on the global rand source
	Init(r *rand.Rand)

	// Header returns the CSV column names in output order
	Header() []string

	// Next produces one row with one cell per header column
	Next() ([]string, error)

	// Description returns a human-readable description of the dataset
	Description() string
}

var (
	_ Generator = (*ServerGenerator)(nil)
	_ Generator = (*PayrollGenerator)(nil)
)

// choice picks a uniform random element from a non-empty option set
func choice[T any](r *rand.Rand, options []T) T {
	return options[r.IntN(len(options))]
}
