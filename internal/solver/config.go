package solver

import "fairassign/internal/builder"

// Config is the single struct spec.md §6 asks for: backend parallelism,
// LP relaxation aggressiveness, an optional wall-clock deadline, search
// logging, and the wish-rank objective weights. CapacityBuffer is carried
// here only for traceability; it is applied by the ingestion layer, never
// by the core.
type Config struct {
	NumWorkers         int
	LinearizationLevel int
	MaxWallSeconds     float64
	LogProgress        bool
	ObjectiveWeights   builder.Weights
	CapacityBuffer     float64
}

// DefaultConfig matches spec.md §6's defaults.
func DefaultConfig() Config {
	return Config{
		NumWorkers:         8,
		LinearizationLevel: 2,
		MaxWallSeconds:     0,
		LogProgress:        false,
		ObjectiveWeights:   builder.DefaultWeights(),
		CapacityBuffer:     1.20,
	}
}
