// meta/meta.go
package meta

// DEFAULT_SAMPLES is the number of samples per simulation run.
const DEFAULT_SAMPLES = 100

// DEFAULT_TRIALS is the number of trials per sample.
const DEFAULT_TRIALS = 100

// DEFAULT_SEED seeds the random source when no seed is given.
const DEFAULT_SEED = 1

// PROGRESS_STEPS is how many progress events a simulation run logs.
const PROGRESS_STEPS = 10

// MAX_STATES bounds a puzzle search unless overridden.
const MAX_STATES = 1_000_000

// Beer barrel puzzle
const (
	BARREL_CAPACITY = 120
	SMALL_VESSEL    = 5
	LARGE_VESSEL    = 7
	TARGET_AMOUNT   = 1
)
