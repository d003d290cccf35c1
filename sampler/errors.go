package sampler

import "errors"

var (
	// ErrInvalidSamples is returned when fewer than two samples are requested;
	// the sample standard deviation is undefined below that.
	ErrInvalidSamples = errors.New("sampler: need at least 2 samples")

	// ErrInvalidTrials is returned when a sample would run no trials.
	ErrInvalidTrials = errors.New("sampler: need at least 1 trial per sample")

	// ErrInvalidBounds is returned for an interval whose Min exceeds its Max.
	ErrInvalidBounds = errors.New("sampler: bounds min exceeds max")

	// ErrNilTrial is returned when no trial function is given.
	ErrNilTrial = errors.New("sampler: nil trial")
)
