// Package stats summarises classified connection weights and derives the
// percentile thresholds written to the detector configuration.
//
// Summaries refuse empty input instead of defaulting to zero, and the
// percentile helpers surface an index underflow as CalibrationIndexError
// unless the caller opts into clamping.
package stats
