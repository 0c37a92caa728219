// Package experiment times sort strategies against generated inputs and
// aggregates the repeated measurements into mean-time series.
//
// Measurement protocol (per requested size, in the given order):
//  1. Generate ONE base array with the session's sequence.Generator.
//  2. Repeat R times (R = 5 by default):
//     restore a working copy from the base array (untimed), then time the
//     sort call alone between a start mark and an end mark.
//  3. Truncate every run to whole microseconds, sum, and divide by R with
//     integer (truncating) division.
//
// The result is a Series aligned positionally with the requested sizes.
// Runs are strictly sequential: concurrent sorts would contend for cores
// and caches and skew the very numbers being measured.
//
// Observability:
//   - WithLogger attaches a *zap.Logger; every Run gets a fresh run_id.
//   - WithMetrics records each timed run into Prometheus collectors.
package experiment
