// Package shape implements the unit-normalized envelope profiles a pulse
// can ride on: Hann, Triangle, and an arbitrary Interpolated shape built
// from a small set of (x, y) support points.
//
// Every Shape is unit-normalized over x in (-0.5, 0.5) and evaluates to
// zero outside that open interval, including at the two endpoints.
//
// Interpolated shapes use barycentric polynomial interpolation over the
// supplied nodes. The interpolation weights are computed once, in
// NewInterpolated, and reused for every Sample call — shapes are
// constructed once per request (see the pulsegen package) and are safe to
// share across channels and goroutines once built, since Sample never
// mutates shape state.
package shape
