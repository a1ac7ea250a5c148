// Package pulsegen compiles a qubit-control pulse schedule into per-channel
// complex baseband waveforms.
//
// A caller assembles a schedule.Request (channel metadata, a shape
// dictionary, and a schedule tree — see package schedule and, for
// ergonomic construction, package builder), then calls Run. Run measures
// and arranges the schedule tree (package layout), renders it against a
// per-channel phase/frequency tracker (package phasetracker) to produce
// pulse lists (package pulselist), then delays and samples each channel's
// pulse list onto a complex buffer at its declared sample rate.
//
// The compile is pure and single-threaded except for the final per-channel
// sampling step, which may run one goroutine per channel since channels
// never share mutable state.
package pulsegen
