// Package phasetracker implements the per-channel running frequency/phase
// accumulator that the layout engine's render pass drives. It is the single
// mutable state threaded explicitly through rendering — never hidden behind
// package-level globals, per the design notes in spec.md.
package phasetracker
