// Package schedule defines the request data model: channel descriptors,
// pulse shape references, and the closed tree of schedule elements that the
// layout engine measures, arranges, and renders.
//
// The element hierarchy mirrors a small closed sum type. Every variant
// (Play, ShiftPhase, SetPhase, ShiftFrequency, SetFrequency, SwapPhase,
// Barrier, Repeat, Stack, Absolute, Grid) embeds Common, which carries the
// layout attributes — margin, alignment, visibility, requested/min/max
// duration — shared by every node kind. The Element interface is closed:
// only types in this package may implement it, so a type switch over its
// variants in the layout package is exhaustive by construction.
package schedule
