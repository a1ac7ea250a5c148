// Package layout implements the two-pass measure/arrange/render engine
// that turns a schedule.Element tree into phase tracker mutations and,
// transitively, per-channel pulse list items.
//
// Every node kind shares the same margin/min/max-duration clamp algebra in
// the base type's Measure and Arrange methods; New dispatches on the
// concrete schedule.Element type to build one node per tree position, the
// way the root driver builds one node tree per compile. A node walks
// Fresh -> Measured -> Arranged; Render requires Arranged but, unlike
// Measure and Arrange, is not single-shot — Repeat renders the same child
// node multiple times at different offsets.
package layout
