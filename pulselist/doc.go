// Package pulselist implements the per-channel ordered collection of timed,
// phased pulse items and the sampler that renders them onto a fixed-length
// complex sample buffer.
//
// This is the arithmetic heart of the compiler: envelope and carrier
// contributions from every pulse item are accumulated onto the output
// buffer with sub-sample time alignment, and a DRAG correction term is
// added from the envelope's numeric derivative (a central difference,
// matching numpy.gradient semantics — see Item and PulseList.Sample).
package pulselist
