// Package envelope composes a width+plateau pulse envelope over an
// optional unit Shape.
//
// An Envelope with a nil Shape is the rectangular envelope: constant 1
// over [0, width+plateau) and zero elsewhere. With a Shape, the envelope
// has three regions: a rising half-shape over [0, width/2), a flat
// plateau at 1 over [width/2, width/2+plateau), and a falling half-shape
// over [width/2+plateau, width+plateau). Both shape halves are C0 at
// their region boundary whenever the shape itself is 1 at its own
// center, which holds for Hann and Triangle by construction; an
// Interpolated shape need not satisfy this, and the contract does not
// require it to.
package envelope
