package pgerrors

import "errors"

// Request validation (spec kind: InvalidRequest).
var (
	// ErrInvalidChannelID is returned when an element references a channel
	// index outside [0, len(channels)).
	ErrInvalidChannelID = errors.New("pulsegen: invalid channel id")

	// ErrInvalidShapeID is returned when a Play element references a shape
	// index outside [0, len(shapes)), other than the -1 rectangular sentinel.
	ErrInvalidShapeID = errors.New("pulsegen: invalid shape id")

	// ErrMalformedInterpolatedShape is returned when an interpolated shape's
	// xs/ys lengths differ, or xs is not sorted within [-0.5, 0.5].
	ErrMalformedInterpolatedShape = errors.New("pulsegen: malformed interpolated shape")

	// ErrNonPositiveSampleRate is returned when a channel's sample rate is
	// not strictly positive.
	ErrNonPositiveSampleRate = errors.New("pulsegen: non-positive sample rate")

	// ErrNegativeLength is returned when a channel's declared length is
	// negative.
	ErrNegativeLength = errors.New("pulsegen: negative channel length")
)

// Geometry validation (spec kind: BadGeometry).
var (
	// ErrNaNGeometry is returned when a width, plateau, duration, margin,
	// Absolute entry time, or a channel's base frequency or delay is NaN.
	ErrNaNGeometry = errors.New("pulsegen: NaN in element geometry")

	// ErrMinExceedsMaxDuration is returned when min_duration > max_duration.
	ErrMinExceedsMaxDuration = errors.New("pulsegen: min_duration exceeds max_duration")
)

// Grid length parsing (spec kind: BadGridLength).
var (
	// ErrBadGridLength is returned when a grid-length string cannot be
	// parsed as "auto", "N*", or a float.
	ErrBadGridLength = errors.New("pulsegen: unparsable grid length")
)

// Internal consistency (spec kind: OutOfRange).
var (
	// ErrOutOfRange signals an internal clamp detected an inconsistency —
	// layout.Node.Measure panics wrapping this sentinel when a computed
	// desired_duration falls outside [0, max(available, 0)], which should
	// be unreachable given well-formed geometry. Reported rather than
	// swallowed so a violated clamp invariant surfaces instead of silently
	// producing a wrong waveform.
	ErrOutOfRange = errors.New("pulsegen: internal clamp out of range")
)

// Builder-specific validation: one sentinel per distinct duplicate-name
// failure.
var (
	// ErrDuplicateChannelName is returned by builder.Request.AddChannel when
	// the given name is already registered.
	ErrDuplicateChannelName = errors.New("pulsegen: duplicate channel name")

	// ErrDuplicateShapeName is returned by builder.Request.AddInterpolatedShape
	// when the given name is already registered.
	ErrDuplicateShapeName = errors.New("pulsegen: duplicate shape name")

	// ErrUnknownChannelName is returned when builder sugar references a
	// channel name that was never added.
	ErrUnknownChannelName = errors.New("pulsegen: unknown channel name")

	// ErrUnknownShapeName is returned when builder sugar references a shape
	// name that was never added.
	ErrUnknownShapeName = errors.New("pulsegen: unknown shape name")
)
