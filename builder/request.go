package builder

import (
	"fmt"

	"github.com/katalvlaran/pulsegen/pgerrors"
	"github.com/katalvlaran/pulsegen/schedule"
)

// Request accumulates channels and shapes by name, then assembles a
// schedule.Request once the caller has built a schedule tree. The zero
// value is not usable; construct with NewRequest.
type Request struct {
	channels   []schedule.Channel
	channelIDs map[string]int
	shapes     []schedule.ShapeInfo
	shapeIDs   map[string]int
}

// NewRequest returns a Request with the "rect" (-1, rectangular),
// "hann" (0), and "triangle" (1) shape names already registered, matching
// pulsegen_client.pulse.RequestBuilder's constructor.
func NewRequest() *Request {
	return &Request{
		channelIDs: make(map[string]int),
		shapes:     []schedule.ShapeInfo{schedule.HannShape{}, schedule.TriangleShape{}},
		shapeIDs:   map[string]int{"rect": -1, "hann": 0, "triangle": 1},
	}
}

// AddChannel registers a new channel under name and returns its index for
// use as a Play/ShiftPhase/... ChannelID. It returns ErrDuplicateChannelName
// if name was already registered.
func (r *Request) AddChannel(name string, baseFreq, sampleRate, delay float64, length, alignLevel int) (int, error) {
	if _, dup := r.channelIDs[name]; dup {
		return 0, fmt.Errorf("AddChannel(%q): %w", name, pgerrors.ErrDuplicateChannelName)
	}
	id := len(r.channels)
	r.channels = append(r.channels, schedule.Channel{
		Name:       name,
		BaseFreq:   baseFreq,
		SampleRate: sampleRate,
		Delay:      delay,
		Length:     length,
		AlignLevel: alignLevel,
	})
	r.channelIDs[name] = id
	return id, nil
}

// AddInterpolatedShape registers a new interpolated shape under name and
// returns its index for use as a Play ShapeID. xs/ys are validated
// immediately (sorted, within [-0.5, 0.5], equal length) so construction
// failures surface at the call site rather than at compile time.
func (r *Request) AddInterpolatedShape(name string, xs, ys []float64) (int, error) {
	if _, dup := r.shapeIDs[name]; dup {
		return 0, fmt.Errorf("AddInterpolatedShape(%q): %w", name, pgerrors.ErrDuplicateShapeName)
	}
	shapeInfo := schedule.InterpolatedShape{XS: xs, YS: ys}
	if err := shapeInfo.Validate(); err != nil {
		return 0, fmt.Errorf("AddInterpolatedShape(%q): %w", name, err)
	}
	id := len(r.shapes)
	r.shapes = append(r.shapes, shapeInfo)
	r.shapeIDs[name] = id
	return id, nil
}

// ChannelID looks up a channel registered by AddChannel.
func (r *Request) ChannelID(name string) (int, error) {
	id, ok := r.channelIDs[name]
	if !ok {
		return 0, fmt.Errorf("ChannelID(%q): %w", name, pgerrors.ErrUnknownChannelName)
	}
	return id, nil
}

// ShapeID looks up a shape registered by AddInterpolatedShape, or one of
// the three pre-registered names ("rect", "hann", "triangle").
func (r *Request) ShapeID(name string) (int, error) {
	id, ok := r.shapeIDs[name]
	if !ok {
		return 0, fmt.Errorf("ShapeID(%q): %w", name, pgerrors.ErrUnknownShapeName)
	}
	return id, nil
}

// Channels returns the channels registered so far, in AddChannel order.
func (r *Request) Channels() []schedule.Channel {
	return append([]schedule.Channel(nil), r.channels...)
}

// Build assembles a schedule.Request from the registered channels and
// shapes plus the given schedule tree root. root may be nil for an empty
// request.
func (r *Request) Build(root schedule.Element) schedule.Request {
	return schedule.Request{
		Channels: append([]schedule.Channel(nil), r.channels...),
		Shapes:   append([]schedule.ShapeInfo(nil), r.shapes...),
		Schedule: root,
	}
}
