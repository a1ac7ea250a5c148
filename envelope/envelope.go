package envelope

import "github.com/katalvlaran/pulsegen/shape"

// Envelope is the time-domain profile of a single pulse.
type Envelope struct {
	Shape   shape.Shape // nil means rectangular
	Width   float64
	Plateau float64
}

// Duration returns width+plateau, the total support of the envelope.
func (e Envelope) Duration() float64 {
	return e.Width + e.Plateau
}

// Sample evaluates the envelope at each time offset in t (t=0 is the start
// of the rising edge). Values outside [0, Duration()) are zero.
func (e Envelope) Sample(t []float64) []float64 {
	if e.Shape == nil {
		return e.sampleRectangular(t)
	}
	return e.sampleShaped(t)
}

func (e Envelope) sampleRectangular(t []float64) []float64 {
	out := make([]float64, len(t))
	d := e.Duration()
	for i, v := range t {
		if v >= 0 && v < d {
			out[i] = 1
		}
	}
	return out
}

func (e Envelope) sampleShaped(t []float64) []float64 {
	w := e.Width
	t1 := w / 2
	t2 := w/2 + e.Plateau
	t3 := w + e.Plateau

	out := make([]float64, len(t))

	type idxVal struct {
		idx int
		x   float64
	}
	var rising, falling []idxVal

	for i, v := range t {
		switch {
		case v >= 0 && v < t1:
			rising = append(rising, idxVal{i, (v - t1) / w})
		case v >= t1 && v < t2:
			out[i] = 1
		case v >= t2 && v < t3:
			falling = append(falling, idxVal{i, (v - t2) / w})
		}
	}

	if len(rising) > 0 {
		xs := make([]float64, len(rising))
		for i, r := range rising {
			xs[i] = r.x
		}
		ys := e.Shape.Sample(xs)
		for i, r := range rising {
			out[r.idx] = ys[i]
		}
	}
	if len(falling) > 0 {
		xs := make([]float64, len(falling))
		for i, r := range falling {
			xs[i] = r.x
		}
		ys := e.Shape.Sample(xs)
		for i, r := range falling {
			out[r.idx] = ys[i]
		}
	}

	return out
}
