package builder_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/pulsegen/builder"
	"github.com/katalvlaran/pulsegen/pgerrors"
	"github.com/katalvlaran/pulsegen/schedule"
)

func TestNewRequest_PreregistersShapeNames(t *testing.T) {
	req := builder.NewRequest()

	if id, err := req.ShapeID("rect"); err != nil || id != -1 {
		t.Errorf("ShapeID(rect) = %d, %v; want -1, nil", id, err)
	}
	if id, err := req.ShapeID("hann"); err != nil || id != 0 {
		t.Errorf("ShapeID(hann) = %d, %v; want 0, nil", id, err)
	}
	if id, err := req.ShapeID("triangle"); err != nil || id != 1 {
		t.Errorf("ShapeID(triangle) = %d, %v; want 1, nil", id, err)
	}
}

func TestAddChannel_AssignsSequentialIDsAndRejectsDuplicates(t *testing.T) {
	req := builder.NewRequest()

	id0, err := req.AddChannel("q0", 5e9, 2e9, 0, 1024, 0)
	if err != nil || id0 != 0 {
		t.Fatalf("AddChannel(q0) = %d, %v; want 0, nil", id0, err)
	}
	id1, err := req.AddChannel("q1", 5.1e9, 2e9, 0, 1024, 0)
	if err != nil || id1 != 1 {
		t.Fatalf("AddChannel(q1) = %d, %v; want 1, nil", id1, err)
	}

	if _, err := req.AddChannel("q0", 5e9, 2e9, 0, 1024, 0); !errors.Is(err, pgerrors.ErrDuplicateChannelName) {
		t.Errorf("AddChannel(q0) duplicate: got %v, want ErrDuplicateChannelName", err)
	}
}

func TestChannelID_UnknownNameIsAnError(t *testing.T) {
	req := builder.NewRequest()
	if _, err := req.ChannelID("nope"); !errors.Is(err, pgerrors.ErrUnknownChannelName) {
		t.Errorf("ChannelID(nope) = %v, want ErrUnknownChannelName", err)
	}
}

func TestAddInterpolatedShape_ValidatesAndRegisters(t *testing.T) {
	req := builder.NewRequest()

	id, err := req.AddInterpolatedShape("custom", []float64{-0.5, 0, 0.5}, []float64{0, 1, 0})
	if err != nil {
		t.Fatalf("AddInterpolatedShape: unexpected error %v", err)
	}
	if id != 2 {
		t.Errorf("AddInterpolatedShape id = %d, want 2 (after rect/hann/triangle)", id)
	}

	if _, err := req.AddInterpolatedShape("custom", []float64{0}, []float64{0}); !errors.Is(err, pgerrors.ErrDuplicateShapeName) {
		t.Errorf("duplicate shape name: got %v, want ErrDuplicateShapeName", err)
	}

	if _, err := req.AddInterpolatedShape("bad", []float64{0.6}, []float64{1}); !errors.Is(err, pgerrors.ErrMalformedInterpolatedShape) {
		t.Errorf("out-of-range xs: got %v, want ErrMalformedInterpolatedShape", err)
	}
}

func TestBuild_AssemblesChannelsShapesAndSchedule(t *testing.T) {
	req := builder.NewRequest()
	ch, _ := req.AddChannel("q0", 5e9, 2e9, 0, 1024, 0)

	root := builder.Play(ch, -1, 10e-9, 0, 0, 0, 1, 0)
	out := req.Build(root)

	if len(out.Channels) != 1 || out.Channels[0].Name != "q0" {
		t.Fatalf("Build channels = %+v, want one channel named q0", out.Channels)
	}
	if len(out.Shapes) != 2 {
		t.Fatalf("Build shapes = %d, want 2 (hann, triangle)", len(out.Shapes))
	}
	if _, ok := out.Schedule.(schedule.Play); !ok {
		t.Fatalf("Build schedule = %T, want schedule.Play", out.Schedule)
	}
}

func TestElementSugar_CommonOptionsApply(t *testing.T) {
	play := builder.Play(0, -1, 10e-9, 5e-9, 0, 0, 1, 0,
		builder.WithMargin(1e-9, 2e-9),
		builder.WithAlignment(schedule.AlignCenter),
		builder.Invisible(),
	)
	if play.MarginLo != 1e-9 || play.MarginHi != 2e-9 {
		t.Errorf("margins = %g, %g; want 1e-9, 2e-9", play.MarginLo, play.MarginHi)
	}
	if play.Alignment != schedule.AlignCenter {
		t.Errorf("alignment = %v, want AlignCenter", play.Alignment)
	}
	if play.Visibility {
		t.Errorf("visibility = true, want false (Invisible applied)")
	}
}

func TestFlexiblePlay_SetsFlexibleFlag(t *testing.T) {
	play := builder.FlexiblePlay(0, -1, 10e-9, 0, 0, 1, 0)
	if !play.Flexible {
		t.Errorf("Flexible = false, want true")
	}
}

func TestStackAndAbsoluteSugar_WireChildren(t *testing.T) {
	stack := builder.Stack(schedule.Backwards, []schedule.Element{
		builder.Play(0, -1, 10e-9, 0, 0, 0, 1, 0),
		builder.Play(0, -1, 10e-9, 0, 0, 0, 1, 0),
	})
	if len(stack.Elements) != 2 {
		t.Fatalf("Stack elements = %d, want 2", len(stack.Elements))
	}

	abs := builder.Absolute([]schedule.AbsoluteEntry{
		builder.At(0, builder.Play(0, -1, 5e-9, 0, 0, 0, 1, 0)),
		builder.At(20e-9, builder.Play(0, -1, 5e-9, 0, 0, 0, 1, 0)),
	})
	if len(abs.Elements) != 2 || abs.Elements[1].Time != 20e-9 {
		t.Fatalf("Absolute entries = %+v, want second entry at 20e-9", abs.Elements)
	}
}
