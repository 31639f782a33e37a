package ring

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/garrettladley/lumi/internal/color"
)

func TestLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		setup func(c *Controller)
		want  string
	}{
		{name: "fresh ring", setup: func(*Controller) {}, want: "ALL ON"},
		{name: "all lit", setup: func(c *Controller) { c.SetAll(true) }, want: "ALL OFF"},
		{
			name: "partially lit without focus",
			setup: func(c *Controller) {
				c.Tap(2)
				c.ClearFocus()
			},
			want: "ALL ON",
		},
		{name: "focused lit segment", setup: func(c *Controller) { c.Tap(2) }, want: "OFF 3"},
		{
			name: "focused dark segment",
			setup: func(c *Controller) {
				c.Tap(0)
				c.PressCenter()
			},
			want: "ON 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newTestController()
			tt.setup(c)
			if got := Label(c.View()); got != tt.want {
				t.Errorf("Label() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	style := DefaultStyle()
	c := newTestController()
	c.Tap(5)

	scene := Render(c.View(), style)

	for i, fill := range scene.Fills {
		if fill.Segment != i {
			t.Errorf("fill %d has segment %d", i, fill.Segment)
		}
		if len(fill.Polygon) != 4 {
			t.Errorf("fill %d has %d vertices", i, len(fill.Polygon))
		}
		if i == 5 {
			if !fill.Active || fill.Color != red.Blend(style.Background, style.FillAlpha) {
				t.Errorf("lit fill = %+v", fill)
			}
			continue
		}
		if fill.Active || fill.Color != style.Inactive {
			t.Errorf("dark fill %d = %+v", i, fill)
		}
	}

	if n := len(scene.Strokes); n != 24 {
		t.Errorf("len(Strokes) = %d, want 24", n)
	}
	if scene.Tick == nil {
		t.Fatal("focused scene has no tick")
	}
	if scene.Fills[5].Polygon.Contains(scene.Tick.From) || scene.Geometry.OuterOctagon().Contains(scene.Tick.From) {
		t.Errorf("tick starts at %+v, want outside the ring", scene.Tick.From)
	}
	if scene.Center.Label != "OFF 6" || scene.Center.Pressed {
		t.Errorf("center = %+v", scene.Center)
	}
}

func TestRenderIsPure(t *testing.T) {
	t.Parallel()

	c := newTestController()
	c.Tap(1)
	c.Tap(6)
	v := c.View()

	a := Render(v, DefaultStyle())
	b := Render(v, DefaultStyle())
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("Render not deterministic (-first +second):\n%s", diff)
	}
}

func TestRenderPressedCenter(t *testing.T) {
	t.Parallel()

	c := newTestController()
	c.PointerDown(c.Geometry().Center)

	scene := Render(c.View(), DefaultStyle())
	if !scene.Center.Pressed || scene.Center.Color != red {
		t.Errorf("held center = %+v, want pressed in the session colour", scene.Center)
	}
	if scene.Tick != nil {
		t.Errorf("unfocused scene has a tick: %+v", scene.Tick)
	}
}

func TestRenderZeroGeometry(t *testing.T) {
	t.Parallel()

	c := NewController(0, color.Yellow)
	scene := Render(c.View(), DefaultStyle())
	if scene.Strokes != nil || scene.Tick != nil {
		t.Errorf("zero geometry produced drawing: %+v", scene)
	}
}
