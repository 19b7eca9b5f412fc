package overlay

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/shopfront/prefabs"
	"github.com/milk9111/shopfront/state"
	"github.com/milk9111/shopfront/timer"
)

type fakePlatform struct {
	opened []string
	copied []string
}

func (f *fakePlatform) OpenURL(url string) error {
	f.opened = append(f.opened, url)
	return nil
}

func (f *fakePlatform) CopyText(text string) error {
	f.copied = append(f.copied, text)
	return nil
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name string
		text string
		max  int
		want []string
	}{
		{name: "fits", text: "hello world", max: 20, want: []string{"hello world"}},
		{name: "breaks", text: "hello big world", max: 9, want: []string{"hello big", "world"}},
		{name: "long word", text: "abcdefghij", max: 4, want: []string{"abcd", "efgh", "ij"}},
		{name: "collapses spaces", text: "  a   b  ", max: 10, want: []string{"a b"}},
		{name: "empty", text: "   ", max: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.text, tt.max)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Fatalf("Wrap(%q, %d) = %q, want %q", tt.text, tt.max, got, tt.want)
			}
		})
	}
}

func TestLayoutSection(t *testing.T) {
	spec := prefabs.SectionSpec{
		ID:    "contact",
		Title: "Get in Touch",
		Blocks: []prefabs.BlockSpec{
			{Kind: "paragraph", Text: strings.Repeat("word ", 60)},
			{Kind: "links", Links: []prefabs.LinkSpec{{Label: "github", URL: "https://github.com/t2ne"}}},
			{Kind: "copy", Text: "hi@t2ne.eu"},
		},
	}
	m := Metrics{CharWidth: 7, LineHeight: 13}
	lines, height := LayoutSection(spec, 400, m)
	if len(lines) < 4 {
		t.Fatalf("expected wrapped paragraph plus actions, got %d lines", len(lines))
	}
	if lines[0].Style != StyleTitle || lines[0].Text != "Get in Touch" {
		t.Fatalf("first line should be the title, got %+v", lines[0])
	}
	prevY := -1.0
	for _, l := range lines {
		if l.Width > 400+1e-9 {
			t.Fatalf("line %q overflows: %v", l.Text, l.Width)
		}
		if l.Y <= prevY {
			t.Fatalf("lines must flow downward")
		}
		prevY = l.Y
	}
	last := lines[len(lines)-1]
	if last.Action.Kind != ActionCopy || last.Action.Target != "hi@t2ne.eu" {
		t.Fatalf("last line should copy the email, got %+v", last.Action)
	}
	if height < last.Y+last.Height-1e-9 {
		t.Fatalf("height %v does not cover the last line", height)
	}
}

func TestToriiTimeline(t *testing.T) {
	tests := []struct {
		name  string
		t     float64
		check func(f ToriiFrame) bool
	}{
		{"start", 0, func(f ToriiFrame) bool { return f.Pillars == 0 && f.LowerBeam == 0 && f.TextAlpha == 0 && f.Background == 1 }},
		{"pillars before delay", 0.5, func(f ToriiFrame) bool { return f.Pillars == 0 }},
		{"pillars mid", 1.0, func(f ToriiFrame) bool { return f.Pillars > 0 && f.Pillars < 1 }},
		{"pillars done", 1.5, func(f ToriiFrame) bool { return f.Pillars == 1 }},
		{"lower beam first", 1.4, func(f ToriiFrame) bool { return f.LowerBeam > 0 && f.UpperBeam == 0 }},
		{"beams done", 2.4, func(f ToriiFrame) bool { return f.LowerBeam == 1 && f.UpperBeam == 1 }},
		{"ring hidden", 1.79, func(f ToriiFrame) bool { return f.RingAlpha == 0 }},
		{"text after two seconds", 2.5, func(f ToriiFrame) bool { return f.TextAlpha == 1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if f := ToriiAt(tt.t, -1); !tt.check(f) {
				t.Fatalf("unexpected frame at %v: %+v", tt.t, f)
			}
		})
	}

	a := ToriiAt(1.8+1, -1).RingAngle
	b := ToriiAt(1.8+1+ringPeriod, -1).RingAngle
	if math.Abs(a-b) > 1e-9 {
		t.Fatalf("inner ring should repeat every %v s: %v vs %v", ringPeriod, a, b)
	}
}

func TestLoadingOverlayLifecycle(t *testing.T) {
	sched := timer.New()
	store := state.NewStore(sched, state.Options{})
	l := NewLoading(store)

	step := func(d time.Duration) {
		for elapsed := time.Duration(0); elapsed < d; elapsed += time.Second / 60 {
			sched.Advance(time.Second / 60)
			l.Update(1.0 / 60)
		}
	}

	step(2900 * time.Millisecond)
	if !l.Visible() || l.Frame().Background != 1 {
		t.Fatalf("splash must be fully visible before 3 s")
	}
	step(200 * time.Millisecond)
	if store.Loading() {
		t.Fatalf("loading flag should drop at 3 s")
	}
	if !l.Visible() {
		t.Fatalf("splash should still be fading")
	}
	step(1100 * time.Millisecond)
	if l.Visible() {
		t.Fatalf("splash should be gone after the fade, background %v", l.Frame().Background)
	}
}

func newTestPanel(t *testing.T) (*Panel, *state.Store, *timer.Scheduler, *fakePlatform) {
	t.Helper()
	spec, err := prefabs.LoadSectionsSpec()
	if err != nil {
		t.Fatalf("load sections: %v", err)
	}
	sched := timer.New()
	store := state.NewStore(sched, state.Options{})
	platform := &fakePlatform{}
	return NewPanel(store, spec, platform), store, sched, platform
}

func settle(p *Panel, in PanelInput, frames int) {
	for i := 0; i < frames; i++ {
		p.Update(in, 800, 600)
	}
}

func TestPanelShowsAndHides(t *testing.T) {
	p, store, sched, _ := newTestPanel(t)

	if err := store.SelectSection(state.SectionProjects, mgl64.Vec3{-2, 1.5, 1}); err != nil {
		t.Fatalf("select: %v", err)
	}
	if p.Shown() != state.SectionProjects || !p.Visible() {
		t.Fatalf("panel should open on select")
	}
	p.Update(PanelInput{}, 800, 600)
	if p.Alpha() >= 1 {
		t.Fatalf("panel should fade in, not pop")
	}
	settle(p, PanelInput{}, 120)
	if math.Abs(p.Alpha()-1) > 0.01 || math.Abs(p.offset) > 0.5 {
		t.Fatalf("panel should settle in place, alpha %v offset %v", p.Alpha(), p.offset)
	}

	sched.Advance(state.DefaultTransitionDuration)
	store.DeselectSection()
	if p.Visible() {
		t.Fatalf("deselect should hide the panel")
	}
	if p.Shown() != state.SectionProjects {
		t.Fatalf("content stays during the exit animation")
	}
	settle(p, PanelInput{}, 120)
	if p.Shown() != state.SectionNone || p.Blocking() {
		t.Fatalf("panel should be gone after the exit animation")
	}
}

func TestPanelScrollLockedWhileTransitioning(t *testing.T) {
	p, store, sched, _ := newTestPanel(t)
	_ = store.SelectSection(state.SectionAbout, mgl64.Vec3{2, 1.5, 1})

	settle(p, PanelInput{Wheel: -3}, 10)
	if p.Scroll() != 0 {
		t.Fatalf("scroll must be locked during the transition, got %v", p.Scroll())
	}

	sched.Advance(state.DefaultTransitionDuration)
	settle(p, PanelInput{}, 60)
	p.Update(PanelInput{Wheel: -3}, 800, 300)
	if p.Scroll() <= 0 {
		t.Fatalf("scroll should move once the transition ends")
	}
}

func TestPanelLinkClick(t *testing.T) {
	p, store, sched, platform := newTestPanel(t)
	_ = store.SelectSection(state.SectionContact, mgl64.Vec3{1, 2.2, 1.6})
	sched.Advance(state.DefaultTransitionDuration)
	settle(p, PanelInput{}, 120)

	var target *Line
	for i := range p.lines {
		if p.lines[i].Action.Kind == ActionCopy {
			target = &p.lines[i]
		}
	}
	if target == nil {
		t.Fatalf("contact panel has no copy action")
	}
	x, y, _, _ := p.cardRect()
	click := PanelInput{X: x + panelPadding + 2, Y: y + panelPadding + target.Y + 2, Clicked: true}
	p.Update(click, 800, 600)
	if len(platform.copied) != 1 || platform.copied[0] != "hi@t2ne.eu" {
		t.Fatalf("copied = %v", platform.copied)
	}
	if len(platform.opened) != 0 {
		t.Fatalf("copy should not open links")
	}
}
