package view

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"landscape/internal/color"
	"landscape/internal/render"
	"landscape/internal/signature"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	ss.SetSize(w, h)
	if err := ss.Init(); err != nil {
		t.Fatalf("SimulationScreen.Init: %v", err)
	}
	ss.SetSize(w, h)
	return ss
}

// TestDrawFlipsRows: grid row 0 is the scene bottom, so it must land on the
// last screen row the grid covers.
func TestDrawFlipsRows(t *testing.T) {
	ss := newTestScreen(t, 4, 4)
	defer ss.Fini()

	grid := render.Grid{
		{{Ch: 'b', FG: color.RGB{R: 255, G: 255, B: 255}, BG: color.RGB{}}},
		{{Ch: 't', FG: color.RGB{R: 255, G: 255, B: 255}, BG: color.RGB{}}},
	}
	Draw(ss, grid)
	ss.Show()

	top, _, _, _ := ss.GetContent(0, 0)
	bottom, _, _, _ := ss.GetContent(0, 1)
	if top != 't' || bottom != 'b' {
		t.Errorf("screen rows = %q, %q; want t above b", top, bottom)
	}
}

func TestDrawStatusTruncates(t *testing.T) {
	ss := newTestScreen(t, 5, 2)
	defer ss.Fini()

	drawStatus(ss, 1, "landscape")
	ss.Show()

	want := "lands"
	for x := 0; x < 5; x++ {
		ch, _, _, _ := ss.GetContent(x, 1)
		if ch != rune(want[x]) {
			t.Errorf("status col %d = %q, want %q", x, ch, want[x])
		}
	}
}

func TestKeyToAction(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want Action
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), ActionQuit},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionQuit},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone), ActionQuit},
		{tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), ActionRegenerate},
		{tcell.NewEventKey(tcell.KeyRune, 'T', tcell.ModNone), ActionCycleTime},
		{tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), ActionCycleWeather},
		{tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone), ActionCycleSeason},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), ActionNone},
	}
	for _, tc := range cases {
		if got := keyToAction(tc.ev); got != tc.want {
			t.Errorf("keyToAction(%v) = %d, want %d", tc.ev, got, tc.want)
		}
	}
}

// TestViewerDrawFrame renders one frame into a simulation screen and checks
// the status line carries the signature.
func TestViewerDrawFrame(t *testing.T) {
	ss := newTestScreen(t, 40, 12)
	defer ss.Fini()

	cfg, err := signature.FromParams(7, []string{"ocean", "mountains"}, "clear_day")
	if err != nil {
		t.Fatal(err)
	}
	v, err := NewViewer(ss, cfg)
	if err != nil {
		t.Fatal(err)
	}
	v.drawFrame()

	sig := cfg.Encode()
	for i, want := range sig {
		ch, _, _, _ := ss.GetContent(i, 11)
		if ch != want {
			t.Fatalf("status col %d = %q, want %q", i, ch, want)
		}
	}

	// The scene rows above the status line must be painted.
	blank := true
	for y := 0; y < 11 && blank; y++ {
		for x := 0; x < 40; x++ {
			if ch, _, _, _ := ss.GetContent(x, y); ch != ' ' && ch != 0 {
				blank = false
				break
			}
		}
	}
	if blank {
		t.Error("no scene content rendered above the status line")
	}
}
