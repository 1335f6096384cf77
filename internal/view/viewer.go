package view

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"landscape/internal/render"
	"landscape/internal/signature"
	"landscape/internal/terrain"
)

// Action represents a viewer key command.
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionRegenerate
	ActionCycleTime
	ActionCycleWeather
	ActionCycleSeason
)

// keyToAction maps a tcell key event to a viewer action.
func keyToAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	}

	switch ev.Rune() {
	case 'q', 'Q':
		return ActionQuit
	case 'r', 'R':
		return ActionRegenerate
	case 't', 'T':
		return ActionCycleTime
	case 'w', 'W':
		return ActionCycleWeather
	case 'n', 'N':
		return ActionCycleSeason
	}
	return ActionNone
}

// Viewer renders one scene config interactively: each keypress adjusts the
// config and the next frame re-renders from scratch.
type Viewer struct {
	screen tcell.Screen
	cfg    *signature.SceneConfig
	biomes []*terrain.Biome
	rng    *rand.Rand
}

// NewViewer resolves the config's biomes and wraps the screen.
func NewViewer(screen tcell.Screen, cfg *signature.SceneConfig) (*Viewer, error) {
	biomes, err := cfg.ResolveBiomes()
	if err != nil {
		return nil, err
	}
	return &Viewer{
		screen: screen,
		cfg:    cfg,
		biomes: biomes,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// Run blocks until the user quits or the screen is torn down. The caller
// owns the screen and is responsible for Fini.
func (v *Viewer) Run() {
	for {
		v.drawFrame()

		ev := v.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			// Screen finalized under us (e.g. SSH session closed).
			return
		case *tcell.EventResize:
			v.screen.Sync()
		case *tcell.EventKey:
			switch keyToAction(ev) {
			case ActionQuit:
				return
			case ActionRegenerate:
				v.cfg.Seed = v.rng.Intn(signature.MaxSeed + 1)
			case ActionCycleTime:
				v.cfg.Time = v.cfg.Time.Next()
			case ActionCycleWeather:
				v.cfg.Weather = v.cfg.Weather.Next()
			case ActionCycleSeason:
				v.cfg.Season = v.cfg.Season.Next()
			}
		}
	}
}

// drawFrame renders the scene at the current screen size, with the bottom
// row reserved for the status line.
func (v *Viewer) drawFrame() {
	w, h := v.screen.Size()
	if w < 2 || h < 2 {
		return
	}

	scene := &render.Scene{
		Seed:   int64(v.cfg.Seed),
		Biomes: v.biomes,
		Atmos:  v.cfg.Atmosphere(),
	}
	grid := scene.Render(w, h-1, w)

	v.screen.Clear()
	Draw(v.screen, grid)
	drawStatus(v.screen, h-1, v.statusText())
	v.screen.Show()
}

func (v *Viewer) statusText() string {
	return fmt.Sprintf("%s  %s  [r]egen [t]ime [w]eather seaso[n] [q]uit",
		v.cfg.Encode(), v.cfg.Label())
}
