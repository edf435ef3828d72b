package main

import (
	"fmt"
	"log"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/phaserunner/assets"
	"github.com/milk9111/phaserunner/ecs"
	"github.com/milk9111/phaserunner/prefabs"
	"github.com/milk9111/phaserunner/runner"
	"github.com/milk9111/phaserunner/save"
	"golang.design/x/clipboard"
)

type scene int

const (
	sceneMenu scene = iota
	scenePlaying
	sceneOver
)

// SettingsStore persists the player's settings.
type SettingsStore interface {
	SaveSettings(save.Settings) error
}

type Game struct {
	frames int

	runner   *runner.Runner
	input    *Input
	sounds   *assets.Bank
	render   *renderer
	ui       *ebitenui.UI
	scene    scene
	settings save.Settings
	store    SettingsStore
	mute     bool

	start  time.Time
	result runner.Result
	over   bool
	status string

	clipboardOK bool
	reload      <-chan prefabs.Tuning
}

type GameConfig struct {
	Runner      *runner.Runner
	Settings    save.Settings
	Store       SettingsStore
	Mute        bool
	ClipboardOK bool
	Reload      <-chan prefabs.Tuning
}

func NewGame(cfg GameConfig) *Game {
	g := &Game{
		runner:      cfg.Runner,
		input:       NewInput(),
		settings:    cfg.Settings,
		store:       cfg.Store,
		mute:        cfg.Mute,
		start:       time.Now(),
		clipboardOK: cfg.ClipboardOK,
		reload:      cfg.Reload,
	}
	g.sounds = assets.NewBank(g.muted())
	g.render = newRenderer(newPalette(g.runner.Tuning().Palette))
	g.runner.OnGameOver(func(res runner.Result) {
		g.result = res
		g.over = true
	})
	g.ui = NewMenuUI(g)
	return g
}

func (g *Game) muted() bool {
	return g.mute || !g.settings.Sound
}

func (g *Game) width() float64  { return g.runner.Tuning().Corridor.Width }
func (g *Game) height() float64 { return g.runner.Tuning().Corridor.Height }

func (g *Game) now() time.Duration {
	return time.Since(g.start)
}

func (g *Game) startRun() {
	g.over = false
	g.status = ""
	g.runner.Restart()
	g.scene = scenePlaying
	g.ui = nil
}

func (g *Game) settingsChanged() {
	g.sounds.SetMuted(g.muted())
	if g.store != nil {
		if err := g.store.SaveSettings(g.settings); err != nil {
			log.Printf("save settings: %v", err)
		}
	}
	g.rebuildUI()
}

func (g *Game) rebuildUI() {
	switch g.scene {
	case sceneMenu:
		g.ui = NewMenuUI(g)
	case sceneOver:
		g.ui = NewGameOverUI(g)
	}
}

func (g *Game) copyResult() {
	if !g.clipboardOK {
		return
	}
	line := fmt.Sprintf("Phase Runner: %d (best %d)", g.result.Score, g.result.Best)
	clipboard.Write(clipboard.FmtText, []byte(line))
	g.status = "Copied to clipboard"
	g.rebuildUI()
}

func (g *Game) applyReload() {
	select {
	case t, ok := <-g.reload:
		if !ok {
			g.reload = nil
			return
		}
		if err := g.runner.SetTuning(t); err != nil {
			log.Printf("reload tuning: %v", err)
			return
		}
		g.render = newRenderer(newPalette(t.Palette))
		log.Printf("tuning reloaded; applies to the next run")
	default:
	}
}

func (g *Game) Update() error {
	g.frames++
	now := g.now()
	g.input.Update(now)
	if g.reload != nil {
		g.applyReload()
	}

	if g.input.Quit {
		return ebiten.Termination
	}
	if g.input.Debug {
		g.settings.ShowDebug = !g.settings.ShowDebug
		g.settingsChanged()
	}

	switch g.scene {
	case sceneMenu:
		g.ui.Update()
		if g.input.Confirm {
			g.startRun()
		}
	case scenePlaying:
		g.updatePlaying(now)
	case sceneOver:
		g.ui.Update()
		if g.input.Copy {
			g.copyResult()
		}
		if g.input.Confirm {
			g.startRun()
		}
	}
	return nil
}

func (g *Game) updatePlaying(now time.Duration) {
	in := g.input
	if in.Toggle && g.runner.TogglePhaseIfAllowed() {
		g.sounds.Play(assets.SoundToggle)
	}
	if in.HasTarget && g.settings.Control == save.ControlDrag {
		g.runner.SetPlayerX(in.TargetX)
	}
	if in.Nudge != 0 {
		g.runner.NudgePlayerX(in.Nudge)
	}

	for _, evt := range g.runner.Step(now) {
		switch evt.Kind {
		case ecs.EventPickup:
			g.sounds.Play(assets.SoundPickup)
		case ecs.EventSpecial:
			g.sounds.Play(assets.SoundSpecial)
		case ecs.EventDeath:
			g.sounds.Play(assets.SoundDeath)
		}
	}

	if g.over {
		if g.result.NewBest {
			g.sounds.Play(assets.SoundNewBest)
		}
		g.scene = sceneOver
		g.ui = NewGameOverUI(g)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.runner.Snapshot()
	g.render.drawWorld(screen, snap)
	if g.scene != sceneMenu {
		g.render.drawHUD(screen, snap)
	}
	if g.settings.ShowDebug {
		g.render.drawDebug(screen, snap, ebiten.ActualFPS(), g.frames)
	}
	if g.ui != nil {
		g.ui.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return g.width(), g.height()
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
