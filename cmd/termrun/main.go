package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/phaserunner/common"
	"github.com/milk9111/phaserunner/prefabs"
	"github.com/milk9111/phaserunner/runner"
	"github.com/milk9111/phaserunner/save"
)

const keyStep = 28.0

var styles = map[cellKind]tcell.Style{
	cellSolid:       tcell.StyleDefault.Foreground(tcell.ColorDodgerBlue),
	cellGhost:       tcell.StyleDefault.Foreground(tcell.ColorMediumOrchid),
	cellNeutral:     tcell.StyleDefault.Foreground(tcell.ColorSlateGray),
	cellOrbSolid:    tcell.StyleDefault.Foreground(tcell.ColorDodgerBlue).Bold(true),
	cellOrbGhost:    tcell.StyleDefault.Foreground(tcell.ColorMediumOrchid).Bold(true),
	cellPlayerSolid: tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDodgerBlue),
	cellPlayerGhost: tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorMediumOrchid),
}

type Game struct {
	screen tcell.Screen
	runner *runner.Runner
	start  time.Time
	result *runner.Result
	cols   int
	rows   int
}

func NewGame(r *runner.Runner) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	g := &Game{screen: screen, runner: r, start: time.Now()}
	g.cols, g.rows = screen.Size()
	r.OnGameOver(func(res runner.Result) {
		g.result = &res
	})
	return g, nil
}

// area is the corridor's share of the terminal: full height minus the status
// line, with a width that keeps the corridor's aspect roughly right for
// cells twice as tall as wide.
func (g *Game) area() grid {
	t := g.runner.Tuning()
	rows := g.rows - 1
	cols := int(float64(rows) * t.Corridor.Width / t.Corridor.Height * 2)
	if cols > g.cols {
		cols = g.cols
	}
	return grid{cols: max(cols, 1), rows: max(rows, 1), width: t.Corridor.Width, height: t.Corridor.Height}
}

func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		switch ev.Key() {
		case tcell.KeyLeft:
			g.runner.NudgePlayerX(-keyStep)
		case tcell.KeyRight:
			g.runner.NudgePlayerX(keyStep)
		case tcell.KeyEnter:
			g.restartIfIdle()
		case tcell.KeyRune:
			switch ev.Rune() {
			case ' ', 'k':
				g.runner.TogglePhaseIfAllowed()
			case 'h':
				g.runner.NudgePlayerX(-keyStep)
			case 'l':
				g.runner.NudgePlayerX(keyStep)
			case 'r':
				g.restartIfIdle()
			case 'q':
				return false
			}
		}
	case *tcell.EventResize:
		g.cols, g.rows = g.screen.Size()
		g.screen.Sync()
	}
	return true
}

func (g *Game) restartIfIdle() {
	if g.runner.State() == runner.StateRunning {
		return
	}
	g.result = nil
	g.runner.Restart()
}

func (g *Game) draw() {
	s := g.runner.Snapshot()
	area := g.area()

	g.screen.Clear()
	if s.State != runner.StateReady {
		paint(s, area, func(col, row int, r rune, k cellKind) {
			g.screen.SetContent(col, row, r, nil, styles[k])
		})
	}
	for row := 0; row < area.rows; row++ {
		g.screen.SetContent(area.cols, row, '│', nil, tcell.StyleDefault.Foreground(tcell.ColorGray))
	}

	status := fmt.Sprintf(" score %d  best %d  %s", s.Score, s.Best, s.Player.Phase)
	switch {
	case s.State == runner.StateReady:
		status = " enter to start, space flips phase, arrows or h/l move, q quits"
	case g.result != nil:
		status = fmt.Sprintf(" game over: %d (best %d)  r to restart", g.result.Score, g.result.Best)
	case s.Cooldown > 0:
		status += fmt.Sprintf("  cooldown %.0fms", s.Cooldown)
	}
	for i, r := range []rune(status) {
		g.screen.SetContent(i, g.rows-1, r, nil, tcell.StyleDefault.Reverse(true))
	}
	g.screen.Show()
}

func (g *Game) run() {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}
		case <-ticker.C:
			g.runner.Step(time.Since(g.start))
			g.draw()
		}
	}
}

func (g *Game) cleanup() {
	g.screen.Fini()
}

func main() {
	seed := flag.Uint64("seed", 0, "obstacle seed (0 picks one from the clock)")
	saveDir := flag.String("save", "", "directory for the best score (default: user config dir)")
	logPath := flag.String("log", "", "write logs to this file instead of discarding them")
	flag.Parse()

	// The terminal belongs to tcell; logs go to a file or nowhere.
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	tuning, err := prefabs.LoadTuning()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	opts := []runner.Option{runner.WithSource(common.NewSource(*seed))}
	dir := *saveDir
	if dir == "" {
		if d, err := save.DefaultDir(); err == nil {
			dir = d
		}
	}
	if dir != "" {
		opts = append(opts, runner.WithBestStore(save.NewStore(dir)))
	}

	r, err := runner.New(tuning, opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	g, err := NewGame(r)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer g.cleanup()
	g.run()
}
