package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/phaserunner/common"
	"github.com/milk9111/phaserunner/prefabs"
	"github.com/milk9111/phaserunner/runner"
	"github.com/milk9111/phaserunner/save"
	"golang.design/x/clipboard"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	seed := flag.Uint64("seed", 0, "obstacle seed (0 picks one from the clock)")
	mute := flag.Bool("mute", false, "disable sound")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	saveDir := flag.String("save", "", "directory for best score and settings (default: user config dir)")
	tuningDir := flag.String("tuning", "prefabs", "directory checked for a runner.yaml override; watched for changes")
	flag.Parse()

	prefabs.Dir = *tuningDir
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		log.Fatal(err)
	}

	var store *save.Store
	dir := *saveDir
	if dir == "" {
		dir, err = save.DefaultDir()
		if errors.Is(err, save.ErrNoHome) {
			log.Printf("no config directory; best score will not be kept")
		}
	}
	if dir != "" {
		store = save.NewStore(dir)
	}

	settings := save.DefaultSettings()
	opts := []runner.Option{
		runner.WithSource(common.NewSource(*seed)),
		runner.WithDebug(*debug),
	}
	if store != nil {
		if settings, err = store.LoadSettings(); err != nil {
			log.Printf("load settings: %v", err)
		}
		opts = append(opts, runner.WithBestStore(store))
	}
	if *debug {
		settings.ShowDebug = true
	}

	r, err := runner.New(tuning, opts...)
	if err != nil {
		log.Fatal(err)
	}

	clipboardOK := true
	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
		clipboardOK = false
	}

	cfg := GameConfig{
		Runner:      r,
		Settings:    settings,
		Mute:        *mute,
		ClipboardOK: clipboardOK,
		Reload:      watchTuning(*tuningDir),
	}
	if store != nil {
		cfg.Store = store
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(int(tuning.Corridor.Width), int(tuning.Corridor.Height))
	ebiten.SetWindowTitle("phase runner")

	if err := ebiten.RunGame(NewGame(cfg)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

// watchTuning reloads runner.yaml whenever it changes under dir. It returns
// nil when dir cannot be watched.
func watchTuning(dir string) <-chan prefabs.Tuning {
	if _, err := os.Stat(dir); err != nil {
		return nil
	}
	w, err := prefabs.NewWatcher(dir)
	if err != nil {
		log.Printf("watch %s: %v", dir, err)
		return nil
	}

	out := make(chan prefabs.Tuning, 1)
	go func() {
		defer close(out)
		for {
			select {
			case name, ok := <-w.Events:
				if !ok {
					return
				}
				if !prefabs.IsTuningFile(name) {
					continue
				}
				t, err := prefabs.LoadTuning()
				if err != nil {
					log.Printf("reload %s: %v", name, err)
					continue
				}
				// Keep only the newest tuning.
				select {
				case <-out:
				default:
				}
				out <- t
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Printf("tuning watcher: %v", err)
			}
		}
	}()
	return out
}
