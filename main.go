package main

import (
	"flag"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/megagolem/assets"
	"github.com/automoto/megagolem/config"
	"github.com/automoto/megagolem/fonts"
	"github.com/automoto/megagolem/leveldata"
	"github.com/automoto/megagolem/scenes"
	"github.com/automoto/megagolem/session"
	"github.com/automoto/megagolem/systems"
	"github.com/automoto/megagolem/systems/device"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds  image.Rectangle
	scene   Scene
	watcher *config.TuningWatcher
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(levels scenes.LevelSource, watcher *config.TuningWatcher) *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{
		bounds:  image.Rectangle{},
		watcher: watcher,
	}
	env := &scenes.Env{
		Changer: g,
		Session: session.New(),
		Levels:  levels,
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewPlatformerScene(env)
	} else {
		g.scene = scenes.NewMenuScene(env)
	}

	return g
}

func (g *Game) Update() error {
	g.reloadTuning()
	g.scene.Update()
	return nil
}

// reloadTuning applies tuning file changes between frames so systems never
// see values change mid-tick.
func (g *Game) reloadTuning() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path := <-g.watcher.Events:
			if err := config.LoadTuningFile(path); err != nil {
				log.Printf("Warning: tuning reload failed: %v", err)
				continue
			}
			log.Printf("tuning reloaded from %s", path)
		case err := <-g.watcher.Errors:
			log.Printf("Warning: tuning watcher: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	level := flag.Int("level", 0, "start directly on this level")
	debug := flag.Bool("debug", false, "outline collision bodies")
	tuning := flag.String("tuning", "", "YAML file with tuning overrides")
	watch := flag.Bool("watch", false, "reload the tuning file when it changes")
	tmx := flag.String("tmx", "", "play a single TMX level from disk")
	flag.Parse()

	config.Debug.DrawBodies = *debug
	if *level > 0 {
		if *level > config.Run.MaxLevel {
			log.Fatalf("level %d out of range, last level is %d", *level, config.Run.MaxLevel)
		}
		config.Debug.SkipMenu = true
		config.Run.FirstLevel = *level
	}

	var watcher *config.TuningWatcher
	if *tuning != "" {
		if err := config.LoadTuningFile(*tuning); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		if *watch {
			w, err := config.WatchTuning(*tuning)
			if err != nil {
				log.Printf("Warning: Could not watch %s: %v", *tuning, err)
			} else {
				watcher = w
				defer w.Close()
			}
		}
	}

	levels := scenes.LevelSource(assets.LoadLevel)
	if *tmx != "" {
		dir, name := filepath.Split(*tmx)
		if dir == "" {
			dir = "."
		}
		fsys := os.DirFS(dir)
		levels = func(int) (*leveldata.Level, error) {
			return leveldata.LoadTMX(fsys, name)
		}
		config.Run.FirstLevel = 1
		config.Run.MaxLevel = 1
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Mega Golem")
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved := systems.LoadSettings(); saved != nil {
		device.ApplySettings(saved)
	}

	if err := ebiten.RunGame(NewGame(levels, watcher)); err != nil {
		log.Fatal(err)
	}
}
