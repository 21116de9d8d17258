package main

import (
	"flag"
	"image"

	cfg "github.com/automoto/padstate/config"
	"github.com/automoto/padstate/fonts"
	"github.com/automoto/padstate/logging"
	"github.com/automoto/padstate/scenes"
	"github.com/automoto/padstate/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(players int) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewViewerScene(players),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, cfg.C.Width, cfg.C.Height)
	return cfg.C.Width, cfg.C.Height
}

func main() {
	configPath := flag.String("config", "", "path to a YAML settings file")
	logFile := flag.String("log", "", "write logs to this file instead of stderr")
	debug := flag.Bool("debug", false, "log at debug level")
	flag.Parse()

	settings := cfg.DefaultSettings()
	var loadErr error
	if *configPath != "" {
		if s, err := cfg.Load(*configPath); err != nil {
			loadErr = err
		} else {
			settings = s
		}
	}
	if *logFile != "" {
		settings.Logging.File = *logFile
	}
	if *debug {
		settings.Logging.Level = "debug"
	}

	if err := logging.Init(settings.Logging.Level, settings.Logging.File); err != nil {
		// fall back to the defaults rather than running blind
		_ = logging.Init("info", settings.Logging.File)
		logging.Log.Warnw("bad logging settings, using info level", "err", err)
	}
	defer logging.Sync()

	if loadErr != nil {
		logging.Log.Warnw("could not load settings file, using defaults", "path", *configPath, "err", loadErr)
	}
	settings.Apply()

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		logging.Log.Warnw("could not initialize persistence", "err", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(saved)
	}

	if err := fonts.LoadDefaults(cfg.Viewer.BodyFontSize, cfg.Viewer.TitleFontSize); err != nil {
		logging.Log.Fatalw("could not load fonts", "err", err)
	}

	ebiten.SetWindowSize(cfg.C.Width, cfg.C.Height)
	ebiten.SetWindowTitle("padstate")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame(settings.Input.Players)); err != nil {
		logging.Log.Fatalw("game loop stopped", "err", err)
	}
}
