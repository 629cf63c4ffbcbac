package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/automoto/orbitview/assets"
	"github.com/automoto/orbitview/config"
	"github.com/automoto/orbitview/fonts"
	"github.com/automoto/orbitview/scenes"
	"github.com/automoto/orbitview/shared/galaxymath"
	"github.com/automoto/orbitview/shared/playback"
	"github.com/automoto/orbitview/shared/snapshot"
	"github.com/automoto/orbitview/shared/viewcamera"
	"github.com/automoto/orbitview/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	scene *scenes.ViewerScene
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.OnDraw(screen)
}

// Layout follows the window so a resize re-maps positions on the next tick.
func (g *Game) Layout(width, height int) (int, int) {
	g.scene.SetViewport(width, height)
	return width, height
}

func newDriver() (*playback.Driver, error) {
	fsys := os.DirFS(config.Animation.DataDir)

	steps, err := snapshot.DiscoverSteps(fsys)
	if err != nil {
		return nil, err
	}
	log.Printf("Found %d snapshots in %s", len(steps), config.Animation.DataDir)

	var loader snapshot.Loader = snapshot.NewDirLoader(fsys)
	if config.Animation.Preload {
		cache := snapshot.NewCache(loader)
		if err := cache.Preload(context.Background(), steps, config.Animation.PreloadWorkers); err != nil {
			log.Printf("Warning: preload incomplete, %d of %d cached: %v", cache.Len(), len(steps), err)
		}
		loader = cache
	}

	sprite, err := assets.OrbitalSprite(config.Animation.SpritePath, config.Animation.SpriteRadius)
	if err != nil {
		return nil, err
	}

	return playback.New(playback.Options{
		Sequence: steps,
		Loader:   loader,
		Extent: galaxymath.GalaxyExtent{
			Width:  config.Galaxy.Width,
			Height: config.Galaxy.Height,
		},
		LightSpeed: config.Galaxy.LightSpeed,
		Sprite:     sprite,
		BaseScale:  config.Animation.SpriteScale,
	})
}

func main() {
	configPath := flag.String("config", "", "YAML config file")
	dataDir := flag.String("data", "", "snapshot directory (overrides config)")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if err := config.ApplyEnv(); err != nil {
		log.Fatalf("Failed to read environment: %v", err)
	}
	if *dataDir != "" {
		config.Animation.DataDir = *dataDir
	}
	if err := config.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.Animation.UpdateRate)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, err := systems.LoadSettings()
	if err != nil {
		log.Printf("Warning: Could not read saved settings: %v", err)
	}
	settings := systems.ApplySavedSettingsGlobal(saved)

	driver, err := newDriver()
	if err != nil {
		log.Fatalf("Failed to start playback: %v", err)
	}
	viewport := galaxymath.Viewport{Width: float64(config.C.Width), Height: float64(config.C.Height)}
	if err := driver.Initialize(viewport); err != nil {
		log.Fatalf("Failed to load first snapshot: %v", err)
	}

	camera := viewcamera.New(viewcamera.Settings{
		Zoom:          config.Camera.Zoom,
		ZoomRatio:     config.Camera.ZoomRatio,
		ZoomMinimum:   config.Camera.ZoomMinimum,
		PanX:          config.Camera.OffsetX,
		PanY:          config.Camera.OffsetY,
		MovementSpeed: config.Camera.MovementSpeed,
	})

	game := &Game{
		scene: scenes.NewViewerScene(scenes.ViewerOptions{
			Camera:   camera,
			Driver:   driver,
			Settings: settings,
			Width:    config.C.Width,
			Height:   config.C.Height,
		}),
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
