package main

import (
	"log"

	"chosenoffset.com/quickdraw/internal/audio"
	"chosenoffset.com/quickdraw/internal/config"
	"chosenoffset.com/quickdraw/internal/game"
	"chosenoffset.com/quickdraw/internal/render"
	ebitenrender "chosenoffset.com/quickdraw/internal/render/ebiten"
	"chosenoffset.com/quickdraw/internal/track"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run owns every resource so the deferred releases fire on all exit
// paths, including engine errors.
func run() error {
	cfg := config.Load()

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	player := audio.NewPlayer()
	if err := player.Init(); err != nil {
		log.Printf("Audio unavailable, running silent: %v", err)
	}
	defer player.Close()

	tracker := newTracker(cfg, inputMgr)
	defer tracker.Shutdown()

	session := game.New(renderer, inputMgr, tracker, player, game.Settings{
		Width:        cfg.Width,
		Height:       cfg.Height,
		Difficulty:   cfg.Difficulty,
		MasterVolume: cfg.MasterVolume,
		Muted:        cfg.Muted,
	})

	engine.SetWindowSize(cfg.Width, cfg.Height)
	engine.SetWindowTitle("Quickdraw")

	log.Println("Starting game...")
	return engine.RunGame(session)
}

// newTracker connects to the hand tracking feed, falling back to mouse
// input when the feed is unreachable.
func newTracker(cfg config.Config, input render.InputManager) track.Tracker {
	feed, err := track.NewFeed(cfg.TrackerURL)
	if err != nil {
		log.Printf("Hand tracking unavailable (%v), falling back to mouse input", err)
		return track.NewMouseTracker(input, cfg.Width, cfg.Height)
	}
	return track.NewHandTracker(feed, cfg.Width, cfg.Height)
}
