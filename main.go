package main

import (
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/olivierh59500/arc-bounce-go/internal/config"
	"github.com/olivierh59500/arc-bounce-go/internal/game"
	"github.com/olivierh59500/arc-bounce-go/internal/logging"
)

func main() {
	dirs := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(dir, "arcbounce"))
	}

	cfg, err := config.Load(viper.New(), dirs...)
	if err != nil {
		// no config yet, so log with defaults
		l := logging.New(os.Stderr, "info", "console")
		l.Fatal().Err(err).Msg("loading config")
	}

	log := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	log.Info().Str("loglevel", log.GetLevel().String()).Msg("logging set up")

	g := game.New(cfg, log)

	// Set up Ebitengine game
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Window.TPS)

	// Run the game loop
	if err := ebiten.RunGame(g); err != nil {
		log.WithLevel(zerolog.FatalLevel).Err(err).Msg("game loop")
		os.Exit(1)
	}
}
