package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"chosenoffset.com/wordexplorer/internal/achievement"
	"chosenoffset.com/wordexplorer/internal/audio"
	"chosenoffset.com/wordexplorer/internal/config"
	"chosenoffset.com/wordexplorer/internal/game"
	ebitenrender "chosenoffset.com/wordexplorer/internal/render/ebiten"
	"chosenoffset.com/wordexplorer/internal/telemetry"
	"chosenoffset.com/wordexplorer/internal/ui/dialog"
	"chosenoffset.com/wordexplorer/internal/ui/scene"
	"chosenoffset.com/wordexplorer/internal/words"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Error().Err(err).Msg("failed to load config")
		os.Exit(1)
	}
	setupLogging(cfg)

	if err := run(context.Background(), cfg); err != nil {
		log.Error().Err(err).Msg("game exited")
		os.Exit(1)
	}
	log.Info().Msg("goodbye")
}

// run builds the game and blocks until the window closes. Deferred cleanup
// always runs before it returns.
func run(ctx context.Context, cfg *config.Config) error {
	tracer := telemetry.NoopTracer()
	if cfg.TelemetryEnabled {
		provider, err := telemetry.Setup(ctx)
		switch {
		case errors.Is(err, telemetry.ErrNoEndpoint):
			log.Warn().Msg("telemetry enabled but no OTLP endpoint set, tracing disabled")
		case err != nil:
			log.Warn().Err(err).Msg("telemetry disabled")
		default:
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := provider.Shutdown(shutdownCtx); err != nil {
					log.Warn().Err(err).Msg("telemetry shutdown failed")
				}
			}()
			tracer = provider.Tracer("game")
			log.Info().Str("endpoint", telemetry.Endpoint()).Str("version", telemetry.Version()).Msg("tracing enabled")
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Debug().Int64("seed", seed).Msg("random seed")

	var player audio.Player = audio.Nop{}
	if cfg.AudioEnabled {
		speaker := audio.NewSpeakerPlayer()
		if err := speaker.Initialize(); err != nil {
			log.Warn().Err(err).Msg("audio unavailable, continuing without sound")
		} else {
			defer speaker.Close()
			player = speaker
		}
	}

	bank, err := words.Default()
	if err != nil {
		return fmt.Errorf("failed to load word bank: %w", err)
	}

	renderer, err := ebitenrender.NewRenderer()
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	panels := dialog.NewOverlay(dialog.DefaultDuration)
	g := game.New(game.Options{
		Bank:         bank,
		Rand:         rand.New(rand.NewSource(seed)),
		Audio:        player,
		Dialog:       panels,
		Achievements: achievement.NewTracker(),
		Tracer:       tracer,
	})
	manager := game.NewManager(ctx, g, scene.New(renderer, panels), renderer, inputMgr)

	engine.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	engine.SetWindowTitle(cfg.WindowTitle)
	engine.SetWindowResizable(cfg.Resizable)
	engine.SetTPS(cfg.TPS)

	log.Info().Int("width", cfg.WindowWidth).Int("height", cfg.WindowHeight).Msg("starting game")
	return engine.RunGame(manager)
}

func setupLogging(cfg *config.Config) {
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
	lvl, err := cfg.Level()
	if err != nil {
		log.Warn().Err(err).Str("level", cfg.LogLevel).Msg("unknown log level, using info")
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}
