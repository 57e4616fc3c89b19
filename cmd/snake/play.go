package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/term-snake/internal/config"
	"github.com/vovakirdan/term-snake/internal/platform/tui"
	"github.com/vovakirdan/term-snake/internal/session"
)

var (
	flagFPS      int
	flagPollMS   int
	flagSpeed    float64
	flagGrowRate int
	flagSize     int
	flagStyle    string
	flagShowFPS  bool
	flagBorder   bool
	flagPreset   string
	flagSelect   bool
	flagSeed     int64
)

var errNotTerminal = errors.New("play: stdin and stdout must be a terminal")

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in this terminal",
	Long: `Start the game at the title screen.

Controls:
  W/A/S/D, arrows  - Move / navigate menus
  Enter            - Select
  P                - Pause
  R                - Restart (after game over)
  Esc              - Back to title
  Q/Ctrl+C         - Quit

Difficulty presets:
  easy, normal, hard, insane (see 'snake presets')

Examples:
  snake play
  snake play --preset hard
  snake play --select
  snake play --fps 30 --speed 15 --style flash
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	bindPlayFlags(playCmd)
}

func bindPlayFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVar(&flagFPS, "fps", 60, "Simulation updates per second")
	f.IntVar(&flagPollMS, "poll", 5, "Max wait for input per frame in milliseconds")
	f.Float64Var(&flagSpeed, "speed", 10, "Snake moves per second")
	f.IntVar(&flagGrowRate, "grow-rate", 1, "Segments gained per food")
	f.IntVar(&flagSize, "size", 6, "Initial snake length")
	f.StringVar(&flagStyle, "style", "solid", "Snake style: solid or flash")
	f.BoolVar(&flagShowFPS, "show-fps", false, "Show the measured frame rate")
	f.BoolVar(&flagBorder, "border", true, "Draw the field border")
	f.StringVar(&flagPreset, "preset", "", "Difficulty preset: easy, normal, hard, insane")
	f.BoolVar(&flagSelect, "select", false, "Pick a difficulty preset before playing")
	f.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
}

// loadConfig resolves the config file, then a preset, then explicit flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagPreset != "" {
		if err := config.ApplyPreset(&cfg, flagPreset); err != nil {
			return cfg, err
		}
	}

	f := cmd.Flags()
	if f.Changed("fps") {
		cfg.Engine.FrameRate = flagFPS
	}
	if f.Changed("poll") {
		cfg.Engine.InputPollMS = flagPollMS
	}
	if f.Changed("speed") {
		cfg.Snake.Speed = flagSpeed
	}
	if f.Changed("grow-rate") {
		cfg.Snake.GrowRate = flagGrowRate
	}
	if f.Changed("size") {
		cfg.Snake.Size = flagSize
	}
	if f.Changed("style") {
		cfg.Snake.Style = config.SnakeStyle(flagStyle)
	}
	if f.Changed("show-fps") {
		cfg.Display.ShowFrameRate = flagShowFPS
	}
	if f.Changed("border") {
		cfg.Display.ShowBorder = flagBorder
	}
	return cfg, cfg.Validate()
}

func runPlay(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	logger, err := newLogger("snake", io.Discard)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if flagSelect {
		current := flagPreset
		if current == "" {
			current = string(config.PresetNormal)
		}
		preset, result, err := tui.RunPresetSelector(current)
		if err != nil {
			return err
		}
		switch result {
		case tui.PresetQuit:
			return nil
		case tui.PresetChosen:
			if err := config.ApplyPreset(&cfg, string(preset.Name)); err != nil {
				return err
			}
			logger.Info("preset selected", "preset", preset.Name)
		}
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	game, err := session.New(session.Options{
		Config:  cfg,
		Input:   os.Stdin,
		Output:  os.Stdout,
		Term:    os.Getenv("TERM"),
		TTY:     os.Stdin,
		Columns: width,
		Rows:    height,
		Profile: termenv.EnvColorProfile(),
		Seed:    flagSeed,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	go watchResize(ctx, game)

	if err := game.Run(); err != nil {
		logger.Error("game failed", "err", err)
		return fmt.Errorf("play: %w", err)
	}
	return nil
}
