package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/term-snake/internal/config"
)

// isolate points config lookups at an empty home and working directory.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	flagConfig, flagPreset = "", ""
}

func parsePlayFlags(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "play"}
	bindPlayFlags(cmd)
	if err := cmd.Flags().Parse(args); err != nil {
		t.Fatalf("Parse(%v) error = %v", args, err)
	}
	return cmd
}

func TestLoadConfigLayers(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte("snake:\n  speed: 12\n  size: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	flagConfig = path

	cmd := parsePlayFlags(t, "--preset", "hard", "--size", "8", "--show-fps")
	cfg, err := loadConfig(cmd)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}

	hard, _ := config.LookupPreset("hard")
	if cfg.Snake.Speed != hard.Speed {
		t.Errorf("Speed = %g, expected preset speed %g", cfg.Snake.Speed, hard.Speed)
	}
	if cfg.Snake.Size != 8 {
		t.Errorf("Size = %d, expected 8 from the flag", cfg.Snake.Size)
	}
	if !cfg.Display.ShowFrameRate {
		t.Error("ShowFrameRate should be set by --show-fps")
	}
	if cfg.Engine.FrameRate != config.Default().Engine.FrameRate {
		t.Errorf("FrameRate = %d, unchanged flags must not override", cfg.Engine.FrameRate)
	}
}

func TestLoadConfigRejectsBadFlags(t *testing.T) {
	isolate(t)

	cmd := parsePlayFlags(t, "--style", "rainbow")
	if _, err := loadConfig(cmd); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("loadConfig() error = %v, expected %v", err, config.ErrInvalidConfig)
	}

	cmd = parsePlayFlags(t, "--preset", "impossible")
	if _, err := loadConfig(cmd); !errors.Is(err, config.ErrUnknownPreset) {
		t.Errorf("loadConfig() error = %v, expected %v", err, config.ErrUnknownPreset)
	}
}

func TestPresetsCommand(t *testing.T) {
	isolate(t)

	var out bytes.Buffer
	presetsCmd.SetOut(&out)
	t.Cleanup(func() { presetsCmd.SetOut(nil); flagShowConfig = false })

	if err := runPresets(presetsCmd, nil); err != nil {
		t.Fatalf("runPresets() error = %v", err)
	}
	for _, p := range config.Presets() {
		if !strings.Contains(out.String(), string(p.Name)) {
			t.Errorf("output missing preset %q", p.Name)
		}
	}

	out.Reset()
	flagShowConfig = true
	if err := runPresets(presetsCmd, nil); err != nil {
		t.Fatalf("runPresets(--show) error = %v", err)
	}
	if !strings.Contains(out.String(), "frame_rate: 60") {
		t.Errorf("--show output = %q, expected the resolved YAML", out.String())
	}
}
