package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olivierh59500/particle-box-go/config"
)

const (
	logDir      = "logs"
	logFileName = "particle-box.log"
)

var (
	configFlag     = flag.String("config", "config.json", "Settings file (JSON), missing file uses defaults")
	saveConfigFlag = flag.String("save-config", "", "Write effective settings to this file and exit")
	debugFlag      = flag.Bool("debug", false, "Write logs to "+filepath.Join(logDir, logFileName))
	countFlag      = flag.Int("n", -1, "Initial particle count (overrides config)")
	speedFlag      = flag.Float64("speed", -1, "Spawn speed (overrides config)")
	sizeFlag       = flag.Float64("size", -1, "Base particle size (overrides config)")
	seedFlag       = flag.Int64("seed", 0, "Random seed, 0 uses config or the clock")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "particle-box crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fatal(err)
	}
	applyFlags(&cfg)
	if err := cfg.Validate(); err != nil {
		fatal(err)
	}

	if *saveConfigFlag != "" {
		if err := config.Save(*saveConfigFlag, cfg); err != nil {
			fatal(err)
		}
		return
	}

	game := NewGame(cfg)

	// Set up Ebitengine game
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle("Particle Box")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	// Run the game loop
	if err := ebiten.RunGame(game); err != nil {
		fatal(err)
	}
}

// fatal reports err on stderr and in the log, then exits
func fatal(err error) {
	fmt.Fprintf(os.Stderr, "particle-box: %v\n", err)
	log.Fatal(err)
}

// applyFlags overrides settings with explicitly passed flags
func applyFlags(cfg *config.Settings) {
	if *countFlag >= 0 {
		cfg.InitialCount = *countFlag
	}
	if *speedFlag >= 0 {
		cfg.Speed = *speedFlag
	}
	if *sizeFlag >= 0 {
		cfg.BaseSize = *sizeFlag
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
}

// setupLogging routes the standard logger to a file when enabled, otherwise discards
// Returns the open file or nil
func setupLogging(enabled bool) *os.File {
	if !enabled {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create log directory: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	f, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}
