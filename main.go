package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/leonelquinteros/gotext"

	"tangrin/pkg/engine/input"
	"tangrin/pkg/engine/logger"
	"tangrin/pkg/engine/pacing"
	"tangrin/pkg/engine/random"
	"tangrin/pkg/game/config"
	"tangrin/pkg/game/content"
	"tangrin/pkg/game/devtools"
	"tangrin/pkg/game/gameplay"
	"tangrin/pkg/game/renderer/tui"
	"tangrin/pkg/game/setup"
	"tangrin/pkg/game/state"
)

func main() {
	configPath := flag.String("config", "tangrin.yaml", "path to the YAML configuration file")
	seed := flag.Int64("seed", 0, "random seed (0 picks one from the clock)")
	contentFile := flag.String("content", "", "INI file overriding the built-in world text")
	noDelay := flag.Bool("no-delay", false, "skip the pauses between messages")
	dumpMap := flag.Bool("dump-map", false, "generate a world, write it to map.txt and exit")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *contentFile != "" {
		cfg.ContentFile = *contentFile
	}
	if *noDelay {
		cfg.Pacing.Enabled = false
	}

	if err := logger.Initialize(cfg.Logging.ApplyEnv()); err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	if err := run(cfg, *dumpMap); err != nil {
		logger.Error("game aborted", "error", err)
		fmt.Fprintf(os.Stderr, "%v\n", err)
		logger.Close()
		os.Exit(1)
	}
}

func run(cfg *config.GameConfig, dumpMap bool) error {
	gotext.Configure(cfg.Locale.Dir, cfg.Locale.Language, cfg.Locale.Domain)

	world, err := content.Load(cfg.ContentFile)
	if err != nil {
		return err
	}

	rng := random.New(cfg.Seed)
	logger.Info("starting", "seed", rng.Seed(), "content", cfg.ContentFile)

	out := tui.New(os.Stdout)
	out.Init()

	g := state.NewGame(cfg.Rules.TideOutDuration, cfg.Rules.FullStamina)
	if dumpMap {
		return dumpWorld(g, rng, world)
	}

	s := gameplay.NewSession(
		g,
		rng,
		input.NewConsole(os.Stdin, os.Stdout),
		out,
		pacing.New(cfg.Pacing.Enabled, cfg.Pacing.Scale),
		world,
		gameplay.Rules{
			EncounterThreshold: cfg.Rules.EncounterThreshold,
			TheftChance:        cfg.Rules.TheftChance,
		},
	)
	return gameplay.Run(s)
}

// dumpWorld builds one world and writes it out for inspection
func dumpWorld(g *state.Game, rng *random.Rand, world *content.World) error {
	if err := setup.Initialise(g, rng); err != nil {
		return err
	}
	path, err := devtools.DumpMapToFile(g, world, rng.Seed())
	if err != nil {
		return err
	}
	fmt.Printf("Map dumped to %s\n", path)
	return nil
}
