package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"newtonian/internal/config"
	"newtonian/internal/debug"
	"newtonian/internal/logger"
	"newtonian/internal/physics"
	"newtonian/internal/render"
	"newtonian/internal/scenario"
)

var (
	flagRenderer string
	flagFile     string
	flagTicks    int
	flagVerbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "newtonian [scenario]",
	Short: "Point-mass gravity sandbox with merge-on-collision",
	Long: `newtonian simulates point masses under pairwise attraction, merging
bodies that collide. Pick a built-in scenario (circle, line, orbit, square)
or load one from a YAML file with --file.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flagRenderer, "renderer", "", "renderer backend: window or term (default from config file)")
	rootCmd.Flags().StringVar(&flagFile, "file", "", "load the scenario from a YAML file instead of a preset")
	rootCmd.Flags().IntVar(&flagTicks, "ticks", 0, "run N ticks without a renderer and print the final state")
	rootCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "trace per-tick body states to "+logger.LogFilePath)
}

func run(cmd *cobra.Command, args []string) error {
	bodies, err := loadBodies(args)
	if err != nil {
		return err
	}

	world := physics.NewWorld(bodies)
	var trace *logger.Logger
	if flagVerbose {
		trace = logger.New()
	}

	// step hands back the state to draw, then advances the world, so the
	// first frame shows the scenario before any force has acted.
	tick := 0
	step := func() render.Frame {
		snap := world.Snapshot()
		if trace != nil {
			trace.Log(fmt.Sprintf("tick %d: %d bodies", tick, len(snap)))
			for _, b := range snap {
				trace.Log(b.String())
			}
		}
		world.Tick()
		tick++
		return render.FrameOf(snap)
	}

	if flagTicks > 0 {
		for i := 0; i < flagTicks; i++ {
			step()
		}
		for _, b := range world.Snapshot() {
			fmt.Fprintln(cmd.OutOrStdout(), b)
		}
		return nil
	}

	r, err := pickRenderer(config.Load())
	if err != nil {
		return err
	}
	return r.Run(step)
}

func loadBodies(args []string) ([]physics.Body, error) {
	if flagFile != "" {
		return scenario.LoadFile(flagFile)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("no scenario given (want one of %s, or --file)", strings.Join(scenario.Names(), ", "))
	}
	return scenario.Load(args[0])
}

func pickRenderer(prefs config.Prefs) (render.Renderer, error) {
	name := flagRenderer
	if name == "" {
		name = prefs.Renderer
	}
	switch name {
	case "", "window":
		overlay := debug.New()
		overlay.ShowFPS = prefs.ShowFPS
		overlay.ShowBodies = prefs.ShowBodies
		return render.NewWindow(prefs.WindowWidth, prefs.WindowHeight, prefs.TargetFPS, overlay), nil
	case "term":
		return render.NewTerminal(), nil
	default:
		return nil, fmt.Errorf("unknown renderer %q (want window or term)", name)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
