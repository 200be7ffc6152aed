// mazegen generates a random maze of wall rectangles and writes it into
// the simulator's scene document. Build:
//
//	go build -o mazegen ./cmd/mazegen
//
// Usage:
//
//	./mazegen generate [--scene config.json] [--seed 42] [--width 10]
//	./mazegen preview
//	./mazegen watch
//	./mazegen history
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mazegen/internal/config"
	"mazegen/internal/generate"
	"mazegen/internal/geometry"
	"mazegen/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// app holds the state shared by every subcommand: flags, the resolved
// configuration and the logger.
type app struct {
	configPath string
	verbose    bool
	scenePath  string
	outPath    string
	seed       int64
	zeroSeed   bool // --seed 0 given explicitly
	width      int
	orient     string
	historyDir string
	noHistory  bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "mazegen",
		Short: "Generate random wall mazes for the simulator's scene file",
		Long: `mazegen recursively divides a rectangular arena with walls, cuts one
gap into every wall and writes the resulting obstacles into a scene
document, after the four border obstacles it already contains.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", config.DefaultPath, "path to the YAML config file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.StringVar(&a.scenePath, "scene", "", "scene document to update (overrides config)")
	pf.StringVar(&a.outPath, "out", "", "write the updated scene here instead of in place")
	pf.Int64Var(&a.seed, "seed", 0, "random seed (unset picks one from the clock)")
	pf.IntVar(&a.width, "width", 0, "wall half-thickness (overrides config)")
	pf.StringVar(&a.orient, "orientation", "", "orientation of the first divider: vertical or horizontal")
	pf.StringVar(&a.historyDir, "history-dir", "", "directory for runs.jsonl (overrides config)")
	pf.BoolVar(&a.noHistory, "no-history", false, "do not record this run")

	root.AddCommand(
		newGenerateCmd(a),
		newPreviewCmd(a),
		newWatchCmd(a),
		newHistoryCmd(a),
		newConfigCmd(a),
	)
	return root
}

// setup loads configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	if err := a.loadConfig(cmd); err != nil {
		return err
	}
	logger, err := logging.New(a.cfg.Logging.Level, a.cfg.Logging.Format, a.verbose)
	if err != nil {
		return err
	}
	a.logger = logger
	return nil
}

func (a *app) loadConfig(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("scene") {
		cfg.Scene.Path = a.scenePath
	}
	if flags.Changed("out") {
		cfg.Scene.Output = a.outPath
	}
	a.zeroSeed = false
	if flags.Changed("seed") {
		cfg.Seed = a.seed
		a.zeroSeed = a.seed == 0
	}
	if flags.Changed("width") {
		cfg.Width = a.width
	}
	if flags.Changed("orientation") {
		o, err := geometry.ParseOrientation(a.orient)
		if err != nil {
			return fmt.Errorf("%w: %w", generate.ErrInvalidConfiguration, err)
		}
		cfg.Orientation = o
	}
	if flags.Changed("history-dir") {
		cfg.History.Dir = a.historyDir
	}
	if a.noHistory {
		cfg.History.Enabled = false
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}
