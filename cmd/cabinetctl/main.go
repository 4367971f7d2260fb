// Command cabinetctl prints the practice views in a terminal, computed from a
// seed file with the same handlers the server uses.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"dental-practice-api/internal/config"
	"dental-practice-api/internal/handler"
	"dental-practice-api/internal/store"
)

type app struct {
	seed    string
	verbose bool
	log     *zap.Logger
	h       *handler.Handler
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "cabinetctl",
		Short:         "Dental practice views in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&a.seed, "seed", "", "seed file (default $SEED_FILE or db/seed/cabinet.yaml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging on stderr")

	root.AddCommand(
		newPlanningCmd(a),
		newPatientsCmd(a),
		newTreatmentsCmd(a),
		newDashboardCmd(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if a.seed == "" {
		a.seed = cfg.SeedFile
	}

	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if a.verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if a.log, err = zcfg.Build(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	mem, err := store.LoadSeed(a.seed)
	if err != nil {
		return err
	}
	a.log.Debug("seed loaded", zap.String("file", a.seed))
	a.h = handler.New(mem, cfg.Grid, a.log)
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
