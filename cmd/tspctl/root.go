package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvtsp/core"
	"github.com/katalvlaran/lvtsp/ingest"
	"github.com/katalvlaran/lvtsp/internal/config"
	"github.com/katalvlaran/lvtsp/internal/report"
)

// app carries per-invocation state; nothing is kept in package globals.
type app struct {
	v       *viper.Viper
	cfgFile string
	envFile string
	cfg     *config.Config
	log     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:           "tspctl",
		Short:         "Delivery route planning over a weighted location graph",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.Flags())
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "YAML config file")
	pf.StringVar(&a.envFile, "env-file", "", "dotenv file (default .env, optional)")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-format", "console", "log format: console or json")
	pf.Bool("directed", false, "treat edge files as directed")

	root.AddCommand(newSolveCmd(a), newPrintCmd(a), newDemoCmd(a))

	return root
}

// flagKeys maps command-line flags to configuration keys.
var flagKeys = map[string]string{
	"log-level":    config.KeyLogLevel,
	"log-format":   config.KeyLogFormat,
	"directed":     config.KeyDirected,
	"algorithm":    config.KeyAlgorithm,
	"start":        config.KeyStart,
	"matching":     config.KeyMatching,
	"deadend":      config.KeyDeadEnd,
	"max-exact":    config.KeyMaxExactVertices,
	"prune":        config.KeyPrune,
	"local-search": config.KeyLocalSearch,
}

// bind ties the flags of the running command to their viper keys. Several
// subcommands share flag names, so binding happens only once the command is
// known. A flag wins over env and file only when set explicitly.
func (a *app) bind(fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := a.v.BindPFlag(key, f); err != nil {
			return errors.Wrapf(err, "bind --%s", name)
		}
	}

	return nil
}

func (a *app) init(fs *pflag.FlagSet) error {
	if err := a.bind(fs); err != nil {
		return err
	}
	if err := config.LoadDotEnv(a.envFile); err != nil {
		return err
	}
	if err := config.ReadFile(a.v, a.cfgFile); err != nil {
		return err
	}
	cfg, err := config.Resolve(a.v)
	if err != nil {
		return err
	}
	log, err := report.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log

	return nil
}

// newGraph returns an empty graph configured from the resolved settings.
func (a *app) newGraph() *core.Graph {
	return core.NewGraph(core.WithDirected(a.cfg.Directed), core.WithLogger(a.log.Named("core")))
}

// loadGraph reads one or two files; without a nodes file the edges file
// creates its own vertices.
func (a *app) loadGraph(nodesPath, edgesPath string) (g *core.Graph, err error) {
	defer report.Time(a.log, "load")(&err)

	g = a.newGraph()
	opt := ingest.WithLogger(a.log.Named("ingest"))
	if nodesPath == "" {
		_, err = ingest.LoadFile(g, edgesPath, opt)
	} else {
		_, err = ingest.LoadFiles(g, nodesPath, edgesPath, opt)
	}
	if err != nil {
		return nil, err
	}

	return g, nil
}
