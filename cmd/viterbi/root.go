package main

import (
	"github.com/katalvlaran/viterbi/internal/config"
	"github.com/katalvlaran/viterbi/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// app carries state resolved once per invocation by the root pre-run hook.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
	log     *zap.SugaredLogger
}

// flagKeys maps CLI flag names to configuration keys.
var flagKeys = map[string]string{
	"log-level": config.KeyLogLevel,
	"log-space": config.KeyLogSpace,
	"workers":   config.KeyWorkers,
	"strict":    config.KeyStrict,
	"tolerance": config.KeyTolerance,
}

// newRootCmd builds a fresh command tree; tests call it once per case.
func newRootCmd() *cobra.Command {
	a := &app{v: config.New(), log: logging.Nop()}

	root := &cobra.Command{
		Use:          "viterbi",
		Short:        "Viterbi decoding for hidden Markov models",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "YAML config file")
	root.PersistentFlags().String("log-level", logging.LevelInfo, "log level: debug|info|warn|error")

	root.AddCommand(decodeCMD(a), genCMD(a))

	return root
}

func (a *app) init(cmd *cobra.Command) error {
	if err := config.BindFlags(a.v, cmd.Flags(), flagKeys); err != nil {
		return err
	}
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	log, err := logging.New("viterbi", cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log
	a.log.Debugw("config resolved",
		"file", a.cfgFile,
		"log_space", cfg.LogSpace,
		"workers", cfg.Workers,
		"strict", cfg.Strict,
		"tolerance", cfg.Tolerance,
	)

	return nil
}
