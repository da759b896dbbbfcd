package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/born-ml/dualgrad/internal/logging"
)

// config is the merged view of flags, DUALGRAD_* environment variables and
// the optional YAML config file, in that order of precedence.
type config struct {
	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`
	Output   string `mapstructure:"output"`
	Parallel bool   `mapstructure:"parallel"`
	Minimize struct {
		Optimizer string  `mapstructure:"optimizer"`
		LR        float64 `mapstructure:"lr"`
		Momentum  float64 `mapstructure:"momentum"`
		Beta1     float64 `mapstructure:"beta1"`
		Beta2     float64 `mapstructure:"beta2"`
		Eps       float64 `mapstructure:"eps"`
		MaxIter   int     `mapstructure:"max_iter"`
		Tol       float64 `mapstructure:"tol"`
		Patience  int     `mapstructure:"patience"`
	} `mapstructure:"minimize"`
}

type app struct {
	v          *viper.Viper
	out        io.Writer
	errOut     io.Writer
	configFile string
	cfg        config
	logger     *logrus.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{v: viper.New(), out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "dualgrad",
		Short: "Forward-mode automatic differentiation and gradient-based minimization",
		Long: `dualgrad evaluates exact gradients of benchmark objectives with dual numbers
and minimizes them with gradient descent or Adam.

Settings can come from flags, DUALGRAD_* environment variables
(e.g. DUALGRAD_MINIMIZE_LR) or a YAML file passed with --config.`,
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.load()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "Configuration file path (YAML)")
	pf.String("log-level", "warn", "Log level: debug, info, warn, error")
	pf.String("log-format", "text", "Log format: text, json")
	pf.StringP("output", "o", "text", "Output format: text, yaml")
	pf.Bool("parallel", false, "Evaluate seeded derivative passes concurrently")
	a.bind(pf, map[string]string{
		"log.level":  "log-level",
		"log.format": "log-format",
		"output":     "output",
		"parallel":   "parallel",
	})

	root.AddCommand(
		a.versionCmd(),
		a.functionsCmd(),
		a.gradCmd(),
		a.minimizeCmd(),
	)
	return root
}

// bind maps config keys to flags.
func (a *app) bind(flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := a.v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("bind %s: %v", key, err))
		}
	}
}

func (a *app) load() error {
	a.v.SetEnvPrefix("DUALGRAD")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if a.configFile != "" {
		a.v.SetConfigFile(a.configFile)
		a.v.SetConfigType("yaml")
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := a.v.Unmarshal(&a.cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	logger, err := logging.New(a.errOut, a.cfg.Log.Level, a.cfg.Log.Format)
	if err != nil {
		return err
	}
	a.logger = logger
	if used := a.v.ConfigFileUsed(); used != "" {
		a.logger.WithField("path", used).Debug("config loaded")
	}
	return nil
}
