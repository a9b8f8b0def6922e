package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/kevmasajedi/complexible/foundation/core/config"
	mdwerror "github.com/kevmasajedi/complexible/foundation/core/error"
	mdwlog "github.com/kevmasajedi/complexible/foundation/core/log"
	"github.com/kevmasajedi/complexible/foundation/utils/mathx"
	"github.com/kevmasajedi/complexible/pkg/core/logging"
)

// options holds the global flags of one invocation
type options struct {
	cfgFile string
	verbose bool
	polar   bool
	strict  bool
	plain   bool
}

// app is the state shared by all subcommands of one invocation
type app struct {
	opts      options
	cfg       *config.Config
	logger    *mdwlog.Logger
	formatter mathx.Formatter
}

// NewRootCmd builds the complete command tree
func NewRootCmd() *cobra.Command {
	a := &app{
		cfg:       config.Default(),
		logger:    mdwlog.Discard(),
		formatter: mathx.DefaultFormatter(),
	}

	rootCmd := &cobra.Command{
		Use:   "complexible",
		Short: "Complex number calculator with Cartesian and polar forms",
		Long: `complexible evaluates complex number arithmetic from the command line.

Operands are given as two numbers each: real and imaginary part, or with
--polar magnitude and angle in degrees. Results are printed in Cartesian
form and in polar form with radians and degrees.

Examples:
  complexible add 2 3 1 -1
  complexible mul --polar 2 30 3 60
  complexible pow 1 1 3
  complexible root 0 -8 3
  complexible equal 1 0 1.000001 0`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.opts.cfgFile, "config", "", "config file (default: $COMPLEXIBLE_CONFIG or ./complexible.toml)")
	flags.BoolVarP(&a.opts.verbose, "verbose", "v", false, "log at debug level")
	flags.BoolVar(&a.opts.polar, "polar", false, "read operands as magnitude and angle in degrees")
	flags.BoolVar(&a.opts.strict, "strict", false, "reject NaN and Inf operands and results")
	flags.BoolVar(&a.opts.plain, "plain", false, "print without styling")

	for _, op := range operations() {
		rootCmd.AddCommand(a.newOperationCmd(op))
	}
	rootCmd.AddCommand(
		a.newConvertCmd(),
		a.newEqualCmd(),
		a.newConfigCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the command line with the process arguments
func Execute() error {
	return Run(os.Args[1:], os.Stdout, os.Stderr)
}

// Run executes one invocation with the given arguments and streams
func Run(args []string, stdout, stderr io.Writer) error {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(normalizeArgs(args))
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err != nil {
		printError(stderr, err)
	}
	return err
}

// ExitCode maps an error to the process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return mdwerror.GetCode(err).ExitCode()
}

// setup loads configuration and builds the logger for this invocation
func (a *app) setup(stderr io.Writer) error {
	var err error
	if a.opts.cfgFile != "" {
		a.cfg, err = loadExplicit(a.opts.cfgFile)
	} else {
		a.cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	lc := logging.FromConfig(a.cfg)
	lc.Output = stderr
	if a.opts.verbose {
		lc.Level = mdwlog.LevelDebug.String()
	}

	a.logger = logging.NewLogger(lc).WithCorrelationID(uuid.NewString())
	a.formatter = mathx.NewFormatter(a.cfg.Precision.PrettyPlaces)

	a.logger.Debug("configuration loaded", mdwlog.Fields{
		"path":            a.cfg.Path(),
		"equality_places": a.cfg.Precision.EqualityPlaces,
		"pretty_places":   a.cfg.Precision.PrettyPlaces,
	})
	return nil
}

func loadExplicit(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}
