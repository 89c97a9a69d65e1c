package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/kbukum/rangekit/config"
	"github.com/kbukum/rangekit/logger"
	"github.com/kbukum/rangekit/observability"
	"github.com/kbukum/rangekit/version"
)

type exitCode int

const (
	exitCodeSuccess exitCode = 0
	exitCodeError   exitCode = 1
)

const shutdownTimeout = 5 * time.Second

// app holds what the commands share once the root command has set up.
type app struct {
	cfg     *config.Config
	log     *logger.Logger
	metrics *observability.Metrics
	closers []func(context.Context) error
}

type rootOptions struct {
	configFile string
	envFile    string
	logLevel   string
	verbose    bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) exitCode {
	a := &app{}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := root.ExecuteContext(ctx)
	a.close()
	if err != nil {
		return exitCodeError
	}
	return exitCodeSuccess
}

func newRootCmd(a *app) *cobra.Command {
	var opts rootOptions
	root := &cobra.Command{
		Use:          "seqctl",
		Short:        "Lazy integer pipelines built from rangekit views.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "config file (default: seqctl.yml in the usual locations)")
	flags.StringVar(&opts.envFile, "env-file", "", ".env file to load")
	flags.StringVar(&opts.logLevel, "log-level", "", "override logging.level")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "set debug logging level")

	root.AddCommand(
		newRunCmd(a),
		newLinesCmd(a),
		newStepsCmd(),
		newVersionCmd(),
	)
	return root
}

// setup loads configuration, then builds the logger and telemetry from it.
func (a *app) setup(cmd *cobra.Command, opts rootOptions) error {
	var loadOpts []config.LoaderOption
	if opts.configFile != "" {
		loadOpts = append(loadOpts, config.WithConfigFile(opts.configFile))
	}
	if opts.envFile != "" {
		loadOpts = append(loadOpts, config.WithEnvFile(opts.envFile))
	}
	cfg, err := config.Load(loadOpts...)
	if err != nil {
		return err
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}
	if opts.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if cfg.Logging.Output == "stderr" {
		a.log = logger.NewWithWriter(&cfg.Logging, config.Name, cmd.ErrOrStderr())
	} else {
		a.log = logger.New(&cfg.Logging, config.Name)
	}
	logger.SetGlobalLogger(a.log)

	if err := a.initTelemetry(cmd.Context()); err != nil {
		a.log.Error("telemetry setup failed", logger.ErrorFields("setup", err))
		return err
	}
	return nil
}

func (a *app) initTelemetry(ctx context.Context) error {
	serviceVersion := version.Get().Short()

	if a.cfg.Metrics.Enabled {
		mc := observability.DefaultMeterConfig(config.Name)
		mc.ServiceVersion = serviceVersion
		mc.Endpoint = a.cfg.Metrics.Endpoint
		mc.Insecure = a.cfg.Metrics.Insecure
		mp, err := observability.InitMeter(ctx, mc)
		if err != nil {
			return err
		}
		a.closers = append(a.closers, mp.Shutdown)
		a.metrics, err = observability.NewMetrics(mp.Meter(config.Name))
		if err != nil {
			return err
		}
	}

	if a.cfg.Tracing.Enabled {
		tc := observability.DefaultTracerConfig(config.Name)
		tc.ServiceVersion = serviceVersion
		tc.Endpoint = a.cfg.Tracing.Endpoint
		tc.Insecure = a.cfg.Tracing.Insecure
		tc.SampleRate = a.cfg.Tracing.SampleRatio
		tp, err := observability.InitTracer(ctx, tc)
		if err != nil {
			return err
		}
		a.closers = append(a.closers, tp.Shutdown)
	}
	return nil
}

// close flushes telemetry providers in reverse order of creation.
func (a *app) close() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil && a.log != nil {
			a.log.WithError(err).Warn("telemetry shutdown failed")
		}
	}
	a.closers = nil
}
